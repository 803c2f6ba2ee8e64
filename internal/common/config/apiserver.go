package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/estateops/estate-api/pkg/trace"
	"gopkg.in/yaml.v3"
)

type (
	// APIServerConfig is the root configuration for the estate API server
	APIServerConfig struct {
		Port       int              `yaml:"port"`
		PID        string           `yaml:"pid"`
		Database   DatabaseConfig   `yaml:"database"`
		Logger     LoggerConfig     `yaml:"logger"`
		JWT        JWTConfig        `yaml:"jwt"`
		Session    SessionConfig    `yaml:"session"`
		SuperAdmin SuperAdminConfig `yaml:"super_admin"`
		I18n       I18nConfig       `yaml:"i18n"`
		Metrics    MetricsConfig    `yaml:"metrics"`
		Tracing    trace.Config     `yaml:"tracing"`
	}

	// I18nConfig represents the internationalization configuration
	I18nConfig struct {
		Path string `yaml:"path"` // Path to i18n translation files
	}

	DatabaseConfig struct {
		Type     string `yaml:"type"`     // mysql, postgres, sqlite
		Host     string `yaml:"host"`     // localhost
		Port     int    `yaml:"port"`     // 3306 (mysql), 5432 (postgres)
		User     string `yaml:"user"`     // database user
		Password string `yaml:"password"` // password
		DBName   string `yaml:"dbname"`   // database name, or file path for sqlite
		SSLMode  string `yaml:"sslmode"`  // disable (postgres)
	}

	JWTConfig struct {
		SecretKey       string        `yaml:"secret_key"`
		Duration        time.Duration `yaml:"duration"`
		RefreshDuration time.Duration `yaml:"refresh_duration"`
	}

	// SessionConfig represents the refresh-token session store configuration
	SessionConfig struct {
		Type  string             `yaml:"type"` // "memory" or "redis"
		Redis SessionRedisConfig `yaml:"redis"`
	}

	SessionRedisConfig struct {
		Addr     string `yaml:"addr"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Prefix   string `yaml:"prefix"`
	}
)

// UnmarshalYAML parses the jwt durations from strings like "24h" since
// yaml.v3 does not decode time.Duration natively.
func (c *JWTConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		SecretKey       string `yaml:"secret_key"`
		Duration        string `yaml:"duration"`
		RefreshDuration string `yaml:"refresh_duration"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	c.SecretKey = raw.SecretKey
	if raw.Duration != "" {
		d, err := time.ParseDuration(raw.Duration)
		if err != nil {
			return fmt.Errorf("invalid jwt duration %q: %w", raw.Duration, err)
		}
		c.Duration = d
	}
	if raw.RefreshDuration != "" {
		d, err := time.ParseDuration(raw.RefreshDuration)
		if err != nil {
			return fmt.Errorf("invalid jwt refresh duration %q: %w", raw.RefreshDuration, err)
		}
		c.RefreshDuration = d
	}
	return nil
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	switch c.Type {
	case "postgres":
		return c.getPostgresDSN()
	case "mysql":
		return c.getMySQLDSN()
	case "sqlite":
		// For SQLite, DBName is the file path. The directory must exist
		// before gorm opens the file.
		if err := os.MkdirAll(filepath.Dir(c.DBName), 0755); err != nil {
			panic(fmt.Errorf("failed to create directory for sqlite database: %w", err))
		}
		return c.DBName
	default:
		return ""
	}
}

// getPostgresDSN returns PostgreSQL connection string
func (c *DatabaseConfig) getPostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// getMySQLDSN returns MySQL connection string
func (c *DatabaseConfig) getMySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}
