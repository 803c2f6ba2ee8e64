package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnv(t *testing.T) {
	t.Setenv("TEST_CFG_VALUE", "from-env")

	out := resolveEnv([]byte("a: ${TEST_CFG_VALUE}\nb: ${TEST_CFG_MISSING:fallback}\nc: ${TEST_CFG_MISSING:}"))
	assert.Equal(t, "a: from-env\nb: fallback\nc: ", string(out))
}

func TestGetDSN(t *testing.T) {
	pg := &DatabaseConfig{
		Type: "postgres", Host: "db", Port: 5432,
		User: "u", Password: "p", DBName: "estate", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/estate?sslmode=disable", pg.GetDSN())

	my := &DatabaseConfig{
		Type: "mysql", Host: "db", Port: 3306,
		User: "u", Password: "p", DBName: "estate",
	}
	assert.Equal(t, "u:p@tcp(db:3306)/estate?charset=utf8mb4&parseTime=True&loc=Local", my.GetDSN())

	lite := &DatabaseConfig{Type: "sqlite", DBName: ":memory:"}
	assert.Equal(t, ":memory:", lite.GetDSN())

	assert.Equal(t, "", (&DatabaseConfig{Type: "oracle"}).GetDSN())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apiserver.yaml")
	yaml := `
port: ${TEST_PORT:5173}
database:
  type: sqlite
  dbname: ":memory:"
jwt:
  secret_key: "0123456789abcdef0123456789abcdef"
  duration: "24h"
  refresh_duration: "720h"
session:
  type: memory
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, cfgPath, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfgPath)
	assert.Equal(t, 5173, cfg.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Duration)
	assert.Equal(t, 720*time.Hour, cfg.JWT.RefreshDuration)
	assert.Equal(t, "memory", cfg.Session.Type)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apiserver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jwt:\n  duration: \"soon\"\n"), 0644))

	_, _, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
