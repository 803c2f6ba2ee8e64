package database

import (
	"context"
	"errors"

	"github.com/estateops/estate-api/internal/common/config"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitSuperAdmin seeds the super admin account on first start. An existing
// account with the configured email is left untouched.
func InitSuperAdmin(ctx context.Context, db Database, cfg *config.SuperAdminConfig) error {
	if cfg == nil || cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	_, err := db.GetUserByEmail(ctx, cfg.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	name := cfg.Name
	if name == "" {
		name = "Super Admin"
	}

	return db.CreateUser(ctx, &User{
		Name:     name,
		Email:    cfg.Email,
		Password: string(hashed),
		Role:     RoleSuperAdmin,
	})
}
