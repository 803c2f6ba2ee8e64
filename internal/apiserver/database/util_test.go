package database

import (
	"context"
	"testing"

	"github.com/estateops/estate-api/internal/common/config"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestInitSuperAdmin(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()

	cfg := &config.SuperAdminConfig{Name: "Root", Email: "root@example.com", Password: "changeme123"}
	assert.NoError(t, InitSuperAdmin(ctx, db, cfg))

	u, err := db.GetUserByEmail(ctx, "root@example.com")
	assert.NoError(t, err)
	assert.Equal(t, RoleSuperAdmin, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("changeme123")))

	// second run is a no-op
	assert.NoError(t, InitSuperAdmin(ctx, db, cfg))
	count, err := db.CountUsers(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestInitSuperAdmin_SkipsWithoutConfig(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()

	assert.NoError(t, InitSuperAdmin(ctx, db, nil))
	assert.NoError(t, InitSuperAdmin(ctx, db, &config.SuperAdminConfig{}))
	count, err := db.CountUsers(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
