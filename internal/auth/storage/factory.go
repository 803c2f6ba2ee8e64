package storage

import (
	"fmt"

	"github.com/estateops/estate-api/internal/common/config"
)

// NewStore creates a session store based on the configured type. An empty
// type falls back to the in-memory store.
func NewStore(cfg *config.SessionConfig) (Store, error) {
	switch cfg.Type {
	case "", "memory":
		return NewMemoryStorage(), nil
	case "redis":
		return NewRedisStorage(cfg.Redis)
	default:
		return nil, fmt.Errorf("unsupported session store type: %s", cfg.Type)
	}
}
