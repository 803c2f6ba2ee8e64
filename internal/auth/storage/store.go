package storage

import (
	"context"
	"errors"
)

var (
	// ErrSessionNotFound is returned when a refresh token has no live
	// session, either because it was revoked or because it expired.
	ErrSessionNotFound = errors.New("session not found")
)

// Session records one issued refresh token. Logging in creates a session,
// refreshing rotates it, changing the password revokes all of a user's
// sessions.
type Session struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	ExpiresAt int64  `json:"expires_at"`
	CreatedAt int64  `json:"created_at"`
}

// Store defines the interface for refresh-token session storage
type Store interface {
	SaveSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, token string) (*Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteSessionsByUser(ctx context.Context, userID string) error
	Close() error
}
