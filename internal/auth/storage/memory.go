package storage

import (
	"context"
	"sync"
	"time"
)

// MemoryStorage implements the Store interface using in-memory storage
type MemoryStorage struct {
	mu sync.RWMutex

	sessions map[string]*Session
}

// NewMemoryStorage creates a new memory storage instance
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		sessions: make(map[string]*Session),
	}
}

// SaveSession stores a refresh-token session
func (s *MemoryStorage) SaveSession(ctx context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.CreatedAt = time.Now().Unix()
	s.sessions[session.Token] = session
	return nil
}

// GetSession retrieves a session by refresh token
func (s *MemoryStorage) GetSession(ctx context.Context, token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[token]; ok {
		if session.ExpiresAt < time.Now().Unix() {
			delete(s.sessions, token)
			return nil, ErrSessionNotFound
		}
		return session, nil
	}
	return nil, ErrSessionNotFound
}

// DeleteSession revokes a session
func (s *MemoryStorage) DeleteSession(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[token]; !exists {
		return ErrSessionNotFound
	}

	delete(s.sessions, token)
	return nil
}

// DeleteSessionsByUser revokes every session the user holds
func (s *MemoryStorage) DeleteSessionsByUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, token)
		}
	}
	return nil
}

// Close releases nothing for the in-memory store
func (s *MemoryStorage) Close() error {
	return nil
}
