package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// store implements Database on top of a gorm connection. The driver
// constructors differ only in how they open and migrate the connection.
type store struct {
	db *gorm.DB
}

// Close closes the database connection
func (s *store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction executes fn within a transaction. Nested calls join the
// transaction already stored in the context.
func (s *store) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if TransactionFromContext(ctx) != nil {
		return fn(ctx)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ContextWithTransaction(ctx, tx))
	})
}

func newID() string {
	return uuid.NewString()
}

// CreateUser creates a new user
func (s *store) CreateUser(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = newID()
	}
	return getDBFromContext(ctx, s.db).Create(user).Error
}

// GetUserByEmail retrieves a user by email
func (s *store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := getDBFromContext(ctx, s.db).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by id
func (s *store) GetUserByID(ctx context.Context, id string) (*User, error) {
	var user User
	err := getDBFromContext(ctx, s.db).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user
func (s *store) UpdateUser(ctx context.Context, user *User) error {
	return getDBFromContext(ctx, s.db).Save(user).Error
}

// CountUsers returns the total number of users
func (s *store) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := getDBFromContext(ctx, s.db).Model(&User{}).Count(&count).Error
	return count, err
}

// CreateAgent creates a new agent
func (s *store) CreateAgent(ctx context.Context, agent *Agent) error {
	if agent.ID == "" {
		agent.ID = newID()
	}
	return getDBFromContext(ctx, s.db).Create(agent).Error
}

// GetAgentByID retrieves an agent by id
func (s *store) GetAgentByID(ctx context.Context, id string) (*Agent, error) {
	var agent Agent
	err := getDBFromContext(ctx, s.db).Where("id = ?", id).First(&agent).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// ListAgents returns all agents ordered by creation time
func (s *store) ListAgents(ctx context.Context) ([]*Agent, error) {
	var agents []*Agent
	err := getDBFromContext(ctx, s.db).Order("created_at desc").Find(&agents).Error
	return agents, err
}
