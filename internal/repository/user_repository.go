package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/MinhTrung9443/storefront-api/internal/models"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInsufficientPoints = errors.New("insufficient loyalty points")
)

// UserRepository defines the interface for customer data access
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	ConsumePoints(ctx context.Context, id string, points int64) error
}

// InMemoryUserRepository implements UserRepository with in-memory storage.
// Points consumption is an atomic check-and-decrement so two concurrent
// order submissions by the same user cannot overspend a balance.
type InMemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
}

// NewInMemoryUserRepository creates a user repository with seed data
func NewInMemoryUserRepository() *InMemoryUserRepository {
	users := map[string]*models.User{
		"u1": {ID: "u1", Name: "Minh Trung", Points: 500},
		"u2": {ID: "u2", Name: "Thanh Ha", Points: 120},
		"u3": {ID: "u3", Name: "Quoc Bao", Points: 0},
	}
	return &InMemoryUserRepository{users: users}
}

// GetByID returns a user by ID
func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, exists := r.users[id]
	if !exists {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// ConsumePoints atomically deducts points from the user's balance
func (r *InMemoryUserRepository) ConsumePoints(ctx context.Context, id string, points int64) error {
	if points <= 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, exists := r.users[id]
	if !exists {
		return ErrUserNotFound
	}
	if u.Points < points {
		return ErrInsufficientPoints
	}
	u.Points -= points
	return nil
}
