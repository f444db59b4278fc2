package repository

import (
	"context"
	"errors"

	"users-service/internal/domain"
)

var (
	// ErrNotFound indicates that no record matched the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail indicates the store rejected an insert because of the
	// uniqueness constraint on email.
	ErrDuplicateEmail = errors.New("duplicate email")
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	ListNewestFirst(ctx context.Context) ([]domain.User, error)
}
