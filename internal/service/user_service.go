package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"users-service/internal/domain"
	"users-service/internal/repository"
)

var (
	// ErrEmailTaken is returned when attempting to create a user with an email
	// that already belongs to another user.
	ErrEmailTaken = errors.New("email already exists")
	// ErrUserNotFound is returned when a lookup matches no user.
	ErrUserNotFound = errors.New("user does not exist")
)

// UserService describes user record operations.
type UserService interface {
	Create(ctx context.Context, username, email string) (*domain.User, error)
	CreateUnchecked(ctx context.Context, username, email string) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListNewestFirst(ctx context.Context) ([]domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Create adds a new user, enforcing the one-row-per-email invariant.
//
// The email is checked first so the common duplicate case fails without
// touching the insert path. Between that check and the insert another request
// may win the race; the store's unique constraint catches it, and the lost
// race is reported as the same ErrEmailTaken rather than a store error.
func (s *userService) Create(ctx context.Context, username, email string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}

	user := domain.NewUser(username, email)
	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// CreateUnchecked inserts without the duplicate pre-check. It backs the index
// form, which historically never enforced the email invariant; a duplicate
// submit surfaces as the store's constraint error.
func (s *userService) CreateUnchecked(ctx context.Context, username, email string) (*domain.User, error) {
	user := domain.NewUser(strings.TrimSpace(username), strings.TrimSpace(email))
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) ListNewestFirst(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
