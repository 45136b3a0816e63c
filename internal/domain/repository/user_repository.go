package repository

import (
	"context"

	"steakz/internal/domain/entity"
	"steakz/internal/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrUserNotFound is returned when an account is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for account-related database operations.
type UserRepository interface {
	// CreateUser persists a new account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves an account by its unique ID.
	FindUserByID(ctx context.Context, id uint) (*entity.User, error)

	// FindUserByEmail retrieves an account by its login email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListStaff retrieves staff accounts, optionally restricted to one branch.
	ListStaff(ctx context.Context, branchID *uint) ([]*entity.User, error)
}
