package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-contact-management/internal/domain/entity"
)

// ErrNotFound is returned by every repository when no row matches the key.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a write violates a unique key.
var ErrDuplicate = errors.New("duplicate key")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	CountByUsername(ctx context.Context, username string) (int, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByToken(ctx context.Context, token string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}
