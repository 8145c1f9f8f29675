package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/finance-tracker-api/internal/domain/entity"
)

var (
	ErrNotFound        = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrVersionConflict = errors.New("user was modified concurrently")
)

// UserRepository defines the persistence operations for users.
//
// Save writes the whole record only if the stored version still equals
// u.Version, and increments u.Version on success. A stale write returns
// ErrVersionConflict.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Save(ctx context.Context, u *entity.User) error
	Ping(ctx context.Context) error
}
