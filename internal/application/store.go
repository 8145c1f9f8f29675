package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/oksasatya/finance-tracker-api/internal/domain/entity"
	"github.com/oksasatya/finance-tracker-api/internal/domain/repository"
)

const maxSaveAttempts = 3

// saveWithRetry applies mutate to u and saves it. When another request saved
// the user in between, the record is re-read and mutate runs again against
// the fresh copy, so its checks always see current state.
func saveWithRetry(ctx context.Context, users repository.UserRepository, u *entity.User, mutate func(*entity.User) error) (*entity.User, error) {
	for attempt := 1; ; attempt++ {
		if err := mutate(u); err != nil {
			return nil, err
		}
		err := users.Save(ctx, u)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) || attempt == maxSaveAttempts {
			return nil, err
		}
		count(statSaveConflicts)

		u, err = users.FindByID(ctx, u.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		if err != nil {
			return nil, err
		}
	}
}

// wrapUserSave passes client-facing errors through and annotates the rest.
func wrapUserSave(err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	return fmt.Errorf("save user: %w", err)
}
