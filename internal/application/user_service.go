package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/finance-tracker-api/internal/domain/entity"
	"github.com/oksasatya/finance-tracker-api/internal/domain/repository"
)

// UserService covers profile changes made by an authenticated user.
type UserService struct {
	Users  repository.UserRepository
	Logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Logger: logger}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return u, nil
}

// UpdateName changes the display name of userID.
func (s *UserService) UpdateName(ctx context.Context, userID, name string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if err := checkName(name); err != nil {
		return nil, err
	}

	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	u, err = saveWithRetry(ctx, s.Users, u, func(u *entity.User) error {
		u.Name = name
		return nil
	})
	if err != nil {
		return nil, wrapUserSave(err)
	}
	return u, nil
}

// Deactivate disables the account and revokes all of its refresh tokens.
// Outstanding access tokens stop working at the next gate check.
func (s *UserService) Deactivate(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	u, err = saveWithRetry(ctx, s.Users, u, func(u *entity.User) error {
		u.IsActive = false
		u.RemoveAllRefreshTokens()
		return nil
	})
	if err != nil {
		return nil, wrapUserSave(err)
	}
	return u, nil
}
