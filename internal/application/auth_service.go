package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/finance-tracker-api/internal/domain/entity"
	"github.com/oksasatya/finance-tracker-api/internal/domain/repository"
	"github.com/oksasatya/finance-tracker-api/pkg/helpers"
)

// Principal is the authenticated caller resolved from an access token.
type Principal struct {
	UserID string
	User   *entity.User
}

// Session is the result of a flow that hands out a token pair.
type Session struct {
	User   *entity.User
	Tokens helpers.TokenPair
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// AuthService owns the token lifecycle: issuing pairs, rotating refresh
// tokens and resolving access tokens into principals.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Hasher *helpers.PasswordHasher
	Logger *logrus.Logger

	now func() time.Time
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, hasher *helpers.PasswordHasher, logger *logrus.Logger) *AuthService {
	return &AuthService{
		Users:  users,
		JWT:    jwt,
		Hasher: hasher,
		Logger: logger,
		now:    time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (Session, error) {
	email := NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || in.Password == "" || name == "" {
		return Session{}, ErrRegistrationFieldsRequired
	}
	if err := CheckPassword(in.Password); err != nil {
		return Session{}, err
	}
	if err := checkEmail(email); err != nil {
		return Session{}, err
	}
	if err := checkName(name); err != nil {
		return Session{}, err
	}

	_, err := s.Users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return Session{}, ErrEmailRegistered
	case !errors.Is(err, repository.ErrNotFound):
		return Session{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		ID:            uuid.NewString(),
		Email:         email,
		PasswordHash:  hash,
		Name:          name,
		IsActive:      true,
		RefreshTokens: []entity.RefreshToken{},
	}
	pair, err := s.JWT.GeneratePair(u.ID)
	if err != nil {
		return Session{}, fmt.Errorf("issue tokens: %w", err)
	}
	u.AddRefreshToken(pair.RefreshToken, pair.RefreshTokenExpiry, s.now())

	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return Session{}, ErrEmailRegistered
		}
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	count(statRegistrations)
	return Session{User: u, Tokens: pair}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return Session{}, ErrCredentialsRequired
	}

	u, err := s.Users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		s.Hasher.CompareDummy(password)
		count(statLoginFailures)
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("lookup email: %w", err)
	}
	if !u.IsActive {
		count(statLoginFailures)
		return Session{}, ErrAccountDeactivated
	}
	if !s.Hasher.Compare(u.PasswordHash, password) {
		count(statLoginFailures)
		return Session{}, ErrInvalidCredentials
	}

	pair, err := s.JWT.GeneratePair(u.ID)
	if err != nil {
		return Session{}, fmt.Errorf("issue tokens: %w", err)
	}
	u, err = saveWithRetry(ctx, s.Users, u, func(u *entity.User) error {
		if !u.IsActive {
			return ErrAccountDeactivated
		}
		u.AddRefreshToken(pair.RefreshToken, pair.RefreshTokenExpiry, s.now())
		return nil
	})
	if err != nil {
		return Session{}, wrapUserSave(err)
	}

	count(statLogins)
	return Session{User: u, Tokens: pair}, nil
}

// Refresh redeems refreshToken for a new pair. The presented token is
// consumed; presenting it again fails with ErrRefreshNotRecognized.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	if refreshToken == "" {
		return Session{}, ErrRefreshTokenRequired
	}
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		count(statRefreshRejections)
		return Session{}, ErrInvalidRefreshToken
	}

	u, err := s.Users.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		count(statRefreshRejections)
		return Session{}, ErrUserNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}

	pair, err := s.JWT.GeneratePair(u.ID)
	if err != nil {
		return Session{}, fmt.Errorf("issue tokens: %w", err)
	}
	u, err = saveWithRetry(ctx, s.Users, u, func(u *entity.User) error {
		if !u.IsActive {
			return ErrAccountDeactivated
		}
		if !u.HasRefreshToken(refreshToken) {
			return ErrRefreshNotRecognized
		}
		u.RemoveRefreshToken(refreshToken)
		u.AddRefreshToken(pair.RefreshToken, pair.RefreshTokenExpiry, s.now())
		return nil
	})
	if err != nil {
		var appErr *Error
		if errors.As(err, &appErr) {
			count(statRefreshRejections)
		}
		return Session{}, wrapUserSave(err)
	}

	count(statRefreshes)
	return Session{User: u, Tokens: pair}, nil
}

// Logout forgets refreshToken if it can be attributed to a user. It never
// fails; the returned user id is empty when the token was not usable.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) string {
	count(statLogouts)
	if refreshToken == "" {
		return ""
	}
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return ""
	}
	u, err := s.Users.FindByID(ctx, claims.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			helpers.LogError(s.Logger, "logout lookup failed", err, logrus.Fields{"user_id": claims.UserID})
		}
		return ""
	}
	if !u.HasRefreshToken(refreshToken) {
		return u.ID
	}
	if _, err := saveWithRetry(ctx, s.Users, u, func(u *entity.User) error {
		u.RemoveRefreshToken(refreshToken)
		return nil
	}); err != nil {
		helpers.LogError(s.Logger, "logout save failed", err, logrus.Fields{"user_id": u.ID})
	}
	return u.ID
}

// LogoutAll revokes every refresh token of the user owning refreshToken.
func (s *AuthService) LogoutAll(ctx context.Context, refreshToken string) (*entity.User, error) {
	if refreshToken == "" {
		return nil, ErrNotAuthenticated
	}
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrSessionExpired
	}

	u, err := s.Users.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	u, err = saveWithRetry(ctx, s.Users, u, func(u *entity.User) error {
		if !u.HasRefreshToken(refreshToken) {
			return ErrSessionExpired
		}
		u.RemoveAllRefreshTokens()
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, wrapUserSave(err)
	}

	count(statLogoutAlls)
	return u, nil
}

// Authenticate resolves an access token into the principal it names.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (Principal, error) {
	if accessToken == "" {
		return Principal{}, ErrAccessTokenRequired
	}
	claims, err := s.JWT.ParseAccessToken(accessToken)
	if err != nil {
		if helpers.IsTokenExpired(err) {
			return Principal{}, ErrTokenExpired
		}
		return Principal{}, ErrInvalidToken
	}

	u, err := s.Users.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return Principal{}, ErrUserNotFound
	}
	if err != nil {
		return Principal{}, fmt.Errorf("lookup user: %w", err)
	}
	if !u.IsActive {
		return Principal{}, ErrAccountDeactivated
	}
	return Principal{UserID: u.ID, User: u}, nil
}
