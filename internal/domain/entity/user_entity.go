package entity

import (
	"time"
)

// MaxRefreshTokens is how many concurrent sessions a user may hold. Adding a
// token beyond this evicts the oldest one.
const MaxRefreshTokens = 5

// RefreshToken is one outstanding session credential in a user's set.
type RefreshToken struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// User is the aggregate root for the account domain.
// PasswordHash holds a bcrypt hash, never the plain password.
//
// RefreshTokens is ordered oldest first. Version is bumped on every
// successful save and guards against lost updates.
type User struct {
	ID            string
	Email         string
	PasswordHash  string
	Name          string
	IsActive      bool
	RefreshTokens []RefreshToken
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PublicUser is the only user shape that leaves the service.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// PruneExpiredTokens drops every refresh token whose expiry is not after now.
func (u *User) PruneExpiredTokens(now time.Time) {
	kept := u.RefreshTokens[:0]
	for _, rt := range u.RefreshTokens {
		if rt.ExpiresAt.After(now) {
			kept = append(kept, rt)
		}
	}
	u.RefreshTokens = kept
}

// AddRefreshToken prunes expired entries, appends token and trims the set to
// MaxRefreshTokens by discarding from the front.
func (u *User) AddRefreshToken(token string, expiresAt, now time.Time) {
	u.PruneExpiredTokens(now)
	u.RefreshTokens = append(u.RefreshTokens, RefreshToken{
		Token:     token,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	})
	if n := len(u.RefreshTokens); n > MaxRefreshTokens {
		u.RefreshTokens = append([]RefreshToken(nil), u.RefreshTokens[n-MaxRefreshTokens:]...)
	}
}

// RemoveRefreshToken deletes token from the set. Absent tokens are ignored.
func (u *User) RemoveRefreshToken(token string) {
	kept := u.RefreshTokens[:0]
	for _, rt := range u.RefreshTokens {
		if rt.Token != token {
			kept = append(kept, rt)
		}
	}
	u.RefreshTokens = kept
}

func (u *User) RemoveAllRefreshTokens() {
	u.RefreshTokens = []RefreshToken{}
}

func (u *User) HasRefreshToken(token string) bool {
	for _, rt := range u.RefreshTokens {
		if rt.Token == token {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, so callers can mutate without touching shared state.
func (u *User) Clone() *User {
	cp := *u
	cp.RefreshTokens = append([]RefreshToken(nil), u.RefreshTokens...)
	return &cp
}
