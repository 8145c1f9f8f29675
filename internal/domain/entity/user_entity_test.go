package entity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestAddRefreshToken_CapsAtFiveEvictingOldest(t *testing.T) {
	u := &User{}
	for i := 1; i <= 6; i++ {
		now := t0.Add(time.Duration(i) * time.Minute)
		u.AddRefreshToken(fmt.Sprintf("tok-%d", i), now.Add(7*24*time.Hour), now)
	}

	require.Len(t, u.RefreshTokens, MaxRefreshTokens)
	assert.False(t, u.HasRefreshToken("tok-1"))
	for i := 2; i <= 6; i++ {
		assert.True(t, u.HasRefreshToken(fmt.Sprintf("tok-%d", i)))
	}
	assert.Equal(t, "tok-2", u.RefreshTokens[0].Token)
	assert.Equal(t, "tok-6", u.RefreshTokens[4].Token)
}

func TestAddRefreshToken_PrunesExpiredFirst(t *testing.T) {
	u := &User{RefreshTokens: []RefreshToken{
		{Token: "old", CreatedAt: t0.Add(-8 * 24 * time.Hour), ExpiresAt: t0.Add(-time.Hour)},
		{Token: "live", CreatedAt: t0.Add(-time.Hour), ExpiresAt: t0.Add(time.Hour)},
	}}

	u.AddRefreshToken("new", t0.Add(7*24*time.Hour), t0)

	assert.False(t, u.HasRefreshToken("old"))
	assert.True(t, u.HasRefreshToken("live"))
	assert.True(t, u.HasRefreshToken("new"))
	assert.Equal(t, t0, u.RefreshTokens[1].CreatedAt)
}

func TestPruneExpiredTokens_ExpiryAtNowIsExpired(t *testing.T) {
	u := &User{RefreshTokens: []RefreshToken{{Token: "edge", ExpiresAt: t0}}}
	u.PruneExpiredTokens(t0)
	assert.Empty(t, u.RefreshTokens)
}

func TestRemoveRefreshToken(t *testing.T) {
	u := &User{}
	u.AddRefreshToken("a", t0.Add(time.Hour), t0)
	u.AddRefreshToken("b", t0.Add(time.Hour), t0)

	u.RemoveRefreshToken("missing")
	assert.Len(t, u.RefreshTokens, 2)

	u.RemoveRefreshToken("a")
	assert.False(t, u.HasRefreshToken("a"))
	assert.True(t, u.HasRefreshToken("b"))

	u.RemoveAllRefreshTokens()
	assert.Empty(t, u.RefreshTokens)
	assert.NotNil(t, u.RefreshTokens)
}

func TestClone_IsIndependent(t *testing.T) {
	u := &User{ID: "u1"}
	u.AddRefreshToken("a", t0.Add(time.Hour), t0)

	cp := u.Clone()
	cp.AddRefreshToken("b", t0.Add(time.Hour), t0)
	cp.Name = "changed"

	assert.Len(t, u.RefreshTokens, 1)
	assert.Empty(t, u.Name)
}

func TestPublic_OmitsSecrets(t *testing.T) {
	u := &User{ID: "u1", Email: "a@x.com", PasswordHash: "hash", Name: "Ann", IsActive: true}
	u.AddRefreshToken("secret", t0.Add(time.Hour), t0)

	p := u.Public()
	assert.Equal(t, PublicUser{ID: "u1", Email: "a@x.com", Name: "Ann", IsActive: true}, p)
}
