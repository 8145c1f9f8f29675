package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/finance-tracker-api/internal/domain/entity"
	"github.com/oksasatya/finance-tracker-api/internal/domain/repository"
)

func newUser(id, email string) *entity.User {
	return &entity.User{ID: id, Email: email, PasswordHash: "h", Name: "Ann", IsActive: true}
}

func TestCreateAndFind(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	u := newUser("u1", "a@x.com")
	require.NoError(t, r.Create(ctx, u))
	assert.EqualValues(t, 1, u.Version)
	assert.False(t, u.CreatedAt.IsZero())

	byID, err := r.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	byEmail, err := r.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	_, err = r.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = r.FindByEmail(ctx, "b@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	require.NoError(t, r.Create(ctx, newUser("u1", "a@x.com")))
	assert.ErrorIs(t, r.Create(ctx, newUser("u2", "a@x.com")), repository.ErrEmailTaken)
}

func TestSave_VersionCheck(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	require.NoError(t, r.Create(ctx, newUser("u1", "a@x.com")))

	first, err := r.FindByID(ctx, "u1")
	require.NoError(t, err)
	second, err := r.FindByID(ctx, "u1")
	require.NoError(t, err)

	now := time.Now()
	first.AddRefreshToken("t1", now.Add(time.Hour), now)
	require.NoError(t, r.Save(ctx, first))
	assert.EqualValues(t, 2, first.Version)

	second.Name = "Bob"
	assert.ErrorIs(t, r.Save(ctx, second), repository.ErrVersionConflict)

	stored, err := r.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, stored.HasRefreshToken("t1"))
	assert.Equal(t, "Ann", stored.Name)
}

func TestSave_Missing(t *testing.T) {
	r := NewUserRepository()
	assert.ErrorIs(t, r.Save(context.Background(), newUser("ghost", "g@x.com")), repository.ErrNotFound)
}

func TestFind_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	require.NoError(t, r.Create(ctx, newUser("u1", "a@x.com")))

	u, err := r.FindByID(ctx, "u1")
	require.NoError(t, err)
	u.Name = "mutated"
	u.RefreshTokens = append(u.RefreshTokens, entity.RefreshToken{Token: "x"})

	again, err := r.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", again.Name)
	assert.Empty(t, again.RefreshTokens)
}
