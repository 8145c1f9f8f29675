package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	reg := f.register(t, "a@x.com")

	u, err := f.prof.UpdateName(ctx, reg.User.ID, "  Annabel ")
	require.NoError(t, err)
	assert.Equal(t, "Annabel", u.Name)
	assert.Equal(t, "Annabel", f.stored(t, reg.User.ID).Name)

	_, err = f.prof.UpdateName(ctx, reg.User.ID, "A")
	assert.Equal(t, ErrNameTooShort, err)

	_, err = f.prof.UpdateName(ctx, "missing", "Someone")
	assert.Equal(t, ErrUserNotFound, err)
}

func TestDeactivate_RevokesSessions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	reg := f.register(t, "a@x.com")

	u, err := f.prof.Deactivate(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.False(t, u.IsActive)
	assert.Empty(t, u.RefreshTokens)

	stored := f.stored(t, reg.User.ID)
	assert.False(t, stored.IsActive)
	assert.Empty(t, stored.RefreshTokens)
}
