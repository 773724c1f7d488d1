package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyhive/internal/models"
	"storyhive/internal/store"
)

func TestCreateUserAssignsIDAndTimestamps(t *testing.T) {
	s := store.New()

	u := newUser(s, "mika", "mika@example.com")
	assert.Equal(t, int64(1), u.ID)
	assert.False(t, u.CreatedAt.IsZero())
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)

	u2 := newUser(s, "rin", "rin@example.com")
	assert.Equal(t, int64(2), u2.ID)

	got, ok := s.GetUser(u.ID)
	require.True(t, ok)
	assert.Equal(t, u, got)
}

func TestCreateUserUniqueness(t *testing.T) {
	s := store.New()
	newUser(s, "mika", "mika@example.com")

	// Same username, everything else differs.
	_, err := s.CreateUser(models.User{Username: "mika", PasswordHash: "other", Email: "new@example.com"})
	assert.ErrorIs(t, err, store.ErrUsernameTaken)

	// Same email, everything else differs.
	_, err = s.CreateUser(models.User{Username: "fresh", PasswordHash: "other", Email: "mika@example.com"})
	assert.ErrorIs(t, err, store.ErrEmailTaken)
}

func TestGetUserByUsernameAndEmail(t *testing.T) {
	s := store.New()
	u := newUser(s, "mika", "mika@example.com")

	got, ok := s.GetUserByUsername("mika")
	require.True(t, ok)
	assert.Equal(t, u.ID, got.ID)

	got, ok = s.GetUserByEmail("mika@example.com")
	require.True(t, ok)
	assert.Equal(t, u.ID, got.ID)

	_, ok = s.GetUserByUsername("nobody")
	assert.False(t, ok)
}

func TestUpdateUserPartialPatch(t *testing.T) {
	s := store.New()
	u := newUser(s, "mika", "mika@example.com")

	bio := "comics and coffee"
	updated, ok := s.UpdateUser(u.ID, models.UserPatch{Bio: &bio})
	require.True(t, ok)
	assert.Equal(t, "comics and coffee", *updated.Bio)
	assert.Equal(t, "mika", updated.Username)
	assert.Equal(t, u.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(u.UpdatedAt))

	_, ok = s.UpdateUser(999, models.UserPatch{Bio: &bio})
	assert.False(t, ok)
}
