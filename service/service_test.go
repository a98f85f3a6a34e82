package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userAccountManagement/models"
)

func TestCreateUser(t *testing.T) {
	u := CreateUser("alice", "alice@example.com")
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
}

func TestCreateAdmin_DefaultLevel(t *testing.T) {
	a := CreateAdmin("A", "a@b.com")
	require.NotNil(t, a)
	assert.Equal(t, 1, a.Level)
	assert.Equal(t, models.RoleAdmin, a.Role())
}

func TestCreateAdminWithLevel(t *testing.T) {
	a := CreateAdminWithLevel("B", "b@c.com", 7)
	require.NotNil(t, a)
	assert.Equal(t, 7, a.Level)
}

func TestGetGreeting(t *testing.T) {
	t.Run("user", func(t *testing.T) {
		got, err := GetGreeting(CreateUser("alice", "a@b.com"))
		require.NoError(t, err)
		assert.Equal(t, "Hello, alice!", got)
	})

	t.Run("admin", func(t *testing.T) {
		got, err := GetGreeting(CreateAdmin("boss", "b@c.com"))
		require.NoError(t, err)
		assert.Equal(t, "Hello, boss!", got)
	})

	t.Run("nothing to greet", func(t *testing.T) {
		got, err := GetGreeting(nil)
		assert.ErrorIs(t, err, ErrNoGreeter)
		assert.Empty(t, got)
	})
}
