package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haitch/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("alice", "hash", "Alice", "13812345678", authorization.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username())
	assert.Equal(t, "Alice", u.Name())
	assert.Equal(t, authorization.RoleUser, u.Role())
	assert.Zero(t, u.ID())
}

func TestNewUser_RequiresUsername(t *testing.T) {
	_, err := NewUser("", "hash", "", "", authorization.RoleUser)
	assert.Error(t, err)
}

func TestNewUser_RejectsBadPhone(t *testing.T) {
	_, err := NewUser("bob", "hash", "Bob", "12345", authorization.RoleUser)
	assert.Error(t, err)
}

func TestNewUser_InvalidRoleFallsBackToUser(t *testing.T) {
	u, err := NewUser("bob", "hash", "", "", authorization.UserRole("superuser"))
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleUser, u.Role())
}

func TestReconstructUser_RequiresID(t *testing.T) {
	_, err := ReconstructUser(0, "alice", "hash", "", "", authorization.RoleUser, time.Now(), time.Now())
	assert.Error(t, err)
}

func TestUser_UpdateProfile(t *testing.T) {
	u, err := NewUser("alice", "hash", "Alice", "", authorization.RoleUser)
	require.NoError(t, err)

	require.NoError(t, u.UpdateProfile("Alice Chen", "15912345678"))
	assert.Equal(t, "Alice Chen", u.Name())
	assert.Equal(t, "15912345678", u.Phone())

	assert.Error(t, u.UpdateProfile("x", "not-a-phone"))
}

func TestUser_ChangeRole(t *testing.T) {
	u, err := NewUser("alice", "hash", "", "", authorization.RoleUser)
	require.NoError(t, err)

	require.NoError(t, u.ChangeRole(authorization.RoleAdmin))
	assert.Equal(t, authorization.RoleAdmin, u.Role())

	assert.Error(t, u.ChangeRole(authorization.UserRole("nope")))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("13800138000"))
	assert.True(t, IsValidPhone("19912345678"))
	assert.False(t, IsValidPhone("12812345678"))
	assert.False(t, IsValidPhone("138001380001"))
	assert.False(t, IsValidPhone(""))
}
