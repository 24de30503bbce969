package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAdminRoles(t *testing.T) {
	setupTestDB()

	first, err := RegisterAdmin("root@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "admin", first.Role)

	second, err := RegisterAdmin("viewer@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "viewer", second.Role)

	_, err = RegisterAdmin("root@example.com", "password123")
	assert.ErrorIs(t, err, ErrAdminAlreadyExists)
}

func TestLoginAdmin(t *testing.T) {
	setupTestDB()

	registered, err := RegisterAdmin("root@example.com", "password123")
	assert.NoError(t, err)

	token, admin, err := LoginAdmin("root@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, admin.ID)

	_, _, err = LoginAdmin("root@example.com", "wrong-password")
	assert.Error(t, err)

	_, _, err = LoginAdmin("nobody@example.com", "password123")
	assert.Error(t, err)
}

func TestTokenDenylist(t *testing.T) {
	mr := setupTestRedis()
	defer mr.Close()

	denylisted, err := IsDenylisted("some-token")
	assert.NoError(t, err)
	assert.False(t, denylisted)

	assert.NoError(t, AddToDenylist("some-token", time.Hour))

	denylisted, err = IsDenylisted("some-token")
	assert.NoError(t, err)
	assert.True(t, denylisted)

	// Denylist entries expire with the token they block.
	mr.FastForward(2 * time.Hour)
	denylisted, err = IsDenylisted("some-token")
	assert.NoError(t, err)
	assert.False(t, denylisted)
}
