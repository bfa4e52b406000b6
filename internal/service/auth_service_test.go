package service

import (
	"testing"

	"quizhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignupAndLogin(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Signup("Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.False(t, user.IsLogin)
	assert.Equal(t, 0, user.TotalScore)

	// The stored password is a bcrypt hash, never the plaintext.
	stored, err := env.users.FindByID(user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))

	token, loggedIn, err := env.auth.Login("alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, loggedIn.IsLogin)

	claims, err := util.ParseJWT(token, testConfig().JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)

	stored, err = env.users.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsLogin)
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	env.mustSignup(t, "Alice", "alice@example.com")

	_, err := env.auth.Signup("Imposter", "alice@example.com", "different-pass")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv(t)

	env.mustSignup(t, "Alice", "alice@example.com")

	_, _, err := env.auth.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	_, _, err = env.auth.Login("alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, util.ErrIncorrectPass)
}

func TestLogoutClearsLoginFlag(t *testing.T) {
	env := newTestEnv(t)

	user := env.mustSignup(t, "Alice", "alice@example.com")
	_, _, err := env.auth.Login("alice@example.com", "password123")
	require.NoError(t, err)

	out, err := env.auth.Logout(user.ID)
	require.NoError(t, err)
	assert.False(t, out.IsLogin)

	stored, err := env.users.FindByID(user.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsLogin)
}

func TestLogoutUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Logout(12345)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
