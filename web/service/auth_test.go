package service

import (
	"testing"

	"movielist/database"
	"movielist/database/model"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticate(t *testing.T) {
	setup(t)
	defer teardown()

	registerUser(t, "Alice", "alice@example.com")
	authService := NewAuthService()

	// Correct credentials resolve to the matching identity.
	user, err := authService.Authenticate("alice@example.com", "Str0ng!pass")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)

	// Wrong password and unknown email are distinguishable rejections.
	_, err = authService.Authenticate("alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = authService.Authenticate("nobody@example.com", "Str0ng!pass")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.NotErrorIs(t, ErrUserNotFound, ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	setup(t)
	defer teardown()

	user := registerUser(t, "Bob", "bob@example.com")
	authService := NewAuthService()

	token := authService.ToToken(user)
	restored := authService.FromToken(token)
	assert.NotNil(t, restored)
	assert.Equal(t, user.Id, restored.Id)
	assert.Equal(t, user.Email, restored.Email)

	// Garbage and stale tokens degrade to anonymous.
	assert.Nil(t, authService.FromToken("not-a-token"))

	err := database.GetDB().Delete(&model.User{}, user.Id).Error
	assert.NoError(t, err)
	assert.Nil(t, authService.FromToken(token))
}
