package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"content-hub/internal/config"
)

func TestMockLogin(t *testing.T) {
	act := NewActivityService()
	s := NewAuthService(nil, act)

	u, err := s.Login(" someone@example.com ", "anything")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, "Riaz", u.Name)
	assert.Equal(t, "someone@example.com", u.Email)
	assert.Equal(t, "logged in", act.List()[0].Action)

	_, err = s.Login("", "x")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
	_, err = s.Login("a@b.c", "")
	assert.ErrorIs(t, err, ErrEmptyCredentials)

	s.Logout(u)
	assert.Equal(t, "logged out", act.List()[0].Action)
}

func TestAccountLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	s := NewAuthService([]config.Account{{Email: "Alice@Example.com", Name: "Alice Doe", PasswordHash: string(hash)}}, nil)

	u, err := s.Login("alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "acct-alice@example.com", u.ID)
	assert.Equal(t, "Alice Doe", u.Name)
	assert.Contains(t, u.AvatarURL, "u=alice")

	_, err = s.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, IsValidation(err))

	_, err = s.Login("bob@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
