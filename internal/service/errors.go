package service

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyPost          = errors.New("post needs text content or a file")
	ErrNoClient           = errors.New("client is required")
	ErrBadPlatform        = errors.New("unknown platform")
	ErrBadTime            = errors.New("time must be HH:mm")
	ErrBadDate            = errors.New("date must be YYYY-MM-DD")
	ErrUnknownEmployee    = errors.New("unknown employee code")
	ErrEmptyCredentials   = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmptyMessage       = errors.New("message is empty")
	ErrNotFound           = errors.New("not found")
	ErrPreviewExpired     = errors.New("import preview expired, upload again")
	ErrBadView            = errors.New("unknown view")
)

// IsValidation reports whether err comes from bad caller input.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrEmptyPost, ErrNoClient, ErrBadPlatform, ErrBadTime, ErrBadDate,
		ErrEmptyMessage, ErrEmptyCredentials, ErrPreviewExpired, ErrBadView,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// newID is time ordered with a random tail (UUIDv7).
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
