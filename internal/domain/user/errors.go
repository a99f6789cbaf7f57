package user

import "errors"

var (
	// ErrInvalidCredentials covers unknown usernames, wrong passwords and
	// invalid or expired tokens alike, so callers cannot enumerate users.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrDuplicateUsername = errors.New("username already exists")
	ErrNotFound          = errors.New("user not found")
	ErrInvalidRole       = errors.New("invalid role")
	ErrSelfDelete        = errors.New("cannot delete own user")
	ErrPasswordTooShort  = errors.New("password too short")
	ErrInvalidInput      = errors.New("invalid input")
)
