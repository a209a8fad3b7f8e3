package application

import "errors"

// Terminal request errors. Handlers map each one to a single HTTP
// status; nothing here is retried.
var (
	// ErrUnauthorized covers a missing, unknown, or revoked session
	// token. It never reveals whether a username exists.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is returned for both an unknown username
	// and a wrong password, so the two cases are indistinguishable.
	ErrInvalidCredentials = errors.New("username or password wrong")
	// ErrUsernameTaken is returned on a registration conflict.
	ErrUsernameTaken = errors.New("username already registered")
	// ErrNotFound covers both an absent resource and one owned by a
	// different user; callers cannot tell the cases apart.
	ErrNotFound = errors.New("not found")
)
