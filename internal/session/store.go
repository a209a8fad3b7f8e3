// Package session tracks active sessions as explicit records keyed by
// their opaque token, separate from the user's durable profile. A user
// has at most one active session: creating a new one revokes the
// previous token.
package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a token does not map to an active
// session, whether it never existed or was revoked.
var ErrNotFound = errors.New("session not found")

type Store interface {
	// Create records token -> userID, replacing any session the user
	// already holds so the old token stops authenticating.
	Create(ctx context.Context, token string, userID int64) error
	// Resolve returns the user id owning the token.
	Resolve(ctx context.Context, token string) (int64, error)
	// Delete revokes the session. Deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error
}
