package entity

import "time"

// User is the aggregate root for the account domain.
// Password always holds a bcrypt hash, never the plain text.
// The session token is deliberately not part of this struct; active
// sessions live in the session store, keyed by their opaque token.
type User struct {
	ID        int64
	Username  string
	Password  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
