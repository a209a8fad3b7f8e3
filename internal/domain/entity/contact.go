package entity

import "time"

// Contact belongs to exactly one User and is only ever reachable
// through that owner. All fields except FirstName are optional.
type Contact struct {
	ID        int64
	UserID    int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
