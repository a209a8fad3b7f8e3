package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/contactbook-api/internal/domain/entity"
)

// ErrNotFound is returned when a row does not exist, or exists but is
// scoped to a different owner. Implementations must not distinguish
// the two cases.
var ErrNotFound = errors.New("not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}

// SearchFilter holds the optional contact search predicates. Provided
// filters are combined with logical AND; empty fields impose no
// constraint. Name and Email match as case-insensitive substrings
// (Name against first or last name), Phone as a plain substring.
type SearchFilter struct {
	Name  string
	Email string
	Phone string
}

// ContactRepository defines contact persistence. All single-row reads
// are ownership-scoped: a contact owned by another user is reported as
// ErrNotFound.
type ContactRepository interface {
	Create(ctx context.Context, c *entity.Contact) error
	GetByIDAndUser(ctx context.Context, id, userID int64) (*entity.Contact, error)
	Update(ctx context.Context, c *entity.Contact) error
	// Delete removes the contact and all of its addresses.
	Delete(ctx context.Context, id int64) error
	// Search returns one page of the user's contacts matching the
	// filter, ordered by ascending id, plus the total match count
	// across all pages.
	Search(ctx context.Context, userID int64, f SearchFilter, limit, offset int) ([]entity.Contact, int64, error)
}

// AddressRepository defines address persistence, scoped by the owning
// contact id.
type AddressRepository interface {
	Create(ctx context.Context, a *entity.Address) error
	GetByIDAndContact(ctx context.Context, id, contactID int64) (*entity.Address, error)
	Update(ctx context.Context, a *entity.Address) error
	Delete(ctx context.Context, id int64) error
	ListByContact(ctx context.Context, contactID int64) ([]entity.Address, error)
}
