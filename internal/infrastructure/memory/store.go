// Package memory provides in-memory implementations of the domain
// repositories. They honor the same contracts as the postgres
// implementations (ownership-scoped reads, cascading contact deletes,
// id-ordered search pages) and back the unit tests and local tooling.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oksasatya/contactbook-api/internal/domain/entity"
	"github.com/oksasatya/contactbook-api/internal/domain/repository"
)

// Store holds all three entity tables behind one mutex so that a
// contact delete and its address cascade are a single atomic step.
type Store struct {
	mu          sync.Mutex
	users       map[int64]entity.User
	contacts    map[int64]entity.Contact
	addresses   map[int64]entity.Address
	nextUser    int64
	nextContact int64
	nextAddress int64
}

func NewStore() *Store {
	return &Store{
		users:     make(map[int64]entity.User),
		contacts:  make(map[int64]entity.Contact),
		addresses: make(map[int64]entity.Address),
	}
}

func (s *Store) Users() repository.UserRepository       { return &userRepo{s} }
func (s *Store) Contacts() repository.ContactRepository { return &contactRepo{s} }
func (s *Store) Addresses() repository.AddressRepository {
	return &addressRepo{s}
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextUser++
	u.ID = r.s.nextUser
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.s.users[u.ID] = *u
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	r.s.users[u.ID] = *u
	return nil
}

type contactRepo struct{ s *Store }

func (r *contactRepo) Create(_ context.Context, c *entity.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextContact++
	c.ID = r.s.nextContact
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.s.contacts[c.ID] = *c
	return nil
}

func (r *contactRepo) GetByIDAndUser(_ context.Context, id, userID int64) (*entity.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.contacts[id]
	if !ok || c.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *contactRepo) Update(_ context.Context, c *entity.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.contacts[c.ID]; !ok {
		return repository.ErrNotFound
	}
	c.UpdatedAt = time.Now()
	r.s.contacts[c.ID] = *c
	return nil
}

func (r *contactRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.contacts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.contacts, id)
	for aid, a := range r.s.addresses {
		if a.ContactID == id {
			delete(r.s.addresses, aid)
		}
	}
	return nil
}

func (r *contactRepo) Search(_ context.Context, userID int64, f repository.SearchFilter, limit, offset int) ([]entity.Contact, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	matched := make([]entity.Contact, 0)
	for _, c := range r.s.contacts {
		if c.UserID != userID {
			continue
		}
		if !matches(c, f) {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	if offset >= len(matched) {
		return []entity.Contact{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func matches(c entity.Contact, f repository.SearchFilter) bool {
	if f.Name != "" {
		name := strings.ToLower(f.Name)
		if !strings.Contains(strings.ToLower(c.FirstName), name) &&
			!strings.Contains(strings.ToLower(c.LastName), name) {
			return false
		}
	}
	if f.Email != "" && !strings.Contains(strings.ToLower(c.Email), strings.ToLower(f.Email)) {
		return false
	}
	if f.Phone != "" && !strings.Contains(c.Phone, f.Phone) {
		return false
	}
	return true
}

type addressRepo struct{ s *Store }

func (r *addressRepo) Create(_ context.Context, a *entity.Address) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextAddress++
	a.ID = r.s.nextAddress
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.s.addresses[a.ID] = *a
	return nil
}

func (r *addressRepo) GetByIDAndContact(_ context.Context, id, contactID int64) (*entity.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.addresses[id]
	if !ok || a.ContactID != contactID {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r *addressRepo) Update(_ context.Context, a *entity.Address) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.addresses[a.ID]; !ok {
		return repository.ErrNotFound
	}
	a.UpdatedAt = time.Now()
	r.s.addresses[a.ID] = *a
	return nil
}

func (r *addressRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.addresses[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.addresses, id)
	return nil
}

func (r *addressRepo) ListByContact(_ context.Context, contactID int64) ([]entity.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Address, 0)
	for _, a := range r.s.addresses {
		if a.ContactID == contactID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
