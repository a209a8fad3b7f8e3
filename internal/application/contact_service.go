package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/contactbook-api/internal/domain/entity"
	"github.com/oksasatya/contactbook-api/internal/domain/repository"
	"github.com/oksasatya/contactbook-api/pkg/events"
	"github.com/oksasatya/contactbook-api/pkg/helpers"
)

const defaultPageSize = 10

// ContactService owns contact CRUD and the filtered, paginated search.
// Every single-contact operation resolves ownership first; a contact
// owned by another user is indistinguishable from a missing one.
type ContactService struct {
	Contacts repository.ContactRepository
	Pub      *helpers.RabbitPublisher
	Logger   *logrus.Logger
}

func NewContactService(contacts repository.ContactRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *ContactService {
	return &ContactService{Contacts: contacts, Pub: pub, Logger: logger}
}

type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// ContactPage is one page of search results. Total counts matches
// across all pages; CurrentPage echoes the requested page unclamped.
type ContactPage struct {
	Items       []entity.Contact
	Total       int64
	CurrentPage int
	Size        int
}

func (s *ContactService) Create(ctx context.Context, user *entity.User, in ContactInput) (*entity.Contact, error) {
	c := &entity.Contact{
		UserID:    user.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
	}
	if err := s.Contacts.Create(ctx, c); err != nil {
		return nil, err
	}
	s.publish(ctx, events.ActionUpsert, c)
	return c, nil
}

func (s *ContactService) Get(ctx context.Context, user *entity.User, contactID int64) (*entity.Contact, error) {
	return s.resolveOwned(ctx, user.ID, contactID)
}

func (s *ContactService) Update(ctx context.Context, user *entity.User, contactID int64, in ContactInput) (*entity.Contact, error) {
	c, err := s.resolveOwned(ctx, user.ID, contactID)
	if err != nil {
		return nil, err
	}
	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.Email = in.Email
	c.Phone = in.Phone
	if err := s.Contacts.Update(ctx, c); err != nil {
		return nil, err
	}
	s.publish(ctx, events.ActionUpsert, c)
	return c, nil
}

// Delete removes the contact and, through the store, all of its
// addresses.
func (s *ContactService) Delete(ctx context.Context, user *entity.User, contactID int64) error {
	c, err := s.resolveOwned(ctx, user.ID, contactID)
	if err != nil {
		return err
	}
	if err := s.Contacts.Delete(ctx, c.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.publish(ctx, events.ActionDelete, c)
	return nil
}

// Search returns the page of the user's contacts matching the filter.
// Page defaults to 1 and size to 10 when non-positive. An empty page
// (no matches, or a page past the end) is a valid result, not an
// error.
func (s *ContactService) Search(ctx context.Context, user *entity.User, f repository.SearchFilter, page, size int) (*ContactPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}

	items, total, err := s.Contacts.Search(ctx, user.ID, f, size, (page-1)*size)
	if err != nil {
		return nil, err
	}
	return &ContactPage{Items: items, Total: total, CurrentPage: page, Size: size}, nil
}

func (s *ContactService) resolveOwned(ctx context.Context, userID, contactID int64) (*entity.Contact, error) {
	c, err := s.Contacts.GetByIDAndUser(ctx, contactID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// publish mirrors the write onto the indexer queue, best effort. A
// publish failure never fails the request.
func (s *ContactService) publish(ctx context.Context, action string, c *entity.Contact) {
	if s.Pub == nil {
		return
	}
	ev := events.ContactEvent{
		Action:    action,
		ContactID: c.ID,
		UserID:    c.UserID,
	}
	if action == events.ActionUpsert {
		ev.FirstName = c.FirstName
		ev.LastName = c.LastName
		ev.Email = c.Email
		ev.Phone = c.Phone
	}
	if err := s.Pub.PublishJSON(ctx, ev); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("contact_id", c.ID).Warn("publish contact event failed")
	}
}
