package application

import (
	"context"
	"errors"

	"github.com/oksasatya/contactbook-api/internal/domain/entity"
	"github.com/oksasatya/contactbook-api/internal/domain/repository"
)

// AddressService owns address CRUD under a contact. Every operation
// walks the full ownership chain in order: the contact is resolved
// against the authenticated user first, then the address against that
// contact, short-circuiting on the first failure.
type AddressService struct {
	Contacts  repository.ContactRepository
	Addresses repository.AddressRepository
}

func NewAddressService(contacts repository.ContactRepository, addresses repository.AddressRepository) *AddressService {
	return &AddressService{Contacts: contacts, Addresses: addresses}
}

type AddressInput struct {
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string
}

func (s *AddressService) Create(ctx context.Context, user *entity.User, contactID int64, in AddressInput) (*entity.Address, error) {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return nil, err
	}
	a := &entity.Address{
		ContactID:  contact.ID,
		Street:     in.Street,
		City:       in.City,
		Province:   in.Province,
		Country:    in.Country,
		PostalCode: in.PostalCode,
	}
	if err := s.Addresses.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Get(ctx context.Context, user *entity.User, contactID, addressID int64) (*entity.Address, error) {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return nil, err
	}
	return s.resolveAddress(ctx, contact, addressID)
}

func (s *AddressService) Update(ctx context.Context, user *entity.User, contactID, addressID int64, in AddressInput) (*entity.Address, error) {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return nil, err
	}
	a, err := s.resolveAddress(ctx, contact, addressID)
	if err != nil {
		return nil, err
	}
	a.Street = in.Street
	a.City = in.City
	a.Province = in.Province
	a.Country = in.Country
	a.PostalCode = in.PostalCode
	if err := s.Addresses.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Delete(ctx context.Context, user *entity.User, contactID, addressID int64) error {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return err
	}
	a, err := s.resolveAddress(ctx, contact, addressID)
	if err != nil {
		return err
	}
	return s.Addresses.Delete(ctx, a.ID)
}

func (s *AddressService) List(ctx context.Context, user *entity.User, contactID int64) ([]entity.Address, error) {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return nil, err
	}
	return s.Addresses.ListByContact(ctx, contact.ID)
}

func (s *AddressService) resolveContact(ctx context.Context, user *entity.User, contactID int64) (*entity.Contact, error) {
	c, err := s.Contacts.GetByIDAndUser(ctx, contactID, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *AddressService) resolveAddress(ctx context.Context, contact *entity.Contact, addressID int64) (*entity.Address, error) {
	a, err := s.Addresses.GetByIDAndContact(ctx, addressID, contact.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
