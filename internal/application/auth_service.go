package application

import (
	"context"
	"errors"

	"github.com/oksasatya/contactbook-api/internal/domain/entity"
	"github.com/oksasatya/contactbook-api/internal/domain/repository"
	"github.com/oksasatya/contactbook-api/internal/session"
	"github.com/oksasatya/contactbook-api/pkg/helpers"
)

const sessionTokenBytes = 32

// AuthService owns registration and the session lifecycle. Tokens are
// opaque bearer credentials: random bytes with no structure, resolved
// through the session store on every request.
type AuthService struct {
	Users    repository.UserRepository
	Sessions session.Store
}

func NewAuthService(users repository.UserRepository, sessions session.Store) *AuthService {
	return &AuthService{Users: users, Sessions: sessions}
}

type RegisterInput struct {
	Username string
	Password string
	Name     string
}

// Register creates the user with a bcrypt password hash and no active
// session.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	_, err := s.Users.GetByUsername(ctx, in.Username)
	switch {
	case err == nil:
		return nil, ErrUsernameTaken
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Username: in.Username, Password: hash, Name: in.Name}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials and issues a fresh session token.
// Unknown username and wrong password collapse into the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !helpers.CheckPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := helpers.NewSessionToken(sessionTokenBytes)
	if err != nil {
		return nil, "", err
	}
	if err := s.Sessions.Create(ctx, token, u.ID); err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Authenticate resolves the bearer token to its user. Every ambiguity
// (empty token, unknown token, missing user row, store error) resolves
// to a denial.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	userID, err := s.Sessions.Resolve(ctx, token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return u, nil
}

// Logout revokes the session; the token stops authenticating as soon
// as this returns.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Delete(ctx, token)
}

type UpdateProfileInput struct {
	Name     string
	Password string
}

// UpdateProfile changes the user's own name and/or password. Empty
// fields are left untouched.
func (s *AuthService) UpdateProfile(ctx context.Context, user *entity.User, in UpdateProfileInput) (*entity.User, error) {
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Password != "" {
		hash, err := helpers.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if err := s.Users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
