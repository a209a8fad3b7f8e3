package application

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/contactbook-api/internal/domain/entity"
	"github.com/oksasatya/contactbook-api/internal/domain/repository"
	"github.com/oksasatya/contactbook-api/internal/infrastructure/memory"
)

func newContactFixture(t *testing.T) (*ContactService, *entity.User, *entity.User) {
	t.Helper()
	store := memory.NewStore()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	svc := NewContactService(store.Contacts(), nil, logger)

	owner := &entity.User{Username: "owner", Password: "x", Name: "Owner"}
	other := &entity.User{Username: "other", Password: "x", Name: "Other"}
	require.NoError(t, store.Users().Create(context.Background(), owner))
	require.NoError(t, store.Users().Create(context.Background(), other))
	return svc, owner, other
}

func seedContacts(t *testing.T, svc *ContactService, user *entity.User, n int) []entity.Contact {
	t.Helper()
	out := make([]entity.Contact, 0, n)
	for i := 0; i < n; i++ {
		c, err := svc.Create(context.Background(), user, ContactInput{
			FirstName: fmt.Sprintf("first%d", i),
			LastName:  fmt.Sprintf("last%d", i),
			Email:     fmt.Sprintf("demo%d@example.com", i),
			Phone:     fmt.Sprintf("08123%d", i),
		})
		require.NoError(t, err)
		out = append(out, *c)
	}
	return out
}

func TestContactCRUD(t *testing.T) {
	svc, owner, _ := newContactFixture(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, owner, ContactInput{FirstName: "John", LastName: "Doe", Email: "john@example.com", Phone: "0812345"})
	require.NoError(t, err)
	require.NotZero(t, c.ID)

	got, err := svc.Get(ctx, owner, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)

	updated, err := svc.Update(ctx, owner, c.ID, ContactInput{FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)
	assert.Equal(t, "Jane", updated.FirstName)
	assert.Empty(t, updated.Email)

	require.NoError(t, svc.Delete(ctx, owner, c.ID))

	_, err = svc.Get(ctx, owner, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactOwnershipIsOpaque(t *testing.T) {
	svc, owner, other := newContactFixture(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, owner, ContactInput{FirstName: "John"})
	require.NoError(t, err)

	_, notOwned := svc.Get(ctx, other, c.ID)
	_, missing := svc.Get(ctx, other, c.ID+1000)

	assert.ErrorIs(t, notOwned, ErrNotFound)
	assert.ErrorIs(t, missing, ErrNotFound)
	assert.Equal(t, notOwned, missing)

	_, err = svc.Update(ctx, other, c.ID, ContactInput{FirstName: "Hacked"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, other, c.ID), ErrNotFound)

	got, err := svc.Get(ctx, owner, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)
}

func TestSearchDefaultPage(t *testing.T) {
	svc, owner, _ := newContactFixture(t)
	seedContacts(t, svc, owner, 20)

	page, err := svc.Search(context.Background(), owner, repository.SearchFilter{Name: "first"}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page.Items, 10)
	assert.EqualValues(t, 20, page.Total)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 10, page.Size)
}

func TestSearchSecondPage(t *testing.T) {
	svc, owner, _ := newContactFixture(t)
	all := seedContacts(t, svc, owner, 20)

	page, err := svc.Search(context.Background(), owner, repository.SearchFilter{}, 2, 5)
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.EqualValues(t, 20, page.Total)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, all[5].ID, page.Items[0].ID, "ordering by id must be stable across pages")
}

func TestSearchFilters(t *testing.T) {
	svc, owner, _ := newContactFixture(t)
	seedContacts(t, svc, owner, 20)
	ctx := context.Background()

	byName, err := svc.Search(ctx, owner, repository.SearchFilter{Name: "LAST1"}, 1, 100)
	require.NoError(t, err)
	// last1 plus last10..last19
	assert.EqualValues(t, 11, byName.Total)

	byEmail, err := svc.Search(ctx, owner, repository.SearchFilter{Email: "demo3@"}, 1, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 1, byEmail.Total)

	byPhone, err := svc.Search(ctx, owner, repository.SearchFilter{Phone: "0812319"}, 1, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 1, byPhone.Total)
	assert.Equal(t, "first19", byPhone.Items[0].FirstName)
}

func TestSearchNoMatches(t *testing.T) {
	svc, owner, _ := newContactFixture(t)
	seedContacts(t, svc, owner, 20)

	page, err := svc.Search(context.Background(), owner, repository.SearchFilter{Name: "nobody"}, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 0, page.Total)
}

func TestSearchPagePastEnd(t *testing.T) {
	svc, owner, _ := newContactFixture(t)
	seedContacts(t, svc, owner, 20)

	page, err := svc.Search(context.Background(), owner, repository.SearchFilter{}, 100, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 20, page.Total)
	assert.Equal(t, 100, page.CurrentPage, "page is echoed back even past the end")
}

func TestSearchScopedToUser(t *testing.T) {
	svc, owner, other := newContactFixture(t)
	seedContacts(t, svc, owner, 3)
	seedContacts(t, svc, other, 2)

	page, err := svc.Search(context.Background(), other, repository.SearchFilter{}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	for _, c := range page.Items {
		assert.Equal(t, other.ID, c.UserID)
	}
}
