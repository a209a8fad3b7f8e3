package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addressBody struct {
	ID         int64  `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

func decodeAddress(t *testing.T, w *httptest.ResponseRecorder) addressBody {
	t.Helper()
	var resp struct {
		Data addressBody `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func createAddress(t *testing.T, app *testApp, token string, contactID int64, body gin.H) addressBody {
	t.Helper()
	w := app.do(t, http.MethodPost, fmt.Sprintf("/api/contacts/%d/addresses", contactID), token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeAddress(t, w)
}

func TestCreateAddress(t *testing.T) {
	app := newTestApp(t)
	token := app.registerAndLogin(t, "alice")
	c := createContact(t, app, token, gin.H{"first_name": "John"})

	a := createAddress(t, app, token, c.ID, gin.H{
		"street":      "Jalan Sudirman 1",
		"city":        "Jakarta",
		"province":    "DKI Jakarta",
		"country":     "Indonesia",
		"postal_code": "12190",
	})
	assert.NotZero(t, a.ID)
	assert.Equal(t, "Jakarta", a.City)
	assert.Equal(t, "Indonesia", a.Country)
}

func TestCreateAddressValidation(t *testing.T) {
	app := newTestApp(t)
	token := app.registerAndLogin(t, "alice")
	c := createContact(t, app, token, gin.H{"first_name": "John"})

	w := app.do(t, http.MethodPost, fmt.Sprintf("/api/contacts/%d/addresses", c.ID), token, gin.H{
		"street": "Jalan Sudirman 1",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeErrors(t, w), "country")
}

func TestCreateAddressUnknownContact(t *testing.T) {
	app := newTestApp(t)
	token := app.registerAndLogin(t, "alice")

	w := app.do(t, http.MethodPost, "/api/contacts/9999/addresses", token, gin.H{
		"country": "Indonesia",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, []string{"not found"}, decodeErrors(t, w)["message"])
}

func TestGetAddress(t *testing.T) {
	app := newTestApp(t)
	token := app.registerAndLogin(t, "alice")
	c := createContact(t, app, token, gin.H{"first_name": "John"})
	a := createAddress(t, app, token, c.ID, gin.H{"country": "Indonesia"})

	w := app.do(t, http.MethodGet, fmt.Sprintf("/api/contacts/%d/addresses/%d", c.ID, a.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Indonesia", decodeAddress(t, w).Country)
}

func TestGetAddressThroughForeignContact(t *testing.T) {
	app := newTestApp(t)
	ownerToken := app.registerAndLogin(t, "owner")
	otherToken := app.registerAndLogin(t, "other")
	c := createContact(t, app, ownerToken, gin.H{"first_name": "John"})
	a := createAddress(t, app, ownerToken, c.ID, gin.H{"country": "Indonesia"})

	w := app.do(t, http.MethodGet, fmt.Sprintf("/api/contacts/%d/addresses/%d", c.ID, a.ID), otherToken, nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, []string{"not found"}, decodeErrors(t, w)["message"])
}

func TestGetAddressUnderWrongContact(t *testing.T) {
	app := newTestApp(t)
	token := app.registerAndLogin(t, "alice")
	first := createContact(t, app, token, gin.H{"first_name": "First"})
	second := createContact(t, app, token, gin.H{"first_name": "Second"})
	a := createAddress(t, app, token, first.ID, gin.H{"country": "Indonesia"})

	w := app.do(t, http.MethodGet, fmt.Sprintf("/api/contacts/%d/addresses/%d", second.ID, a.ID), token, nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAddress(t *testing.T) {
	app := newTestApp(t)
	token := app.registerAndLogin(t, "alice")
	c := createContact(t, app, token, gin.H{"first_name": "John"})
	a := createAddress(t, app, token, c.ID, gin.H{"country": "Indonesia", "city": "Jakarta"})

	w := app.do(t, http.MethodPut, fmt.Sprintf("/api/contacts/%d/addresses/%d", c.ID, a.ID), token, gin.H{
		"country": "Indonesia",
		"city":    "Bandung",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Bandung", decodeAddress(t, w).City)
}

func TestDeleteAddress(t *testing.T) {
	app := newTestApp(t)
	token := app.registerAndLogin(t, "alice")
	c := createContact(t, app, token, gin.H{"first_name": "John"})
	a := createAddress(t, app, token, c.ID, gin.H{"country": "Indonesia"})

	w := app.do(t, http.MethodDelete, fmt.Sprintf("/api/contacts/%d/addresses/%d", c.ID, a.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = app.do(t, http.MethodGet, fmt.Sprintf("/api/contacts/%d/addresses/%d", c.ID, a.ID), token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAddresses(t *testing.T) {
	app := newTestApp(t)
	token := app.registerAndLogin(t, "alice")
	c := createContact(t, app, token, gin.H{"first_name": "John"})
	createAddress(t, app, token, c.ID, gin.H{"country": "Indonesia", "city": "Jakarta"})
	createAddress(t, app, token, c.ID, gin.H{"country": "Indonesia", "city": "Bandung"})

	w := app.do(t, http.MethodGet, fmt.Sprintf("/api/contacts/%d/addresses", c.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data []addressBody `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Jakarta", resp.Data[0].City)
	assert.Equal(t, "Bandung", resp.Data[1].City)
}

func TestAddressRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/contacts/1/addresses", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, []string{"unauthorized"}, decodeErrors(t, w)["message"])
}
