package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/contactbook-api/internal/application"
	"github.com/oksasatya/contactbook-api/internal/infrastructure/memory"
	handlers "github.com/oksasatya/contactbook-api/internal/interface/http"
	"github.com/oksasatya/contactbook-api/internal/interface/middleware"
	"github.com/oksasatya/contactbook-api/internal/router"
	"github.com/oksasatya/contactbook-api/internal/router/modules"
	"github.com/oksasatya/contactbook-api/internal/session"
	"github.com/oksasatya/contactbook-api/pkg/validation"
)

// testApp is the full HTTP surface wired against the in-memory store.
// No Redis client means the rate limiters pass through.
type testApp struct {
	Engine *gin.Engine
	Store  *memory.Store
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	store := memory.NewStore()
	sessions := session.NewMemoryStore()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	authSvc := application.NewAuthService(store.Users(), sessions)
	contactSvc := application.NewContactService(store.Contacts(), nil, logger)
	addressSvc := application.NewAddressService(store.Contacts(), store.Addresses())
	authMW := middleware.Auth(authSvc)

	engine := gin.New()
	reg := router.NewRegistry(engine)
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(authSvc, logger), authMW, nil))
	reg.Add(modules.NewContactModule(handlers.NewContactHandler(contactSvc, logger), authMW, nil))
	reg.Add(modules.NewAddressModule(handlers.NewAddressHandler(addressSvc, logger), authMW))
	reg.RegisterAll()

	return &testApp{Engine: engine, Store: store}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	a.Engine.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account over the API and returns its
// session token.
func (a *testApp) registerAndLogin(t *testing.T, username string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/users", "", gin.H{
		"username": username,
		"password": "secret123",
		"name":     username,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(t, http.MethodPost, "/api/users/login", "", gin.H{
		"username": username,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func decodeErrors(t *testing.T, w *httptest.ResponseRecorder) map[string][]string {
	t.Helper()
	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Errors
}
