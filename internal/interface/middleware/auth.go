package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/contactbook-api/internal/application"
	"github.com/oksasatya/contactbook-api/internal/domain/entity"
	"github.com/oksasatya/contactbook-api/pkg/response"
)

const userContextKey = "user"

// Auth resolves the opaque token from the Authorization header and
// stores the authenticated user in the Gin context. Any failure aborts
// with 401; the error body never hints at why the token was rejected.
func Auth(auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := auth.Authenticate(c.Request.Context(), TokenFromHeader(c))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		c.Set(userContextKey, u)
		c.Next()
	}
}

// TokenFromHeader extracts the raw session token. A "Bearer " prefix
// is tolerated but not required.
func TokenFromHeader(c *gin.Context) string {
	token := strings.TrimSpace(c.GetHeader("Authorization"))
	return strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
}

// CurrentUser returns the user set by Auth, or nil outside a protected
// route.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
