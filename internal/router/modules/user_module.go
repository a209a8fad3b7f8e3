package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/contactbook-api/internal/interface/http"
	"github.com/oksasatya/contactbook-api/internal/interface/middleware"
)

// UserModule wires account routes.
// Public: POST /api/users, POST /api/users/login
// Protected: GET/PATCH /api/users/current, DELETE /api/users/logout
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    gin.HandlerFunc
	RDB     *redis.Client
}

func NewUserModule(h *handlers.UserHandler, auth gin.HandlerFunc, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Auth: auth, RDB: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIP())
	loginLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIP())

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.POST("/users/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(m.Auth)
	auth.Use(middleware.RateLimit(m.RDB, 120, time.Minute, middleware.KeyByUser()))
	{
		auth.GET("/users/current", m.Handler.Current)
		auth.PATCH("/users/current", m.Handler.Update)
		auth.DELETE("/users/logout", m.Handler.Logout)
	}
}
