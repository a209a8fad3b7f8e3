package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/contactbook-api/internal/interface/http"
	"github.com/oksasatya/contactbook-api/internal/interface/middleware"
)

// ContactModule wires the protected contact CRUD and search routes.
type ContactModule struct {
	Handler *handlers.ContactHandler
	Auth    gin.HandlerFunc
	RDB     *redis.Client
}

func NewContactModule(h *handlers.ContactHandler, auth gin.HandlerFunc, rdb *redis.Client) *ContactModule {
	return &ContactModule{Handler: h, Auth: auth, RDB: rdb}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(m.Auth)
	auth.Use(middleware.RateLimit(m.RDB, 300, time.Minute, middleware.KeyByUser()))
	{
		auth.POST("/contacts", m.Handler.Create)
		auth.GET("/contacts", m.Handler.Search)
		auth.GET("/contacts/:contactId", m.Handler.Get)
		auth.PUT("/contacts/:contactId", m.Handler.Update)
		auth.DELETE("/contacts/:contactId", m.Handler.Delete)
	}
}
