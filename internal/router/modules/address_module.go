package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/contactbook-api/internal/interface/http"
)

// AddressModule wires the protected address routes nested under a
// contact. Ownership of the contact is re-verified by the service on
// every call.
type AddressModule struct {
	Handler *handlers.AddressHandler
	Auth    gin.HandlerFunc
}

func NewAddressModule(h *handlers.AddressHandler, auth gin.HandlerFunc) *AddressModule {
	return &AddressModule{Handler: h, Auth: auth}
}

func (m *AddressModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(m.Auth)
	{
		auth.POST("/contacts/:contactId/addresses", m.Handler.Create)
		auth.GET("/contacts/:contactId/addresses", m.Handler.List)
		auth.GET("/contacts/:contactId/addresses/:addressId", m.Handler.Get)
		auth.PUT("/contacts/:contactId/addresses/:addressId", m.Handler.Update)
		auth.DELETE("/contacts/:contactId/addresses/:addressId", m.Handler.Delete)
	}
}
