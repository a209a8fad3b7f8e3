package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/contactbook-api/internal/application"
	"github.com/oksasatya/contactbook-api/internal/domain/entity"
	"github.com/oksasatya/contactbook-api/internal/interface/middleware"
	"github.com/oksasatya/contactbook-api/pkg/response"
	"github.com/oksasatya/contactbook-api/pkg/validation"
)

type AddressHandler struct {
	Svc    *application.AddressService
	Logger *logrus.Logger
}

func NewAddressHandler(svc *application.AddressService, logger *logrus.Logger) *AddressHandler {
	return &AddressHandler{Svc: svc, Logger: logger}
}

type addressRequest struct {
	Street     string `json:"street" binding:"omitempty,max=200"`
	City       string `json:"city" binding:"omitempty,max=100"`
	Province   string `json:"province" binding:"omitempty,max=100"`
	Country    string `json:"country" binding:"required,max=100"`
	PostalCode string `json:"postal_code" binding:"omitempty,max=10"`
}

type addressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code,omitempty"`
}

func toAddressResponse(a *entity.Address) addressResponse {
	return addressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

func (h *AddressHandler) input(req addressRequest) application.AddressInput {
	return application.AddressInput{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
}

func (h *AddressHandler) Create(c *gin.Context) {
	contactID, ok := idParam(c, "contactId")
	if !ok {
		return
	}
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	a, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUser(c), contactID, h.input(req))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Data(c, http.StatusCreated, toAddressResponse(a))
}

func (h *AddressHandler) Get(c *gin.Context) {
	contactID, ok := idParam(c, "contactId")
	if !ok {
		return
	}
	addressID, ok := idParam(c, "addressId")
	if !ok {
		return
	}

	a, err := h.Svc.Get(c.Request.Context(), middleware.CurrentUser(c), contactID, addressID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Data(c, http.StatusOK, toAddressResponse(a))
}

func (h *AddressHandler) Update(c *gin.Context) {
	contactID, ok := idParam(c, "contactId")
	if !ok {
		return
	}
	addressID, ok := idParam(c, "addressId")
	if !ok {
		return
	}
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	a, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), contactID, addressID, h.input(req))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Data(c, http.StatusOK, toAddressResponse(a))
}

func (h *AddressHandler) Delete(c *gin.Context) {
	contactID, ok := idParam(c, "contactId")
	if !ok {
		return
	}
	addressID, ok := idParam(c, "addressId")
	if !ok {
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), middleware.CurrentUser(c), contactID, addressID); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Data(c, http.StatusOK, true)
}

func (h *AddressHandler) List(c *gin.Context) {
	contactID, ok := idParam(c, "contactId")
	if !ok {
		return
	}

	addresses, err := h.Svc.List(c.Request.Context(), middleware.CurrentUser(c), contactID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	items := make([]addressResponse, 0, len(addresses))
	for i := range addresses {
		items = append(items, toAddressResponse(&addresses[i]))
	}
	response.Data(c, http.StatusOK, items)
}
