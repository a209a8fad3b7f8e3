package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/contactbook-api/internal/application"
	"github.com/oksasatya/contactbook-api/internal/domain/entity"
	"github.com/oksasatya/contactbook-api/internal/domain/repository"
	"github.com/oksasatya/contactbook-api/internal/interface/middleware"
	"github.com/oksasatya/contactbook-api/pkg/response"
	"github.com/oksasatya/contactbook-api/pkg/validation"
)

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

type contactRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"omitempty,max=100"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
}

type contactResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func toContactResponse(c *entity.Contact) contactResponse {
	return contactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	contact, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUser(c), application.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Data(c, http.StatusCreated, toContactResponse(contact))
}

func (h *ContactHandler) Get(c *gin.Context) {
	contactID, ok := idParam(c, "contactId")
	if !ok {
		return
	}

	contact, err := h.Svc.Get(c.Request.Context(), middleware.CurrentUser(c), contactID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Data(c, http.StatusOK, toContactResponse(contact))
}

func (h *ContactHandler) Update(c *gin.Context) {
	contactID, ok := idParam(c, "contactId")
	if !ok {
		return
	}
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	contact, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), contactID, application.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Data(c, http.StatusOK, toContactResponse(contact))
}

func (h *ContactHandler) Delete(c *gin.Context) {
	contactID, ok := idParam(c, "contactId")
	if !ok {
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), middleware.CurrentUser(c), contactID); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Data(c, http.StatusOK, true)
}

func (h *ContactHandler) Search(c *gin.Context) {
	filter := repository.SearchFilter{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Phone: c.Query("phone"),
	}
	page := queryInt(c, "page", 1)
	size := queryInt(c, "size", 10)

	result, err := h.Svc.Search(c.Request.Context(), middleware.CurrentUser(c), filter, page, size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}

	items := make([]contactResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toContactResponse(&result.Items[i]))
	}
	response.DataWithMeta(c, http.StatusOK, items, response.Meta{
		Total:       result.Total,
		CurrentPage: result.CurrentPage,
		Size:        result.Size,
	})
}
