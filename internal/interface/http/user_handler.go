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

type UserHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewUserHandler(auth *application.AuthService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Auth: auth, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=100"`
	Name     string `json:"name" binding:"required,max=100"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=100"`
}

type updateUserRequest struct {
	Name     string `json:"name" binding:"omitempty,max=100"`
	Password string `json:"password" binding:"omitempty,max=100"`
}

type userResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

func toUserResponse(u *entity.User, token string) userResponse {
	return userResponse{Username: u.Username, Name: u.Name, Token: token}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	u, err := h.Auth.Register(c.Request.Context(), application.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		if err == application.ErrUsernameTaken {
			response.ValidationError(c, map[string][]string{
				"username": {"username already registered"},
			})
			return
		}
		writeError(c, h.Logger, err)
		return
	}
	response.Data(c, http.StatusCreated, toUserResponse(u, ""))
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	u, token, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Data(c, http.StatusOK, toUserResponse(u, token))
}

func (h *UserHandler) Current(c *gin.Context) {
	u := middleware.CurrentUser(c)
	response.Data(c, http.StatusOK, toUserResponse(u, ""))
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	u, err := h.Auth.UpdateProfile(c.Request.Context(), middleware.CurrentUser(c), application.UpdateProfileInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Data(c, http.StatusOK, toUserResponse(u, ""))
}

func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.Auth.Logout(c.Request.Context(), middleware.TokenFromHeader(c)); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Data(c, http.StatusOK, true)
}
