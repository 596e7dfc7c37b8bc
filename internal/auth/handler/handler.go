package handler

import (
	"errors"
	"net/http"

	"leadboard_backend/internal/auth/service"
	"leadboard_backend/internal/auth/transport"
	"leadboard_backend/platform/httpkit"
	"leadboard_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}

// Login answers 401 on any credential mismatch. The client treats 401 as a
// signal to drop its stored token and show the sign-in screen again.
func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	token, admin, err := h.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpkit.Error(c, http.StatusUnauthorized, "invalid email or password", nil)
			return
		}
		httpkit.Error(c, http.StatusInternalServerError, "sign-in failed", nil)
		return
	}

	httpkit.OK(c, transport.AuthResponse{
		Token: token,
		Admin: transport.AdminResponse{
			ID:    admin.ID.String(),
			Email: admin.Email,
		},
	})
}

// Me echoes the identity carried by the access token so the client can
// restore its session after a reload.
func (h *Handler) Me(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	httpkit.OK(c, transport.AdminResponse{
		ID:    id.AdminID().String(),
		Email: id.Email(),
	})
}
