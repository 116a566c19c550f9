// Package handler provides HTTP handlers for operator authentication.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authModel "github.com/declanmoran/omahonys-pub/internal/auth/model"
	"github.com/declanmoran/omahonys-pub/internal/auth/service"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req authModel.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_ERROR", "email and password are required", http.StatusBadRequest)
		return
	}

	session, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, authModel.ErrInvalidCredentials) {
			errorResponse(c, "AUTH_ERROR", "invalid email or password", http.StatusUnauthorized)
			return
		}
		h.logger.Errorw("error logging in operator", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, session)
}

// ErrorResponse is the error envelope returned by auth endpoints.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}
