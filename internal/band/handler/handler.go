// Package handler provides HTTP handlers for band endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bandModel "github.com/declanmoran/omahonys-pub/internal/band/model"
	"github.com/declanmoran/omahonys-pub/internal/band/service"
)

// Handler handles HTTP requests for band endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new band handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

func upcomingParam(c *gin.Context) (service.Upcoming, bool) {
	switch u := c.Query("upcoming"); u {
	case "", string(service.UpcomingToday):
		return service.UpcomingToday, true
	case string(service.UpcomingNotStarted):
		return service.UpcomingNotStarted, true
	case string(service.UpcomingAll):
		return service.UpcomingAll, true
	default:
		errorResponse(c, "VALIDATION_ERROR", "upcoming must be one of: not-started, today, all", http.StatusBadRequest)
		return "", false
	}
}

// List handles GET /api/bands.
func (h *Handler) List(c *gin.Context) {
	upcoming, ok := upcomingParam(c)
	if !ok {
		return
	}

	bands, err := h.service.List(c.Request.Context(), upcoming)
	if err != nil {
		h.logger.Errorw("error listing bands", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bands": bands})
}

// ListGrouped handles GET /api/bands/grouped.
func (h *Handler) ListGrouped(c *gin.Context) {
	upcoming, ok := upcomingParam(c)
	if !ok {
		return
	}

	groups, err := h.service.ListGrouped(c.Request.Context(), upcoming)
	if err != nil {
		h.logger.Errorw("error listing grouped bands", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// Latest handles GET /api/bands/latest. Used by the Entertainment preview.
func (h *Handler) Latest(c *gin.Context) {
	limit := service.DefaultLatestLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			errorResponse(c, "VALIDATION_ERROR", "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	bands, err := h.service.Latest(c.Request.Context(), limit)
	if err != nil {
		h.logger.Errorw("error listing latest bands", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bands": bands})
}

// Create handles POST /api/admin/bands.
func (h *Handler) Create(c *gin.Context) {
	var req bandModel.BandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_ERROR", "invalid request body", http.StatusBadRequest)
		return
	}

	b, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "error creating band")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"band": b})
}

// Update handles PUT /api/admin/bands/:id. Edits replace the whole record.
func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req bandModel.BandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_ERROR", "invalid request body", http.StatusBadRequest)
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err, "error updating band")
		return
	}

	c.JSON(http.StatusOK, gin.H{"band": b})
}

// Delete handles DELETE /api/admin/bands/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "error deleting band")
		return
	}

	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorResponse(c, "VALIDATION_ERROR", "id must be an integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error, logMsg string) {
	var ve *bandModel.ValidationError
	if errors.As(err, &ve) {
		errorResponse(c, "VALIDATION_ERROR", ve.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, bandModel.ErrBandNotFound) {
		notFoundResponse(c, "band not found")
		return
	}
	h.logger.Errorw(logMsg, "error", err)
	errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}
