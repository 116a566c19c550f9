// Package handler provides HTTP handlers for match endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	matchModel "github.com/declanmoran/omahonys-pub/internal/match/model"
	"github.com/declanmoran/omahonys-pub/internal/match/service"
)

// Handler handles HTTP requests for match endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new match handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// listOptions reads the shared query parameters for the public listings.
func listOptions(c *gin.Context) (service.ListOptions, bool) {
	opts := service.ListOptions{
		Upcoming: service.UpcomingToday,
		League:   c.Query("league"),
		Sport:    c.Query("sport"),
	}
	switch u := c.Query("upcoming"); u {
	case "", string(service.UpcomingToday):
	case string(service.UpcomingNotStarted):
		opts.Upcoming = service.UpcomingNotStarted
	case string(service.UpcomingAll):
		opts.Upcoming = service.UpcomingAll
	default:
		errorResponse(c, "VALIDATION_ERROR", "upcoming must be one of: not-started, today, all", http.StatusBadRequest)
		return opts, false
	}
	return opts, true
}

// List handles GET /api/matches.
func (h *Handler) List(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	matches, err := h.service.List(c.Request.Context(), opts)
	if err != nil {
		h.logger.Errorw("error listing matches", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// ListGrouped handles GET /api/matches/grouped.
func (h *Handler) ListGrouped(c *gin.Context) {
	opts, ok := listOptions(c)
	if !ok {
		return
	}

	groups, err := h.service.ListGrouped(c.Request.Context(), opts)
	if err != nil {
		h.logger.Errorw("error listing grouped matches", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// Create handles POST /api/admin/matches.
func (h *Handler) Create(c *gin.Context) {
	var req matchModel.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_ERROR", "invalid request body", http.StatusBadRequest)
		return
	}

	m, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "error creating match")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"match": m})
}

// Update handles PUT /api/admin/matches/:id. Edits replace the whole record.
func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req matchModel.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_ERROR", "invalid request body", http.StatusBadRequest)
		return
	}

	m, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err, "error updating match")
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": m})
}

// Delete handles DELETE /api/admin/matches/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "error deleting match")
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
	var ve *matchModel.ValidationError
	if errors.As(err, &ve) {
		errorResponse(c, "VALIDATION_ERROR", ve.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, matchModel.ErrMatchNotFound) {
		notFoundResponse(c, "match not found")
		return
	}
	h.logger.Errorw(logMsg, "error", err)
	errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}
