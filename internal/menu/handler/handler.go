// Package handler provides HTTP handlers for menu endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	menuModel "github.com/declanmoran/omahonys-pub/internal/menu/model"
	"github.com/declanmoran/omahonys-pub/internal/menu/service"
)

// maxUploadBytes caps menu PDF uploads.
const maxUploadBytes = 20 << 20

// Handler handles HTTP requests for menu endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new menu handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /api/menus.
func (h *Handler) List(c *gin.Context) {
	docs, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing menus", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"menus": docs})
}

// Active handles GET /api/menus/active. A 404 here means the site shows its
// static fallback menu instead.
func (h *Handler) Active(c *gin.Context) {
	menuType := menuModel.MenuType(c.Query("type"))

	doc, err := h.service.ActiveDocument(c.Request.Context(), menuType)
	if err != nil {
		if errors.Is(err, menuModel.ErrNoActiveMenu) {
			notFoundResponse(c, "no active menu for type")
			return
		}
		h.writeError(c, err, "error picking active menu")
		return
	}

	c.JSON(http.StatusOK, gin.H{"menu": doc})
}

// Upload handles POST /api/admin/menus (multipart: file, name, type).
func (h *Handler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		errorResponse(c, "VALIDATION_ERROR", "file is required", http.StatusBadRequest)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("error opening uploaded file", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	in := &service.UploadInput{
		Name:     c.PostForm("name"),
		Type:     menuModel.MenuType(c.PostForm("type")),
		FileName: fileHeader.Filename,
		File:     file,
	}

	doc, err := h.service.Upload(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err, "error uploading menu")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"menu": doc})
}

// Update handles PUT /api/admin/menus/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req menuModel.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_ERROR", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.writeError(c, err, "error updating menu")
		return
	}

	c.Status(http.StatusNoContent)
}

// SetActive handles PATCH /api/admin/menus/:id/active.
func (h *Handler) SetActive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req menuModel.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		errorResponse(c, "VALIDATION_ERROR", "is_active is required", http.StatusBadRequest)
		return
	}

	if err := h.service.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		h.writeError(c, err, "error toggling menu")
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/admin/menus/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "error deleting menu")
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
	var ve *menuModel.ValidationError
	if errors.As(err, &ve) {
		errorResponse(c, "VALIDATION_ERROR", ve.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, menuModel.ErrMenuNotFound) {
		notFoundResponse(c, "menu not found")
		return
	}
	h.logger.Errorw(logMsg, "error", err)
	errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}
