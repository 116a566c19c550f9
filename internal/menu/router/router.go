// Package router registers menu module routes.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/declanmoran/omahonys-pub/internal/menu/handler"
	"github.com/declanmoran/omahonys-pub/internal/menu/repository"
	"github.com/declanmoran/omahonys-pub/internal/menu/service"
	"github.com/declanmoran/omahonys-pub/internal/storage"
)

// RegisterRoutes registers public and operator menu routes. Operator routes
// are guarded by requireOperator.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, blobs storage.BlobStore, requireOperator gin.HandlerFunc, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, blobs, logger)
	h := handler.New(svc, logger)

	r.GET("/api/menus", h.List)
	r.GET("/api/menus/active", h.Active)

	admin := r.Group("/api/admin", requireOperator)
	admin.POST("/menus", h.Upload)
	admin.PUT("/menus/:id", h.Update)
	admin.PATCH("/menus/:id/active", h.SetActive)
	admin.DELETE("/menus/:id", h.Delete)
}
