// Package router registers band module routes.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/declanmoran/omahonys-pub/internal/band/handler"
	"github.com/declanmoran/omahonys-pub/internal/band/repository"
	"github.com/declanmoran/omahonys-pub/internal/band/service"
)

// RegisterRoutes registers public and operator band routes. Operator routes
// are guarded by requireOperator.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, loc *time.Location, requireOperator gin.HandlerFunc, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, loc, logger)
	h := handler.New(svc, logger)

	r.GET("/api/bands", h.List)
	r.GET("/api/bands/grouped", h.ListGrouped)
	r.GET("/api/bands/latest", h.Latest)

	admin := r.Group("/api/admin", requireOperator)
	admin.POST("/bands", h.Create)
	admin.PUT("/bands/:id", h.Update)
	admin.DELETE("/bands/:id", h.Delete)
}
