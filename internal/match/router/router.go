// Package router registers match module routes.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/declanmoran/omahonys-pub/internal/match/handler"
	"github.com/declanmoran/omahonys-pub/internal/match/repository"
	"github.com/declanmoran/omahonys-pub/internal/match/service"
)

// RegisterRoutes registers public and operator match routes. Operator routes
// are guarded by requireOperator.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, loc *time.Location, requireOperator gin.HandlerFunc, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, loc, logger)
	h := handler.New(svc, logger)

	r.GET("/api/matches", h.List)
	r.GET("/api/matches/grouped", h.ListGrouped)

	admin := r.Group("/api/admin", requireOperator)
	admin.POST("/matches", h.Create)
	admin.PUT("/matches/:id", h.Update)
	admin.DELETE("/matches/:id", h.Delete)
}
