// Package router registers auth module routes.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/declanmoran/omahonys-pub/internal/auth/handler"
	"github.com/declanmoran/omahonys-pub/internal/auth/repository"
	"github.com/declanmoran/omahonys-pub/internal/auth/service"
	"github.com/declanmoran/omahonys-pub/internal/config"
)

// RegisterRoutes registers auth routes and returns the service so the caller
// can run operator seeding at startup.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.AuthConfig, logger *zap.SugaredLogger) service.Service {
	repo := repository.New(db)
	svc := service.New(repo, cfg, logger)
	h := handler.New(svc, logger)

	r.POST("/api/auth/login", h.Login)

	return svc
}
