package controllers

import (
	"context"
	"time"

	"factory-monitor-service/internal/app/middleware"
	"factory-monitor-service/internal/domain/services/container"
	"factory-monitor-service/internal/error/code"
	"factory-monitor-service/internal/error/response"
	"factory-monitor-service/internal/infrastructure/database"

	"github.com/gin-gonic/gin"
)

// HealthController 健康檢查
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// HandleHealthFunc 回傳健康檢查 handler
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &HealthController{Ctx: ctx, Container: container}

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			invalidMethod(ctx)
		}
	}
}

// Ping 存活檢查
// @Summary      Ping
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/ping [get]
func (h *HealthController) Ping() {
	response.Success(h.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status 資料庫、連線池與快取狀態
// @Summary      Health status
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/health/status [get]
func (h *HealthController) Status() {
	ctx, cancel := context.WithTimeout(h.Ctx.Request.Context(), 3*time.Second)
	defer cancel()

	db := h.Container.GetDB()
	if err := database.Ping(ctx, db); err != nil {
		response.Error(h.Ctx, code.Wrap(code.ErrDatabase, err))
		return
	}

	status := gin.H{
		"status":   "healthy",
		"database": "up",
		"cache":    middleware.CacheStats(),
		"time":     time.Now().Format(time.RFC3339),
	}
	if sqlDB, err := db.DB(); err == nil {
		stats := sqlDB.Stats()
		status["pool"] = gin.H{
			"open":   stats.OpenConnections,
			"inUse":  stats.InUse,
			"idle":   stats.Idle,
			"waited": stats.WaitCount,
		}
	}
	response.Success(h.Ctx, status)
}
