package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// DatabaseChecker reports on the database behind the API
type DatabaseChecker interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	checker DatabaseChecker
	logger  coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(checker DatabaseChecker, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		logger:  logger,
	}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.checker.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Database health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "degraded",
			Database: "down",
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Database: "up",
		Pool:     h.checker.PoolMetrics(),
	})
}
