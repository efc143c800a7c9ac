package handlers

import (
	"context"
	"net/http"
	"time"

	"vinixport_backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
	metrics *metrics.Metrics
}

func NewHealthHandler(base *BaseHandler, m *metrics.Metrics) *HealthHandler {
	return &HealthHandler{
		BaseHandler: base,
		metrics:     m,
	}
}

// RegisterRoutes вешает служебные маршруты на корень
func (h *HealthHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Banner)
	r.GET("/health", h.Health)
	if h.metrics != nil {
		r.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}
}

func (h *HealthHandler) Banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Backend Vinixport Ready",
		"time":    time.Now().UTC(),
	})
}

func (h *HealthHandler) Health(c *gin.Context) {
	sqlDB, err := h.GetDB(c).DB()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "unavailable"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "unreachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
}
