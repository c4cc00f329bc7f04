package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/ytgrab-go/internal/domain"
	"go.uber.org/zap"
)

// HealthHandler handles health check and setup requests
type HealthHandler struct {
	service DownloadService
	logger  *zap.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service DownloadService, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		logger:  logger,
	}
}

// Health handles GET /health. Unhealthy maps to 503 so load balancers can
// react; degraded still serves.
func (h *HealthHandler) Health(c *gin.Context) {
	resp := h.service.Health(c.Request.Context())

	status := http.StatusOK
	if resp.Status == domain.HealthUnhealthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, resp)
}

// Setup handles POST /api/v1/setup
func (h *HealthHandler) Setup(c *gin.Context) {
	if err := h.service.Setup(c.Request.Context()); err != nil {
		h.logger.Error("Binary setup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
