package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/ytgrab-go/internal/domain"
	"go.uber.org/zap"
)

// DownloadService is the application surface the handlers drive.
type DownloadService interface {
	Setup(ctx context.Context) error
	GetVideoInfo(ctx context.Context, url string) (*domain.VideoInfo, error)
	Search(ctx context.Context, req *domain.SearchRequest) *domain.SearchResponse
	Download(ctx context.Context, req *domain.DownloadRequest, callback domain.ProgressCallback) *domain.DownloadResponse
	DownloadPlaylist(ctx context.Context, req *domain.PlaylistRequest, callback domain.ProgressCallback) *domain.PlaylistResponse
	Health(ctx context.Context) *domain.HealthResponse
	History(limit int) ([]*domain.DownloadRecord, error)
	HistoryStats() (*domain.HistoryStats, error)
}

// DownloadHandler handles download-related HTTP requests
type DownloadHandler struct {
	service DownloadService
	logger  *zap.Logger
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(service DownloadService, logger *zap.Logger) *DownloadHandler {
	return &DownloadHandler{
		service: service,
		logger:  logger,
	}
}

// Download handles POST /api/v1/downloads. Failures come back inside the
// response envelope, not as HTTP errors.
func (h *DownloadHandler) Download(c *gin.Context) {
	var req domain.DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := h.service.Download(c.Request.Context(), &req, nil)
	if !resp.Success {
		h.logger.Warn("Download failed",
			zap.String("url", req.URL),
			zap.String("error", resp.Error))
	}

	c.JSON(http.StatusOK, resp)
}

// DownloadPlaylist handles POST /api/v1/playlists
func (h *DownloadHandler) DownloadPlaylist(c *gin.Context) {
	var req domain.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := h.service.DownloadPlaylist(c.Request.Context(), &req, nil)
	if !resp.Success {
		h.logger.Warn("Playlist download failed",
			zap.String("url", req.URL),
			zap.String("error", resp.Error))
	}

	c.JSON(http.StatusOK, resp)
}

// Search handles GET /api/v1/search?q=query&max=10
func (h *DownloadHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}

	maxResults, _ := strconv.Atoi(c.DefaultQuery("max", "10"))

	resp := h.service.Search(c.Request.Context(), &domain.SearchRequest{
		Query:      query,
		MaxResults: maxResults,
	})

	c.JSON(http.StatusOK, resp)
}

// GetInfo handles GET /api/v1/info?url=...
func (h *DownloadHandler) GetInfo(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter url"})
		return
	}

	info, err := h.service.GetVideoInfo(c.Request.Context(), url)
	if err != nil {
		h.logger.Error("Failed to get video info", zap.String("url", url), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, info)
}

// History handles GET /api/v1/history?limit=50
func (h *DownloadHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	records, err := h.service.History(limit)
	if err != nil {
		h.logger.Error("Failed to list history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// HistoryStats handles GET /api/v1/history/stats
func (h *DownloadHandler) HistoryStats(c *gin.Context) {
	stats, err := h.service.HistoryStats()
	if err != nil {
		h.logger.Error("Failed to get history stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
