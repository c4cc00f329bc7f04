package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/ytgrab-go/api/handlers"
	"github.com/yourusername/ytgrab-go/api/middleware"
)

// SetupRouter sets up the HTTP router
func SetupRouter(service handlers.DownloadService, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	// Health endpoint
	healthHandler := handlers.NewHealthHandler(service, log)
	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/setup", healthHandler.Setup)

		downloadHandler := handlers.NewDownloadHandler(service, log)
		v1.POST("/downloads", downloadHandler.Download)
		v1.POST("/playlists", downloadHandler.DownloadPlaylist)
		v1.GET("/search", downloadHandler.Search)
		v1.GET("/info", downloadHandler.GetInfo)
		v1.GET("/history", downloadHandler.History)
		v1.GET("/history/stats", downloadHandler.HistoryStats)
	}

	return router
}
