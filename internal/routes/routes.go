package routes

import (
	"vinixport_backend/internal/handlers"
	"vinixport_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// uploadsDir - каталог локального хранилища, пустой если файлы лежат в облаке.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	uploadsDir string,
) {
	appHandlers.HealthHandler.RegisterRoutes(ginRouter)

	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ReviewRequestHandler.RegisterRoutes(api)
		appHandlers.PortfolioHandler.RegisterRoutes(api)
		appHandlers.ProjectHandler.RegisterRoutes(api)
		appHandlers.CertificateHandler.RegisterRoutes(api)
	}

	if uploadsDir != "" {
		ginRouter.Static("/uploads", uploadsDir)
		logger.Debug("Static uploads route registered", "dir", uploadsDir)
	}
}
