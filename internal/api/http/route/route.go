package route

import (
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-back/internal/api/http/handler"
	"portfolio-back/internal/api/http/middleware"
	"portfolio-back/internal/config"
)

func SetupRouter(
	log *zap.Logger,
	cfg *config.Config,
	healthHdl HealthHandler,
	contactHdl ContactHandler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = io.Discard

	router := gin.Default()

	// middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.RequestTimeout(cfg.HTTPServer.Timeout.Request))
	router.Use(middleware.CORS(cfg.CORS))

	router.HandleMethodNotAllowed = true
	router.NoMethod(handler.NoMethod)
	router.NoRoute(handler.NoRoute)

	router.GET("/", handler.Banner)

	basePath := router.Group(cfg.BasePath)

	docsPath := basePath.Group("/docs")
	RegisterDocs(docsPath)

	healthPath := basePath.Group("/health")
	RegisterHealth(healthPath, healthHdl)

	contactPath := basePath.Group("/contact")
	RegisterContactRoutes(contactPath, contactHdl)

	return router
}
