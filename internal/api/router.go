package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinova-app/dinova-api/internal/api/handlers"
	apimiddleware "github.com/dinova-app/dinova-api/internal/api/middleware"
	"github.com/dinova-app/dinova-api/internal/config"
	"github.com/dinova-app/dinova-api/internal/llm"
	"github.com/dinova-app/dinova-api/internal/metrics"
)

// SetupRouter wires the shared pipeline behind the HTTP surface. Both
// deployment variants (long-running server and Lambda) use the same router;
// db may be nil, in which case the chat store endpoints are not mounted.
func SetupRouter(cfg *config.Config, invoker llm.Invoker, cw *metrics.Client, db *gorm.DB, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cw))

	// CORS allow-list
	router.Use(apimiddleware.CORS(cfg.AllowedOrigin, cfg.IsProduction()))

	// Health check
	router.GET("/api/health", handlers.HealthCheck)

	// Runtime metrics snapshot
	metricsHandler := handlers.NewMetricsHandler(version, cfg.ModelID)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Generation pipeline
	generateHandler := handlers.NewGenerateHandler(cfg, invoker, cw)
	router.POST("/api/generate", generateHandler.Generate)

	// Chat store (optional - requires DATABASE_URL)
	if db != nil {
		chatHandler := handlers.NewChatHandler(db)
		chats := router.Group("/api/chats")
		{
			chats.GET("", chatHandler.ListChats)
			chats.POST("", chatHandler.CreateChat)
			chats.GET("/:id", chatHandler.GetChat)
			chats.PUT("/:id", chatHandler.UpdateChat)
			chats.DELETE("/:id", chatHandler.DeleteChat)
			chats.POST("/:id/messages", chatHandler.AddMessage)
		}
	}

	return router
}
