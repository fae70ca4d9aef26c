package main

import (
	"context"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/dinova-app/dinova-api/internal/api"
	"github.com/dinova-app/dinova-api/internal/config"
	"github.com/dinova-app/dinova-api/internal/llm"
	"github.com/dinova-app/dinova-api/internal/metrics"
	"github.com/dinova-app/dinova-api/internal/observability"
	"github.com/dinova-app/dinova-api/internal/store"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

// GetVersion returns the current release version
func GetVersion() string {
	return releaseVersion
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "dinova-api@" + releaseVersion,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			Debug:            cfg.Environment != environmentProduction,
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
	}

	ctx := context.Background()

	// Initialize Langfuse generation tracing
	observability.InitializeLangfuse(ctx, cfg)

	// Initialize the Bedrock invoker
	invoker, err := llm.NewBedrockInvoker(ctx, cfg.ModelID, cfg.Region)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to initialize Bedrock client:", err)
	}

	// Initialize CloudWatch metrics (no-op outside production)
	cw, err := metrics.NewClient(ctx, cfg.Environment)
	if err != nil {
		log.Printf("CloudWatch metrics unavailable: %v", err)
	}

	// Chat store is optional; without DATABASE_URL the API runs stateless.
	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = store.Connect(cfg.DatabaseURL)
		if err != nil {
			sentry.CaptureException(err)
			log.Fatal("Failed to connect to chat store:", err)
		}
		if err := store.Migrate(db); err != nil {
			sentry.CaptureException(err)
			log.Fatal("Failed to migrate chat store:", err)
		}
	} else {
		log.Println("Chat store disabled (DATABASE_URL not set)")
	}

	// Set Gin mode
	if cfg.Environment == environmentProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := api.SetupRouter(cfg, invoker, cw, db, GetVersion())

	// Start server
	log.Printf("🚀 DINOVA backend running on port %s (model: %s)", cfg.Port, cfg.ModelID)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}
