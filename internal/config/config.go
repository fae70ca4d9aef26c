package config

import "os"

// Config holds the application configuration
// Note: This is a stateless configuration - the API holds no secrets of its own.
// Bedrock credentials come from the standard AWS credential chain.
type Config struct {
	// Environment
	Environment string
	Port        string

	// Inference
	ModelID string // Bedrock model identifier
	Region  string // AWS region for the Bedrock runtime client

	// CORS
	AllowedOrigin string // Exact origin allowed in production (empty = localhost-only in dev)

	// Persistence (optional - chat endpoints are disabled when empty)
	DatabaseURL string

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "5000"),
		ModelID:           getEnv("BEDROCK_MODEL_ID", "amazon.nova-lite-v1:0"),
		Region:            getEnv("AWS_REGION", "us-east-1"),
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", ""),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// IsProduction returns true when running in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
