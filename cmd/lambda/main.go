package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"github.com/dinova-app/dinova-api/internal/api"
	"github.com/dinova-app/dinova-api/internal/config"
	"github.com/dinova-app/dinova-api/internal/llm"
	"github.com/dinova-app/dinova-api/internal/metrics"
	"github.com/dinova-app/dinova-api/internal/observability"
)

// Single-invocation variant: the same router as the long-running server,
// wrapped in the API Gateway proxy adapter. The chat store is not mounted
// here; Lambda deployments run stateless.

var ginLambda *ginadapter.GinLambdaV2

func init() {
	ctx := context.Background()
	cfg := config.Load()

	observability.InitializeLangfuse(ctx, cfg)

	// SDK default HTTP handling is stable and simplest in Lambda.
	invoker, err := llm.NewLambdaInvoker(ctx, cfg.ModelID, cfg.Region)
	if err != nil {
		log.Fatal("Failed to initialize Bedrock client:", err)
	}

	cw, err := metrics.NewClient(ctx, cfg.Environment)
	if err != nil {
		log.Printf("CloudWatch metrics unavailable: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := api.SetupRouter(cfg, invoker, cw, nil, "lambda")
	ginLambda = ginadapter.NewV2(router)
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
