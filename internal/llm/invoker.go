package llm

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
	"github.com/getsentry/sentry-go"
)

const (
	// Bedrock call budget: 2 attempts total, explicit connect/request timeouts
	// in the long-running server variant.
	maxRetryAttempts = 2
	connectTimeout   = 10 * time.Second
	requestTimeout   = 90 * time.Second

	contentTypeJSON = "application/json"
)

// Invoker sends a rendered request envelope to the inference endpoint and
// decodes the response. Handlers depend on this interface so tests can swap
// in a mock.
type Invoker interface {
	Invoke(ctx context.Context, request *InvokeRequest) (*Envelope, error)
	ModelID() string
}

// BedrockInvoker implements Invoker against the Bedrock runtime. The client
// is stateless and safe for concurrent reuse; the underlying transport pools
// outbound connections.
type BedrockInvoker struct {
	client  *bedrockruntime.Client
	modelID string
}

// NewBedrockInvoker creates an invoker for the long-running server variant.
// It forces HTTP/1.1 with explicit timeouts; some networks hit intermittent
// HTTP/2 stream cancel errors when calling AWS endpoints.
func NewBedrockInvoker(ctx context.Context, modelID, region string) (*BedrockInvoker, error) {
	httpClient := &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   connectTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        50,
			MaxIdleConnsPerHost: 50,
			TLSHandshakeTimeout: connectTimeout,
			ForceAttemptHTTP2:   false,
			TLSNextProto:        map[string]func(string, *tls.Conn) http.RoundTripper{},
		},
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithRetryMaxAttempts(maxRetryAttempts),
		awsconfig.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &BedrockInvoker{
		client:  bedrockruntime.NewFromConfig(cfg),
		modelID: modelID,
	}, nil
}

// NewLambdaInvoker creates an invoker with SDK default HTTP handling, which
// is stable and simplest inside Lambda.
func NewLambdaInvoker(ctx context.Context, modelID, region string) (*BedrockInvoker, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithRetryMaxAttempts(maxRetryAttempts),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &BedrockInvoker{
		client:  bedrockruntime.NewFromConfig(cfg),
		modelID: modelID,
	}, nil
}

// ModelID returns the configured model identifier.
func (p *BedrockInvoker) ModelID() string {
	return p.modelID
}

// Invoke serializes the request envelope, calls InvokeModel and decodes the
// response body. Transport failures, timeouts, non-2xx responses and
// malformed JSON all come back as a single wrapped error.
func (p *BedrockInvoker) Invoke(ctx context.Context, request *InvokeRequest) (*Envelope, error) {
	transaction := sentry.StartTransaction(ctx, "bedrock.invoke")
	defer transaction.Finish()
	transaction.SetTag("model", p.modelID)

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshal invoke request: %w", err)
	}

	start := time.Now()
	out, err := p.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(p.modelID),
		ContentType: aws.String(contentTypeJSON),
		Accept:      aws.String(contentTypeJSON),
		Body:        body,
	})
	if err != nil {
		log.Printf("❌ BEDROCK REQUEST FAILED after %v: %v", time.Since(start), err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("bedrock invoke failed: %w", err)
	}

	log.Printf("⏱️  BEDROCK CALL COMPLETED in %v (model: %s)", time.Since(start), p.modelID)

	var envelope Envelope
	if err := json.Unmarshal(out.Body, &envelope); err != nil {
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("decode bedrock response: %w", err)
	}

	transaction.SetTag("success", "true")
	return &envelope, nil
}

// ErrorDetails extracts a diagnostic {name, code, message} map from an invoke
// error. Only attached to responses outside production.
func ErrorDetails(err error) map[string]string {
	details := map[string]string{"message": err.Error()}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		details["code"] = apiErr.ErrorCode()
		details["message"] = apiErr.ErrorMessage()
		details["name"] = apiErr.ErrorFault().String()
	}
	return details
}
