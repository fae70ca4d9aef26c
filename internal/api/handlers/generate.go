package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/dinova-app/dinova-api/internal/config"
	"github.com/dinova-app/dinova-api/internal/llm"
	"github.com/dinova-app/dinova-api/internal/logger"
	"github.com/dinova-app/dinova-api/internal/metrics"
	"github.com/dinova-app/dinova-api/internal/observability"
	"github.com/dinova-app/dinova-api/internal/prompt"
)

const (
	maxInputChars = 10000

	emailTemperature   = 0.4
	defaultTemperature = 0.2
	defaultTopP        = 0.9

	emptyResponsePlaceholder = "The model returned an empty response."
	genericGenerationError   = "Something went wrong while generating the response. Please try again."
)

// GenerateHandler runs the generation pipeline: validate, clamp, build the
// prompt, invoke the model, clean the output.
type GenerateHandler struct {
	cfg     *config.Config
	invoker llm.Invoker
	builder *prompt.Builder
	cw      *metrics.Client
	sentry  *metrics.SentryMetrics
}

func NewGenerateHandler(cfg *config.Config, invoker llm.Invoker, cw *metrics.Client) *GenerateHandler {
	return &GenerateHandler{
		cfg:     cfg,
		invoker: invoker,
		builder: prompt.NewBuilder(),
		cw:      cw,
		sentry:  metrics.NewSentryMetrics(),
	}
}

type GenerateRequest struct {
	Mode   string `json:"mode"`
	Input  string `json:"input"`
	Tone   string `json:"tone"`
	Length string `json:"length"`
	// History is decoded leniently: anything that is not a well-formed list
	// of turns is ignored rather than rejected.
	History json.RawMessage `json:"history"`
}

type GenerateSettings struct {
	Mode   prompt.Mode   `json:"mode"`
	Tone   prompt.Tone   `json:"tone"`
	Length prompt.Length `json:"length"`
}

type GenerateResponse struct {
	Output   string           `json:"output"`
	Latency  int64            `json:"latency"`
	Model    string           `json:"model"`
	Settings GenerateSettings `json:"settings"`
}

func (h *GenerateHandler) Generate(c *gin.Context) {
	start := time.Now()

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body."})
		return
	}

	if strings.TrimSpace(req.Input) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is required."})
		return
	}
	if utf8.RuneCountInString(req.Input) > maxInputChars {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is too long (max 10000 chars)."})
		return
	}

	// Unknown enum values fall back to defaults, never reject.
	mode := prompt.ClampMode(req.Mode)
	tone := prompt.ClampTone(req.Tone)
	length := prompt.ClampLength(req.Length)

	rendered := h.builder.Build(mode, tone, length, req.Input)

	// Templated modes are single-shot; only general chat carries history.
	var msgs []llm.Message
	if mode == prompt.ModeGeneral {
		msgs = append(llm.NormalizeHistory(req.History), llm.UserMessage(rendered))
	} else {
		msgs = []llm.Message{llm.UserMessage(rendered)}
	}

	temperature := defaultTemperature
	if mode == prompt.ModeEmail {
		temperature = emailTemperature
	}

	invokeReq := &llm.InvokeRequest{
		SchemaVersion: llm.SchemaVersionMessages,
		System:        []llm.TextBlock{{Text: prompt.SystemText(mode)}},
		Messages:      msgs,
		InferenceConfig: llm.InferenceConfig{
			MaxTokens:   length.MaxTokens(),
			Temperature: temperature,
			TopP:        defaultTopP,
		},
	}

	trace := observability.GetClient().StartTrace(c.Request.Context(), "generate", map[string]interface{}{
		"request_id": c.GetString("request_id"),
		"mode":       string(mode),
	})
	generation := trace.Generation("bedrock.invoke", map[string]interface{}{
		"max_tokens": length.MaxTokens(),
	})

	envelope, err := h.invoker.Invoke(c.Request.Context(), invokeReq)
	duration := time.Since(start)

	if err != nil {
		logger.Error("Generation failed", err, logger.Fields{
			"request_id": c.GetString("request_id"),
			"model":      h.invoker.ModelID(),
			"mode":       string(mode),
		})
		h.recordGeneration(c, mode, duration, false)
		generation.SetLevel("ERROR")
		generation.Finish()
		trace.Finish()

		resp := gin.H{"error": genericGenerationError}
		if !h.cfg.IsProduction() {
			resp["details"] = llm.ErrorDetails(err)
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	output := envelope.OutputText()
	if output == "" {
		// A successful call with no extractable text is not an error.
		output = emptyResponsePlaceholder
	} else {
		output = prompt.CleanOutput(mode, output)
	}

	if envelope.Usage != nil {
		if h.cw != nil {
			h.cw.RecordTokenUsage(h.invoker.ModelID(),
				envelope.Usage.TotalTokens, envelope.Usage.InputTokens, envelope.Usage.OutputTokens)
		}
		generation.LogGeneration(h.invoker.ModelID(), rendered, output,
			envelope.Usage.InputTokens, envelope.Usage.OutputTokens, envelope.Usage.TotalTokens)
	} else {
		generation.LogGeneration(h.invoker.ModelID(), rendered, output, 0, 0, 0)
	}
	generation.Finish()
	trace.Finish()

	h.recordGeneration(c, mode, duration, true)
	logger.LogGenerationRequest(c.Request.Context(), h.invoker.ModelID(), string(mode), duration, logger.Fields{
		"request_id": c.GetString("request_id"),
	})

	c.JSON(http.StatusOK, GenerateResponse{
		Output:  output,
		Latency: duration.Milliseconds(),
		Model:   h.invoker.ModelID(),
		Settings: GenerateSettings{
			Mode:   mode,
			Tone:   tone,
			Length: length,
		},
	})
}

func (h *GenerateHandler) recordGeneration(c *gin.Context, mode prompt.Mode, duration time.Duration, success bool) {
	h.sentry.RecordGeneration(c.Request.Context(), string(mode), h.invoker.ModelID(), duration, success)
	if h.cw != nil {
		h.cw.RecordGeneration(string(mode), h.invoker.ModelID(), duration, success)
	}
}
