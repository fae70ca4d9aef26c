package llm

// Wire types for the Bedrock messages-v1 InvokeModel contract. The shapes are
// dictated by the provider and must not be redesigned.

// SchemaVersionMessages is the request schema version understood by Nova models.
const SchemaVersionMessages = "messages-v1"

// Message roles accepted by the provider.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// TextBlock is a single text content block.
type TextBlock struct {
	Text string `json:"text"`
}

// Message is one turn in the conversation sent to the model.
type Message struct {
	Role    string      `json:"role"`
	Content []TextBlock `json:"content"`
}

// InferenceConfig carries the sampling parameters for a request.
type InferenceConfig struct {
	MaxTokens   int     `json:"maxTokens"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

// InvokeRequest is the full request envelope serialized into the InvokeModel
// body.
type InvokeRequest struct {
	SchemaVersion   string          `json:"schemaVersion"`
	System          []TextBlock     `json:"system"`
	Messages        []Message       `json:"messages"`
	InferenceConfig InferenceConfig `json:"inferenceConfig"`
}

// UserMessage wraps plain text as a user-role message.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Content: []TextBlock{{Text: text}}}
}

// TokenUsage is reported by newer models alongside the output.
type TokenUsage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
	TotalTokens  int `json:"totalTokens"`
}

// Envelope is the decoded response body. Different model families populate
// different fields; OutputText knows the priority order.
type Envelope struct {
	Output     *EnvelopeOutput  `json:"output,omitempty"`
	Results    []EnvelopeResult `json:"results,omitempty"`
	Completion string           `json:"completion,omitempty"`
	Usage      *TokenUsage      `json:"usage,omitempty"`
}

// EnvelopeOutput is the messages-v1 response shape.
type EnvelopeOutput struct {
	Message *Message `json:"message,omitempty"`
}

// EnvelopeResult is the legacy Titan-style response shape.
type EnvelopeResult struct {
	OutputText string `json:"outputText"`
}

// OutputText extracts the generated text from the envelope, checking the
// message/content-list shape first, then results[0].outputText, then the
// completion field. Returns "" when no location yields text; the caller
// substitutes the empty-response placeholder.
func (e *Envelope) OutputText() string {
	if e == nil {
		return ""
	}

	if e.Output != nil && e.Output.Message != nil {
		for _, block := range e.Output.Message.Content {
			if block.Text != "" {
				return block.Text
			}
		}
	}

	if len(e.Results) > 0 && e.Results[0].OutputText != "" {
		return e.Results[0].OutputText
	}

	return e.Completion
}
