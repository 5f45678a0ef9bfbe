package nlp

import (
	"context"
	"strings"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// Client defines the interface for text generation backends.
type Client interface {
	// Generate completes prompt. A nil params uses the backend defaults.
	Generate(ctx context.Context, prompt string, params *GenerateParams) (*types.Response, error)

	// GetCapabilities returns the list of capabilities supported by this client.
	GetCapabilities() []TaskCapability

	// Close cleans up any resources.
	Close() error
}

// Config holds configuration for generation clients.
type Config struct {
	Model   string `json:"model"`
	BaseURL string `json:"base_url,omitempty"` // Custom base URL for OpenAI-compatible services
}

// GenerateParams controls decoding for a single Generate call.
type GenerateParams struct {
	MaxTokens     int      `json:"max_tokens,omitempty"`
	Temperature   float32  `json:"temperature"`
	TopP          float32  `json:"top_p,omitempty"`
	TopK          int      `json:"top_k,omitempty"`
	RepeatPenalty float32  `json:"repeat_penalty,omitempty"`
	Stop          []string `json:"stop,omitempty"`
}

// QAParams returns the greedy decoding used for grounded answers: at most 200
// tokens, stopping at the next user turn or blank line.
func QAParams() *GenerateParams {
	return &GenerateParams{
		MaxTokens:   200,
		Temperature: 0,
		TopP:        1,
		TopK:        1,
		Stop:        []string{"User:", "\n\n"},
	}
}

// ExtractionParams returns the greedy decoding used for triple extraction.
func ExtractionParams() *GenerateParams {
	return &GenerateParams{
		MaxTokens:     1250,
		Temperature:   0,
		TopP:          1,
		TopK:          1,
		RepeatPenalty: 1.1,
		Stop:          []string{"\n\n", "User:"},
	}
}

// TruncateAtStop cuts text at the earliest occurrence of any stop sequence.
// Backends that cannot stop natively apply it to their output.
func TruncateAtStop(text string, stop []string) string {
	cut := len(text)
	for _, s := range stop {
		if s == "" {
			continue
		}
		if i := strings.Index(text, s); i >= 0 && i < cut {
			cut = i
		}
	}
	return text[:cut]
}
