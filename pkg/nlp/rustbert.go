//go:build native

package nlp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/soundprediction/go-rust-bert/pkg/rustbert"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// RustBertClient runs a local text generation model in process. The model is
// loaded on first use.
type RustBertClient struct {
	mu    sync.Mutex
	model *rustbert.TextGenerationModel
	name  string
}

// NewRustBertClient creates a RustBert generation client.
func NewRustBertClient(config Config) (*RustBertClient, error) {
	name := config.Model
	if name == "" {
		name = "gpt2"
	}
	return &RustBertClient{name: name}, nil
}

func (c *RustBertClient) load() error {
	if c.model != nil {
		return nil
	}
	m, err := rustbert.NewTextGenerationModel()
	if err != nil {
		return fmt.Errorf("failed to create text generation model: %w", err)
	}
	c.model = m
	return nil
}

// Generate completes prompt. Stop sequences are applied to the output since
// the model has no native support for them.
func (c *RustBertClient) Generate(ctx context.Context, prompt string, params *GenerateParams) (*types.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(); err != nil {
		return nil, err
	}

	output, err := c.model.Generate(prompt, "")
	if err != nil {
		return nil, fmt.Errorf("text generation failed: %w", err)
	}

	// generation models echo the prompt
	output = strings.TrimPrefix(output, prompt)
	if params != nil {
		output = TruncateAtStop(output, params.Stop)
	}

	return &types.Response{
		Content:      output,
		FinishReason: "stop",
		Model:        c.name,
	}, nil
}

// GetCapabilities returns the list of capabilities supported by this client.
func (c *RustBertClient) GetCapabilities() []TaskCapability {
	return []TaskCapability{TaskTextGeneration, TaskQuestionAnswering}
}

// Close releases the model.
func (c *RustBertClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.model != nil {
		c.model.Close()
		c.model = nil
	}
	return nil
}
