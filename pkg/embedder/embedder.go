package embedder

import (
	"context"
	"errors"
)

// ErrVectorCountMismatch is returned when a backend answers a batch with a
// different number of vectors than texts.
var ErrVectorCountMismatch = errors.New("embedding backend returned a different number of vectors than texts")

// Client defines the interface for embedding backends.
type Client interface {
	// Embed generates one embedding per text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedSingle generates an embedding for a single text.
	EmbedSingle(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the number of dimensions in the embeddings.
	Dimensions() int

	// Close cleans up any resources.
	Close() error
}

// Config holds configuration shared by embedding clients.
type Config struct {
	Model      string `json:"model"`
	BaseURL    string `json:"base_url,omitempty"`
	Dimensions int    `json:"dimensions,omitempty"`
	BatchSize  int    `json:"batch_size,omitempty"`
}

// ErrNativeRequired is returned when a local embedding model is requested
// from a binary built without the native tag.
var ErrNativeRequired = errors.New("local embedding requires a build with -tags native")

const (
	// DefaultModel is used when Config.Model is empty.
	DefaultModel = "text-embedding-3-small"
	// DefaultBatchSize bounds how many texts go into one backend request.
	DefaultBatchSize = 100
	// DefaultLocalModel is the sentence-transformers model used by local backends.
	DefaultLocalModel = "sentence-transformers/all-MiniLM-L6-v2"
)

// modelDimensions lists the output size of well-known models.
var modelDimensions = map[string]int{
	"text-embedding-3-small":                 1536,
	"text-embedding-3-large":                 3072,
	"text-embedding-ada-002":                 1536,
	"all-MiniLM-L6-v2":                       384,
	"sentence-transformers/all-MiniLM-L6-v2": 384,
}

// dimensionsFor returns the configured dimensions, falling back to the known
// size of the model and finally to 1536.
func dimensionsFor(config Config) int {
	if config.Dimensions > 0 {
		return config.Dimensions
	}
	if d, ok := modelDimensions[config.Model]; ok {
		return d
	}
	return 1536
}

// batches splits texts into consecutive chunks of at most size elements.
func batches(texts []string, size int) [][]string {
	if size <= 0 {
		size = DefaultBatchSize
	}
	var out [][]string
	for start := 0; start < len(texts); start += size {
		end := min(start+size, len(texts))
		out = append(out, texts[start:end])
	}
	return out
}
