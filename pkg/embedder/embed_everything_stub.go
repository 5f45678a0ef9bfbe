//go:build !native

package embedder

import "context"

// EmbedEverythingClient is a stub when the native tag is not set.
// All methods return ErrNativeRequired.
type EmbedEverythingClient struct{}

// NewEmbedEverythingClient returns ErrNativeRequired.
func NewEmbedEverythingClient(config Config) (*EmbedEverythingClient, error) {
	return nil, ErrNativeRequired
}

// Embed returns ErrNativeRequired
func (e *EmbedEverythingClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, ErrNativeRequired
}

// EmbedSingle returns ErrNativeRequired
func (e *EmbedEverythingClient) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	return nil, ErrNativeRequired
}

// Dimensions returns 0
func (e *EmbedEverythingClient) Dimensions() int {
	return 0
}

// Close returns nil
func (e *EmbedEverythingClient) Close() error {
	return nil
}
