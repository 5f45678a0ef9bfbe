//go:build !native

package nlp

import (
	"context"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// RustBertClient is a stub when the native tag is not set.
// All methods return ErrNativeRequired.
type RustBertClient struct{}

// NewRustBertClient returns ErrNativeRequired.
func NewRustBertClient(config Config) (*RustBertClient, error) {
	return nil, ErrNativeRequired
}

// Generate returns ErrNativeRequired
func (c *RustBertClient) Generate(ctx context.Context, prompt string, params *GenerateParams) (*types.Response, error) {
	return nil, ErrNativeRequired
}

// GetCapabilities returns nil
func (c *RustBertClient) GetCapabilities() []TaskCapability {
	return nil
}

// Close returns nil
func (c *RustBertClient) Close() error {
	return nil
}
