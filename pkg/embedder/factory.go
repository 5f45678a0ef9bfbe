package embedder

import (
	"fmt"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/config"
)

// NewClientFromConfig creates the embedding client named by cfg.Provider.
// An empty provider selects OpenAI.
func NewClientFromConfig(cfg config.EmbeddingConfig) (Client, error) {
	clientConfig := Config{
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		Dimensions: cfg.Dimensions,
		BatchSize:  cfg.BatchSize,
	}

	switch cfg.Provider {
	case "openai", "":
		return NewOpenAIEmbedder(cfg.APIKey, clientConfig), nil
	case "embedeverything":
		client, err := NewEmbedEverythingClient(clientConfig)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s (supported: openai, embedeverything)", cfg.Provider)
	}
}
