package nlp

import (
	"errors"
	"fmt"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/config"
)

// ErrNativeRequired is returned when a local model is requested from a binary
// built without the native tag.
var ErrNativeRequired = errors.New("local generation requires a build with -tags native")

// NewClientFromConfig creates the generation client named by cfg.Provider.
// An empty provider selects OpenAI.
func NewClientFromConfig(cfg config.NLPConfig) (Client, error) {
	clientConfig := Config{Model: cfg.Model, BaseURL: cfg.BaseURL}

	var (
		client Client
		err    error
	)
	switch ProviderID(cfg.Provider) {
	case ProviderOpenAI, "":
		client, err = NewOpenAIClient(cfg.APIKey, clientConfig)
	case ProviderRustBert:
		client, err = NewRustBertClient(clientConfig)
	default:
		return nil, fmt.Errorf("%w: %s (supported: openai, rustbert)", ErrUnknownProvider, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}
