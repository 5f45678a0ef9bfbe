package nlp

import (
	"context"
	"log/slog"

	"github.com/sony/gobreaker"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/alert"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/config"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// CircuitBreakerClient wraps a Client with circuit breaking logic
type CircuitBreakerClient struct {
	client Client
	cb     *gobreaker.CircuitBreaker
	name   string
}

// NewCircuitBreakerClient creates a new circuit breaker client
func NewCircuitBreakerClient(client Client, cfg config.CircuitBreakerConfig, alerter alert.Alerter, name string, logger *slog.Logger) *CircuitBreakerClient {
	return &CircuitBreakerClient{
		client: client,
		cb:     gobreaker.NewCircuitBreaker(alert.BreakerSettings(name, cfg, alerter, logger)),
		name:   name,
	}
}

// Generate implements Client
func (c *CircuitBreakerClient) Generate(ctx context.Context, prompt string, params *GenerateParams) (*types.Response, error) {
	resp, err := c.cb.Execute(func() (interface{}, error) {
		return c.client.Generate(ctx, prompt, params)
	})

	if err != nil {
		return nil, err
	}
	return resp.(*types.Response), nil
}

// Close implements Client
func (c *CircuitBreakerClient) Close() error {
	return c.client.Close()
}

// GetCapabilities returns the list of capabilities supported by this client.
func (c *CircuitBreakerClient) GetCapabilities() []TaskCapability {
	return c.client.GetCapabilities()
}

// State returns the current breaker state.
func (c *CircuitBreakerClient) State() gobreaker.State {
	return c.cb.State()
}
