package kgagent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/alert"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/config"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/embedder"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/factstore"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/nlp"
)

// NewClientFromConfig wires backends from application configuration and
// loads the persisted graph of the configured group.
//
// The generation client is wrapped, innermost first, with retries, a circuit
// breaker and token tracking as configured. The embedding client gets a
// circuit breaker and the embedding cache.
func NewClientFromConfig(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	alerter := alert.New(cfg.Alert, logger)

	gen, err := NewGeneratorFromConfig(cfg, alerter, logger)
	if err != nil {
		return nil, err
	}

	emb, err := embedder.NewClientFromConfig(cfg.Embedding)
	if err != nil {
		gen.Close()
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}
	if cfg.CircuitBreaker.Enabled {
		emb = embedder.NewCircuitBreakerClient(emb, cfg.CircuitBreaker, alerter, "embedding", logger)
	}

	store, err := factstore.NewFactsDB(ctx, cfg.Store, logger)
	if err != nil {
		gen.Close()
		emb.Close()
		return nil, fmt.Errorf("failed to open fact store: %w", err)
	}

	client, err := NewClient(store, gen, emb, &Config{
		GroupID:            cfg.Store.GroupID,
		TopK:               cfg.Retrieval.TopK,
		MatchThreshold:     cfg.Retrieval.MatchThreshold,
		CacheSize:          cfg.Retrieval.CacheSize,
		ExtractConcurrency: cfg.Ingest.Concurrency,
	}, logger)
	if err != nil {
		gen.Close()
		emb.Close()
		store.Close()
		return nil, err
	}

	if _, err := client.Load(ctx); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// NewGeneratorFromConfig creates the generation client with the resilience
// wrappers enabled in cfg.
func NewGeneratorFromConfig(cfg *config.Config, alerter alert.Alerter, logger *slog.Logger) (nlp.Client, error) {
	gen, err := nlp.NewClientFromConfig(cfg.NLP)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	if cfg.Retry.Enabled {
		gen = nlp.NewRetryClient(gen, nlp.RetryConfigFrom(cfg.Retry)).WithLogger(logger)
	}
	if cfg.CircuitBreaker.Enabled {
		gen = nlp.NewCircuitBreakerClient(gen, cfg.CircuitBreaker, alerter, "generation", logger)
	}
	if cfg.Telemetry.TokenUsagePath != "" {
		tracker, err := nlp.NewTokenTracker(cfg.Telemetry.TokenUsagePath, 0)
		if err != nil {
			gen.Close()
			return nil, err
		}
		gen = nlp.NewTokenTrackingClient(gen, tracker, logger)
	}
	return gen, nil
}
