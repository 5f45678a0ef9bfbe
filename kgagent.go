package kgagent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/embedder"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/extract"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/factstore"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/graph"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/nlp"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/search"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// ErrNoPassages is returned by Ingest when every passage is blank.
var ErrNoPassages = errors.New("no passages to ingest")

// Agent is the main interface for querying and maintaining a fact graph.
type Agent interface {
	// Answer answers a question from the current graph.
	Answer(ctx context.Context, question string) (*types.Answer, error)

	// BuildGraph replaces the current graph with one built from triples.
	BuildGraph(ctx context.Context, triples []types.Triple) ([]types.Element, error)

	// Ingest extracts triples from passages and replaces the current graph with them.
	Ingest(ctx context.Context, passages []string) ([]types.Element, error)

	// Elements returns the current graph elements.
	Elements() []types.Element

	// Triples returns the facts of the current graph.
	Triples() []types.Triple

	// Neighbors returns the entities one hop away from entity.
	Neighbors(entity string) graph.Neighborhood

	// Stats reports how many facts are stored.
	Stats(ctx context.Context) (*factstore.Stats, error)

	// Reset removes the current graph and its persisted facts.
	Reset(ctx context.Context) error

	// Close closes all backends.
	Close() error
}

var _ Agent = (*Client)(nil)

// Client is the main implementation of the Agent interface.
type Client struct {
	store     factstore.FactsDB
	generator nlp.Client
	embedder  *embedder.CachedClient
	retriever *search.Retriever
	extractor *extract.Extractor
	config    *Config
	logger    *slog.Logger

	mu       sync.RWMutex
	elements []types.Element
	triples  []types.Triple
}

// Config holds configuration for the Client.
type Config struct {
	// GroupID names the persisted fact set
	GroupID string
	// TopK is the number of facts used to ground an answer
	TopK int
	// MatchThreshold is the minimum similarity for an entity match
	MatchThreshold float64
	// CacheSize bounds the number of cached embedding batches; <= 0 keeps all
	CacheSize int
	// ExtractConcurrency bounds parallel extraction calls during Ingest
	ExtractConcurrency int
}

// DefaultConfig returns the default Client configuration.
func DefaultConfig() *Config {
	return &Config{
		GroupID:            "default",
		TopK:               DefaultTopK,
		MatchThreshold:     search.DefaultMatchThreshold,
		ExtractConcurrency: 1,
	}
}

// NewClient creates a new Client. The store may be nil, in which case the
// graph lives in memory only. Embeddings are cached unless emb already is a
// CachedClient, whose cache is then shared.
func NewClient(store factstore.FactsDB, gen nlp.Client, emb embedder.Client, config *Config, logger *slog.Logger) (*Client, error) {
	if gen == nil {
		return nil, fmt.Errorf("generation client is required")
	}
	if emb == nil {
		return nil, fmt.Errorf("embedding client is required")
	}
	if config == nil {
		config = DefaultConfig()
	}
	if config.GroupID == "" {
		config.GroupID = "default"
	}
	if config.TopK <= 0 {
		config.TopK = DefaultTopK
	}
	if config.MatchThreshold <= 0 {
		config.MatchThreshold = search.DefaultMatchThreshold
	}
	if logger == nil {
		logger = slog.Default()
	}

	cached, ok := emb.(*embedder.CachedClient)
	if !ok {
		cached = embedder.NewCachedClient(emb, embedder.NewCache(config.CacheSize))
	}

	return &Client{
		store:     store,
		generator: gen,
		embedder:  cached,
		retriever: search.NewRetriever(cached, search.NewEntityMatcher(config.MatchThreshold), logger),
		extractor: extract.NewExtractor(gen, extract.WithLogger(logger), extract.WithConcurrency(config.ExtractConcurrency)),
		config:    config,
		logger:    logger,
		elements:  []types.Element{},
		triples:   []types.Triple{},
	}, nil
}

// Answer answers question from the current graph.
func (c *Client) Answer(ctx context.Context, question string) (*types.Answer, error) {
	c.mu.RLock()
	triples := c.triples
	c.mu.RUnlock()

	return answerTriples(ctx, triples, question, c.generator, c.retriever, c.config.TopK, c.logger)
}

// CacheStats reports embedding cache usage.
func (c *Client) CacheStats() embedder.CacheStats {
	return c.embedder.Stats()
}

// GroupID returns the fact set this client reads and writes.
func (c *Client) GroupID() string {
	return c.config.GroupID
}

// Close closes the generation client, the embedding client and the store.
func (c *Client) Close() error {
	var errs []error
	if err := c.generator.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close generation client: %w", err))
	}
	if err := c.embedder.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close embedding client: %w", err))
	}
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close fact store: %w", err))
		}
	}
	return errors.Join(errs...)
}
