package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/nlp"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/prompts"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/utils"
)

// Extractor pulls triples out of passages with a generation model.
type Extractor struct {
	client      nlp.Client
	logger      *slog.Logger
	concurrency int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithConcurrency bounds the number of passages in flight. Values below one
// are treated as one.
func WithConcurrency(n int) Option {
	return func(e *Extractor) {
		if n < 1 {
			n = 1
		}
		e.concurrency = n
	}
}

// NewExtractor creates an Extractor over client.
func NewExtractor(client nlp.Client, opts ...Option) *Extractor {
	e := &Extractor{
		client:      client,
		logger:      slog.Default(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the triples stated in passage. A blank passage yields no
// triples and no model call.
func (e *Extractor) Extract(ctx context.Context, passage string) ([]types.Triple, error) {
	passage = strings.TrimSpace(passage)
	if passage == "" {
		return nil, nil
	}

	resp, err := e.client.Generate(ctx, prompts.ExtractionPrompt(passage), nlp.ExtractionParams())
	if err != nil {
		return nil, fmt.Errorf("failed to extract triples: %w", err)
	}

	triples := ParseTriples(resp.Content)
	e.logger.Debug("extracted triples", "passage_chars", len(passage), "triples", len(triples))
	return triples, nil
}

// ExtractAll extracts every passage and concatenates the triples in passage
// order. The first failure cancels the remaining calls.
func (e *Extractor) ExtractAll(ctx context.Context, passages []string) ([]types.Triple, error) {
	results := make([][]types.Triple, len(passages))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, passage := range passages {
		i, passage := i, passage
		g.Go(func() (err error) {
			defer utils.RecoverAsError(&err, e.logger)
			triples, err := e.Extract(gCtx, passage)
			if err != nil {
				return fmt.Errorf("passage %d: %w", i, err)
			}
			results[i] = triples
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []types.Triple
	for _, triples := range results {
		all = append(all, triples...)
	}
	e.logger.Info("extraction complete", "passages", len(passages), "triples", len(all))
	return all, nil
}
