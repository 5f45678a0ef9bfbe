package kgagent

import (
	"context"
	"fmt"
	"strings"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/factstore"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/graph"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// BuildGraph replaces the current graph with one built from triples and
// persists the triples. Triples with an empty field are rejected.
func (c *Client) BuildGraph(ctx context.Context, triples []types.Triple) ([]types.Element, error) {
	for i, t := range triples {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("triple %d: %w", i, err)
		}
	}

	if c.store != nil {
		if err := c.store.SaveTriples(ctx, c.config.GroupID, triples); err != nil {
			return nil, fmt.Errorf("failed to persist triples: %w", err)
		}
		c.logger.Info("Persisted triples", "group_id", c.config.GroupID, "count", len(triples))
	}

	elements := c.swap(graph.Build(triples))
	return elements, nil
}

// Ingest extracts triples from passages and replaces the current graph with
// them. Blank passages are skipped.
func (c *Client) Ingest(ctx context.Context, passages []string) ([]types.Element, error) {
	nonBlank := make([]string, 0, len(passages))
	for _, p := range passages {
		if strings.TrimSpace(p) != "" {
			nonBlank = append(nonBlank, p)
		}
	}
	if len(nonBlank) == 0 {
		return nil, ErrNoPassages
	}

	triples, err := c.extractor.ExtractAll(ctx, nonBlank)
	if err != nil {
		return nil, err
	}
	return c.BuildGraph(ctx, triples)
}

// Load replaces the current graph with the persisted triples of the
// client's group. Without a store it leaves the graph empty.
func (c *Client) Load(ctx context.Context) ([]types.Element, error) {
	if c.store == nil {
		return c.Elements(), nil
	}

	triples, err := c.store.GetTriples(ctx, c.config.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load triples: %w", err)
	}
	c.logger.Info("Graph loaded from store", "group_id", c.config.GroupID, "triples", len(triples))

	return c.swap(graph.Build(triples)), nil
}

// Reset empties the current graph and deletes the persisted triples.
func (c *Client) Reset(ctx context.Context) error {
	if c.store != nil {
		if err := c.store.DeleteGroup(ctx, c.config.GroupID); err != nil {
			return fmt.Errorf("failed to delete triples: %w", err)
		}
	}
	c.swap(nil)
	return nil
}

// Elements returns a copy of the current graph elements.
func (c *Client) Elements() []types.Element {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]types.Element{}, c.elements...)
}

// Triples returns a copy of the facts of the current graph in edge order.
func (c *Client) Triples() []types.Triple {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]types.Triple{}, c.triples...)
}

// Neighbors returns the entities one hop away from entity.
func (c *Client) Neighbors(entity string) graph.Neighborhood {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return graph.Neighbors(c.elements, entity)
}

// Stats returns statistics of the fact store, or of the in-memory graph when
// the client has no store.
func (c *Client) Stats(ctx context.Context) (*factstore.Stats, error) {
	if c.store != nil {
		return c.store.GetStats(ctx)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	stats := &factstore.Stats{TripleCount: int64(len(c.triples))}
	if len(c.triples) > 0 {
		stats.GroupCount = 1
	}
	return stats, nil
}

// swap installs elements as the current graph. Queries already running keep
// the snapshot they started with.
func (c *Client) swap(elements []types.Element) []types.Element {
	if elements == nil {
		elements = []types.Element{}
	}
	triples, _ := factstore.ExtractTriples(elements)

	c.mu.Lock()
	c.elements = elements
	c.triples = triples
	c.mu.Unlock()

	return append([]types.Element{}, elements...)
}
