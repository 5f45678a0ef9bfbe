package factstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// ErrEmptyGroupID is returned when a store operation is called without a group.
var ErrEmptyGroupID = errors.New("group id is required")

// StoreType defines the backend of a FactsDB.
type StoreType string

const (
	// StoreTypeBadger uses an embedded Badger key-value store
	StoreTypeBadger StoreType = "badger"
	// StoreTypeNeo4j uses a Neo4j graph database
	StoreTypeNeo4j StoreType = "neo4j"
	// StoreTypePostgres uses external PostgreSQL
	StoreTypePostgres StoreType = "postgres"
	// StoreTypeDolt uses an embedded Dolt SQL database
	StoreTypeDolt StoreType = "dolt"
	// StoreTypeMemory keeps facts in process memory
	StoreTypeMemory StoreType = "memory"
)

// Stats describes the contents of a fact store.
type Stats struct {
	GroupCount  int64 `json:"group_count"`
	TripleCount int64 `json:"triple_count"`
}

// FactsDB persists ordered triple sets, one per group.
type FactsDB interface {
	// Initialize ensures the schema exists.
	Initialize(ctx context.Context) error

	// SaveTriples replaces the triple set of a group, keeping order and duplicates.
	SaveTriples(ctx context.Context, groupID string, triples []types.Triple) error

	// GetTriples returns the triple set of a group in saved order. Unknown
	// groups yield an empty set.
	GetTriples(ctx context.Context, groupID string) ([]types.Triple, error)

	// DeleteGroup removes the triple set of a group.
	DeleteGroup(ctx context.Context, groupID string) error

	// ListGroups returns the ids of all stored groups, sorted.
	ListGroups(ctx context.Context) ([]string, error)

	// GetStats returns store statistics.
	GetStats(ctx context.Context) (*Stats, error)

	// Close releases the underlying connection.
	Close() error
}

// validateTriples checks the group id and every triple before a save.
func validateTriples(groupID string, triples []types.Triple) error {
	if strings.TrimSpace(groupID) == "" {
		return ErrEmptyGroupID
	}
	for i, t := range triples {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("triple %d: %w", i, err)
		}
	}
	return nil
}
