package factstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/config"
)

// NewFactsDB creates and initializes the FactsDB selected by cfg.Driver.
// An empty driver selects Badger.
//   - badger: cfg.Path is the database directory, empty for in-memory
//   - neo4j: cfg.URI, cfg.Username, cfg.Password, cfg.Database
//   - postgres, dolt: cfg.URI is the connection string
//   - memory: no settings
func NewFactsDB(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (FactsDB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		db  FactsDB
		err error
	)
	switch StoreType(cfg.Driver) {
	case StoreTypeBadger, "":
		db, err = NewBadgerStore(cfg.Path, logger)
	case StoreTypeNeo4j:
		db, err = NewNeo4jStore(cfg.URI, cfg.Username, cfg.Password, cfg.Database)
	case StoreTypePostgres:
		if cfg.URI == "" {
			return nil, fmt.Errorf("connection string is required")
		}
		db, err = NewPostgresStore(cfg.URI)
	case StoreTypeDolt:
		if cfg.URI == "" {
			return nil, fmt.Errorf("connection string is required")
		}
		db, err = NewDoltStore(cfg.URI)
	case StoreTypeMemory:
		db = NewMemoryStore()
	default:
		return nil, fmt.Errorf("unsupported store driver: %s (supported: badger, neo4j, postgres, dolt, memory)", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("fact store ready", "driver", cfg.Driver)
	return db, nil
}
