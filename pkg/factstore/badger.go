package factstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

const badgerGroupPrefix = "kg:group:"

// badgerRecord is the stored value of one group.
type badgerRecord struct {
	Triples   []types.Triple `json:"triples"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// BadgerStore implements FactsDB on an embedded Badger database.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens (or creates) a Badger database at path. An empty path
// opens an in-memory database.
func NewBadgerStore(path string, logger *slog.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLogger(newBadgerLogger(logger))

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func groupKey(groupID string) []byte {
	return []byte(badgerGroupPrefix + groupID)
}

func (b *BadgerStore) Initialize(ctx context.Context) error {
	return nil
}

func (b *BadgerStore) SaveTriples(ctx context.Context, groupID string, triples []types.Triple) error {
	if err := validateTriples(groupID, triples); err != nil {
		return err
	}
	if triples == nil {
		triples = []types.Triple{}
	}
	value, err := json.Marshal(badgerRecord{Triples: triples, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal triples: %w", err)
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(groupKey(groupID), value)
	})
	if err != nil {
		return fmt.Errorf("failed to save triples: %w", err)
	}
	return nil
}

func (b *BadgerStore) GetTriples(ctx context.Context, groupID string) ([]types.Triple, error) {
	if groupID == "" {
		return nil, ErrEmptyGroupID
	}
	var record badgerRecord
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(groupKey(groupID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []types.Triple{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load triples: %w", err)
	}
	if record.Triples == nil {
		record.Triples = []types.Triple{}
	}
	return record.Triples, nil
}

func (b *BadgerStore) DeleteGroup(ctx context.Context, groupID string) error {
	if groupID == "" {
		return ErrEmptyGroupID
	}
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(groupKey(groupID))
	})
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

func (b *BadgerStore) ListGroups(ctx context.Context) ([]string, error) {
	groups := []string{}
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(badgerGroupPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().KeyCopy(nil))
			groups = append(groups, strings.TrimPrefix(key, badgerGroupPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

func (b *BadgerStore) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(badgerGroupPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record badgerRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			}); err != nil {
				return err
			}
			stats.GroupCount++
			stats.TripleCount += int64(len(record.Triples))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return stats, nil
}

func (b *BadgerStore) Close() error {
	return b.db.Close()
}

// badgerLogger forwards Badger's internal logging to slog. Info and debug
// output is demoted to debug level.
type badgerLogger struct {
	logger *slog.Logger
}

func newBadgerLogger(logger *slog.Logger) badger.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &badgerLogger{logger: logger.With("component", "badger")}
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}
