package factstore

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/config"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

func TestExtractTriples(t *testing.T) {
	elements := []types.Element{
		types.NewNodeElement(types.NodeElement{ID: "Apollo 11", Label: "Apollo 11", Type: "Unknown"}),
		types.NewEdgeElement(types.EdgeElement{Source: "Apollo 11", Target: "July 16, 1969", Label: "launched on"}),
		types.NewEdgeElement(types.EdgeElement{Source: "Napoleon", Target: "", Label: "born on"}),
		types.NewEdgeElement(types.EdgeElement{Source: "Shakespeare", Target: "Hamlet", Label: "wrote"}),
		types.NewEdgeElement(types.EdgeElement{Source: "Apollo 11", Target: "July 16, 1969", Label: "launched on"}),
		{},
	}

	triples, texts := ExtractTriples(elements)
	require.Len(t, triples, 3)
	require.Len(t, texts, 3)

	assert.Equal(t, types.NewTriple("Apollo 11", "launched on", "July 16, 1969"), triples[0])
	assert.Equal(t, types.NewTriple("Shakespeare", "wrote", "Hamlet"), triples[1])
	assert.Equal(t, triples[0], triples[2])
	assert.Equal(t, "Apollo 11 | launched on | July 16, 1969", texts[0])
	for i := range triples {
		assert.Equal(t, triples[i].Text(), texts[i])
	}
}

func TestExtractTriplesEmpty(t *testing.T) {
	triples, texts := ExtractTriples(nil)
	assert.Empty(t, triples)
	assert.Empty(t, texts)
}

func TestExtractTriplesFromRecords(t *testing.T) {
	var records []map[string]any
	err := json.Unmarshal([]byte(`[
		{"data": {"id": "Hamlet", "label": "Hamlet", "type": "Unknown"}},
		{"data": {"source": "Shakespeare", "target": "Hamlet", "label": "wrote", "relation_type": "wrote"}},
		{"data": {"source": "Shakespeare", "target": 7, "label": "wrote"}},
		{"nodata": true},
		{"data": {"source": "Beatles", "label": "formed in"}}
	]`), &records)
	require.NoError(t, err)

	triples, texts := ExtractTriplesFromRecords(records)
	assert.Equal(t, []types.Triple{types.NewTriple("Shakespeare", "wrote", "Hamlet")}, triples)
	assert.Equal(t, []string{"Shakespeare | wrote | Hamlet"}, texts)
}

// exerciseStore runs the FactsDB contract against a store.
func exerciseStore(t *testing.T, db FactsDB) {
	t.Helper()
	ctx := context.Background()

	triples := []types.Triple{
		types.NewTriple("Apollo 11", "launched on", "July 16, 1969"),
		types.NewTriple("Neil Armstrong", "commanded", "Apollo 11"),
		types.NewTriple("Apollo 11", "launched on", "July 16, 1969"),
	}

	require.NoError(t, db.SaveTriples(ctx, "space", triples))
	require.NoError(t, db.SaveTriples(ctx, "plays", []types.Triple{types.NewTriple("Shakespeare", "wrote", "Hamlet")}))

	got, err := db.GetTriples(ctx, "space")
	require.NoError(t, err)
	assert.Equal(t, triples, got)

	missing, err := db.GetTriples(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, missing)

	groups, err := db.ListGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"plays", "space"}, groups)

	stats, err := db.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.GroupCount)
	assert.Equal(t, int64(4), stats.TripleCount)

	// saving replaces the previous set
	require.NoError(t, db.SaveTriples(ctx, "space", triples[:1]))
	got, err = db.GetTriples(ctx, "space")
	require.NoError(t, err)
	assert.Equal(t, triples[:1], got)

	require.NoError(t, db.DeleteGroup(ctx, "plays"))
	groups, err = db.ListGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"space"}, groups)

	assert.ErrorIs(t, db.SaveTriples(ctx, "", triples), ErrEmptyGroupID)
	err = db.SaveTriples(ctx, "space", []types.Triple{{Subject: "a", Object: "b"}})
	assert.ErrorIs(t, err, types.ErrEmptyPredicate)
}

func TestMemoryStore(t *testing.T) {
	db := NewMemoryStore()
	t.Cleanup(func() { _ = db.Close() })
	exerciseStore(t, db)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryStore()
	triples := []types.Triple{types.NewTriple("a", "r", "b")}
	require.NoError(t, db.SaveTriples(ctx, "g", triples))

	triples[0].Subject = "changed"
	got, err := db.GetTriples(ctx, "g")
	require.NoError(t, err)
	assert.Equal(t, "a", got[0].Subject)
}

func TestBadgerStore(t *testing.T) {
	db, err := NewBadgerStore(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	exerciseStore(t, db)
}

func TestBadgerStorePersists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	db, err := NewBadgerStore(dir, nil)
	require.NoError(t, err)
	require.NoError(t, db.SaveTriples(ctx, "default", []types.Triple{types.NewTriple("Beatles", "formed in", "Liverpool")}))
	require.NoError(t, db.Close())

	reopened, err := NewBadgerStore(dir, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.GetTriples(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, []types.Triple{types.NewTriple("Beatles", "formed in", "Liverpool")}, got)
}

func TestNeo4jStore(t *testing.T) {
	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		t.Skip("NEO4J_URI not set")
	}
	db, err := NewFactsDB(context.Background(), config.StoreConfig{
		Driver:   "neo4j",
		URI:      uri,
		Username: os.Getenv("NEO4J_USER"),
		Password: os.Getenv("NEO4J_PASSWORD"),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx := context.Background()
		_ = db.DeleteGroup(ctx, "space")
		_ = db.DeleteGroup(ctx, "plays")
		_ = db.Close()
	})
	exerciseStore(t, db)
}

func TestPostgresStore(t *testing.T) {
	url := os.Getenv("KG_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("KG_TEST_POSTGRES_URL not set")
	}
	db, err := NewFactsDB(context.Background(), config.StoreConfig{Driver: "postgres", URI: url}, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx := context.Background()
		_ = db.DeleteGroup(ctx, "space")
		_ = db.DeleteGroup(ctx, "plays")
		_ = db.Close()
	})
	exerciseStore(t, db)
}

func TestRebind(t *testing.T) {
	q := "INSERT INTO kg_triples (a, b) VALUES (?, ?)"
	assert.Equal(t, "INSERT INTO kg_triples (a, b) VALUES ($1, $2)", rebind(StoreTypePostgres, q))
	assert.Equal(t, q, rebind(StoreTypeDolt, q))
}

func TestNewFactsDB(t *testing.T) {
	ctx := context.Background()

	db, err := NewFactsDB(ctx, config.StoreConfig{Driver: "memory"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, db)

	db, err = NewFactsDB(ctx, config.StoreConfig{Driver: "badger", Path: t.TempDir()}, nil)
	require.NoError(t, err)
	assert.IsType(t, &BadgerStore{}, db)
	require.NoError(t, db.Close())

	_, err = NewFactsDB(ctx, config.StoreConfig{Driver: "postgres"}, nil)
	assert.Error(t, err)

	_, err = NewFactsDB(ctx, config.StoreConfig{Driver: "cassandra"}, nil)
	assert.ErrorContains(t, err, "unsupported store driver")
}
