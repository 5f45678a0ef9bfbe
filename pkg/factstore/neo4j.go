package factstore

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// Neo4jStore implements FactsDB on Neo4j. Entities are (:Entity {name, group_id})
// nodes and each triple is a [:RELATES {predicate, seq, group_id}] relationship.
type Neo4jStore struct {
	client   neo4j.DriverWithContext
	database string
}

// NewNeo4jStore creates a new Neo4j store.
func NewNeo4jStore(uri, username, password, database string) (*Neo4jStore, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if database == "" {
		database = "neo4j"
	}

	return &Neo4jStore{
		client:   driver,
		database: database,
	}, nil
}

func (n *Neo4jStore) session(ctx context.Context) neo4j.SessionWithContext {
	return n.client.NewSession(ctx, neo4j.SessionConfig{DatabaseName: n.database})
}

func (n *Neo4jStore) Initialize(ctx context.Context) error {
	if err := n.client.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("failed to connect to neo4j: %w", err)
	}

	session := n.session(ctx)
	defer session.Close(ctx)

	queries := []string{
		"CREATE INDEX entity_group_name IF NOT EXISTS FOR (e:Entity) ON (e.group_id, e.name)",
		"CREATE INDEX relates_group IF NOT EXISTS FOR ()-[r:RELATES]-() ON (r.group_id)",
	}
	for _, query := range queries {
		_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
			_, err := tx.Run(ctx, query, nil)
			return nil, err
		})
		if err != nil {
			return fmt.Errorf("failed to execute init query: %w", err)
		}
	}
	return nil
}

func (n *Neo4jStore) SaveTriples(ctx context.Context, groupID string, triples []types.Triple) error {
	if err := validateTriples(groupID, triples); err != nil {
		return err
	}

	rows := make([]map[string]any, len(triples))
	for i, t := range triples {
		rows[i] = map[string]any{
			"seq":       i,
			"subject":   t.Subject,
			"predicate": t.Predicate,
			"object":    t.Object,
		}
	}

	session := n.session(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if _, err := tx.Run(ctx, `
			MATCH (e:Entity {group_id: $groupID})
			DETACH DELETE e
		`, map[string]any{"groupID": groupID}); err != nil {
			return nil, err
		}
		_, err := tx.Run(ctx, `
			UNWIND $rows AS row
			MERGE (s:Entity {name: row.subject, group_id: $groupID})
			MERGE (o:Entity {name: row.object, group_id: $groupID})
			CREATE (s)-[:RELATES {predicate: row.predicate, seq: row.seq, group_id: $groupID}]->(o)
		`, map[string]any{"groupID": groupID, "rows": rows})
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("failed to save triples: %w", err)
	}
	return nil
}

func (n *Neo4jStore) GetTriples(ctx context.Context, groupID string) ([]types.Triple, error) {
	if groupID == "" {
		return nil, ErrEmptyGroupID
	}

	session := n.session(ctx)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			MATCH (s:Entity {group_id: $groupID})-[r:RELATES {group_id: $groupID}]->(o:Entity)
			RETURN s.name AS subject, r.predicate AS predicate, o.name AS object
			ORDER BY r.seq
		`, map[string]any{"groupID": groupID})
		if err != nil {
			return nil, err
		}

		triples := []types.Triple{}
		for res.Next(ctx) {
			record := res.Record()
			subject, _ := record.Get("subject")
			predicate, _ := record.Get("predicate")
			object, _ := record.Get("object")
			s, _ := subject.(string)
			p, _ := predicate.(string)
			o, _ := object.(string)
			triples = append(triples, types.NewTriple(s, p, o))
		}
		return triples, res.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load triples: %w", err)
	}
	return result.([]types.Triple), nil
}

func (n *Neo4jStore) DeleteGroup(ctx context.Context, groupID string) error {
	if groupID == "" {
		return ErrEmptyGroupID
	}

	session := n.session(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, "MATCH (e:Entity {group_id: $groupID}) DETACH DELETE e", map[string]any{"groupID": groupID})
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

func (n *Neo4jStore) ListGroups(ctx context.Context) ([]string, error) {
	session := n.session(ctx)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			MATCH ()-[r:RELATES]->()
			RETURN DISTINCT r.group_id AS group_id
			ORDER BY group_id
		`, nil)
		if err != nil {
			return nil, err
		}
		groups := []string{}
		for res.Next(ctx) {
			if id, ok := res.Record().Values[0].(string); ok {
				groups = append(groups, id)
			}
		}
		return groups, res.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return result.([]string), nil
}

func (n *Neo4jStore) GetStats(ctx context.Context) (*Stats, error) {
	session := n.session(ctx)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			MATCH ()-[r:RELATES]->()
			RETURN count(DISTINCT r.group_id) AS groups, count(r) AS triples
		`, nil)
		if err != nil {
			return nil, err
		}
		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		groups, _ := record.Get("groups")
		triples, _ := record.Get("triples")
		g, _ := groups.(int64)
		t, _ := triples.(int64)
		return &Stats{GroupCount: g, TripleCount: t}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return result.(*Stats), nil
}

func (n *Neo4jStore) Close() error {
	return n.client.Close(context.Background())
}
