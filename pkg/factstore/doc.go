// Package factstore turns graph elements into facts and persists fact sets.
//
// ExtractTriples is the boundary between the graph representation (nodes and
// edges in the Cytoscape element shape) and retrieval, which works on flat
// (subject, predicate, object) triples. Only complete edges become triples;
// everything else is skipped silently.
//
// # Usage
//
//	triples, texts := factstore.ExtractTriples(elements)
//	// triples[i] and texts[i] describe the same edge
//
// # Persistence
//
// A FactsDB stores one ordered triple set per group. The following backends
// are available through NewFactsDB:
//   - badger: embedded key-value store (default)
//   - neo4j: (:Entity)-[:RELATES]->(:Entity) graph
//   - postgres: external PostgreSQL
//   - dolt: embedded Dolt SQL database
//   - memory: process-local map, for tests and one-off runs
//
// Example:
//
//	db, err := factstore.NewFactsDB(ctx, cfg.Store, logger)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.SaveTriples(ctx, "default", triples); err != nil {
//	    return err
//	}
package factstore
