// Package search ranks knowledge-graph facts against a natural-language question.
//
// Retrieval runs in four steps over an index-aligned snapshot of triples and
// their embeddings:
//
//   - EntityMatcher finds the single entity a question names, tolerating typos
//   - FilterByEntity narrows triples and embeddings in lock-step to that entity
//   - Scores computes cosine similarity between the question and every fact
//   - Rank selects the top-k indices in descending similarity order
//
// # Usage
//
//	retriever := search.NewRetriever(cachedEmbedder, search.NewEntityMatcher(0.6), logger)
//
//	result, err := retriever.Retrieve(ctx, triples, "When did Apollo 11 launch?", 5)
//	if err != nil {
//	    return err
//	}
//	for i, t := range result.Triples {
//	    fmt.Printf("%.3f %s\n", result.Scores[i], t.Text())
//	}
//
// # Entity Matching
//
// Matching is purely lexical: every whitespace token of the question (with "?"
// removed) is compared against every entity name using a case-insensitive
// Ratcliff/Obershelp similarity ratio. The best pair wins only if its score
// strictly exceeds the matcher threshold. When nothing matches, or the match
// selects no facts, retrieval proceeds over the full fact set.
//
// # Ordering
//
// Rank returns indices in strictly non-increasing similarity order. Equal scores
// keep their original fact order, so results are deterministic for a fixed set
// of embeddings.
package search
