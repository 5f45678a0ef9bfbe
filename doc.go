// Package kgagent answers questions from a knowledge graph of
// subject | predicate | object facts.
//
// A question is answered in five steps: the graph's edges are flattened into
// triples, the triples are embedded (once per distinct fact set, through an
// in-process cache), the question is checked for a fuzzy mention of a known
// entity and the facts narrowed to that entity, the remaining facts are
// ranked by cosine similarity to the embedded question, and the top-k facts
// are rendered as a bullet list into a prompt that tells the generation model
// to use nothing else.
//
// # Basic Usage
//
//	gen, err := nlp.NewOpenAIClient(apiKey, nlp.Config{Model: "gpt-4o-mini"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	emb := embedder.NewOpenAIEmbedder(apiKey, embedder.Config{Model: "text-embedding-3-small"})
//
//	client, err := kgagent.NewClient(factstore.NewMemoryStore(), gen, emb, nil, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	if _, err := client.BuildGraph(ctx, graph.DemoTriples()); err != nil {
//		log.Fatal(err)
//	}
//	answer, err := client.Answer(ctx, "When did Apollo 11 launch?")
//
// answer.Text holds the generated answer and answer.Context the bullet list
// of facts it was grounded on.
//
// # Stateless Queries
//
// Callers holding their own element list can skip the Client:
//
//	answer, err := kgagent.Answer(ctx, elements, question, gen, emb, kgagent.DefaultTopK)
//
// Wrap emb in an embedder.CachedClient to avoid re-embedding the same facts
// on every call.
//
// # Building Graphs
//
// Client.Ingest extracts triples from text passages with the generation
// model and replaces the current graph with them; Client.BuildGraph does the
// same from triples already at hand. Either way the triples are persisted to
// the configured fact store and reloaded by Client.Load on the next start.
package kgagent
