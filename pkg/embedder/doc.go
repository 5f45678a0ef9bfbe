// Package embedder provides text embedding clients and the embedding cache.
//
// This package defines the Client interface and provides implementations for
// remote and local embedding providers.
//
// # Supported Providers
//
// The following embedding providers are supported:
//   - OpenAI: text-embedding-3-small, text-embedding-3-large, text-embedding-ada-002,
//     and any OpenAI-compatible service via Config.BaseURL
//   - EmbedEverything: local sentence-transformers models such as all-MiniLM-L6-v2
//     (requires the "native" build tag)
//
// # Usage
//
//	// Create an OpenAI embedder
//	client := embedder.NewOpenAIEmbedder(apiKey, embedder.Config{
//	    Model:     "text-embedding-3-small",
//	    BatchSize: 100,
//	})
//
//	// Memoize fact batches for the lifetime of the process
//	cached := embedder.NewCachedClient(client, embedder.NewCache(0))
//
//	vectors, err := cached.Embed(ctx, factTexts)    // backend call
//	vectors, err = cached.Embed(ctx, factTexts)     // served from cache
//	question, err := cached.EmbedSingle(ctx, "Who wrote Hamlet?")
//
// # Caching
//
// Cache is keyed by the exact ordered content of a batch (see KeyFor). Two
// batches with the same texts in the same order share an entry; any change in
// content or order is a miss. Concurrent callers asking for the same key wait
// for a single computation. Failed computations are never stored.
package embedder
