// Package nlp provides the text generation clients used to answer questions
// and extract triples.
//
// This package defines the Client interface and provides implementations for
// OpenAI and OpenAI-compatible APIs (Ollama, vLLM, llama.cpp server, etc.)
// and for local RustBert text generation models.
//
// # Client Wrappers
//
// The package provides several wrapper clients for enhanced functionality:
//   - RetryClient: Automatic retry with exponential backoff
//   - TokenTrackingClient: Persist token usage to Parquet files
//   - CircuitBreakerClient: Circuit breaker pattern for fault tolerance
//
// # Usage
//
//	// Create a base client
//	client, err := nlp.NewOpenAIClient(apiKey, nlp.Config{Model: "gpt-4o-mini"})
//
//	// Wrap with retry logic
//	retryClient := nlp.NewRetryClient(client, nlp.DefaultRetryConfig())
//
//	// Use the client
//	response, err := retryClient.Generate(ctx, prompt, nlp.QAParams())
//
// # Error Handling
//
// The package defines specific error types for common failure modes:
//   - RateLimitError: API rate limit exceeded
//   - RefusalError: Model refused to generate content
//   - EmptyResponseError: Model returned empty response
//
// These errors support errors.Is() for type checking.
package nlp
