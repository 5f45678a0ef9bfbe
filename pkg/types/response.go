package types

// ContextKey is the type for request-scoped context values.
type ContextKey string

const (
	// ContextKeyUserID carries the caller's user ID.
	ContextKeyUserID ContextKey = "user_id"
	// ContextKeySessionID carries the caller's session ID.
	ContextKeySessionID ContextKey = "session_id"
	// ContextKeyRequestSource names the surface a request came through (cli, server).
	ContextKeyRequestSource ContextKey = "request_source"
	// ContextKeyRequestID carries a per-request ID.
	ContextKeyRequestID ContextKey = "request_id"
)

// TokenUsage holds token accounting reported by a generation backend.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the output of a text-generation backend.
type Response struct {
	Content      string      `json:"content"`
	FinishReason string      `json:"finish_reason,omitempty"`
	Model        string      `json:"model,omitempty"`
	TokensUsed   *TokenUsage `json:"tokens_used,omitempty"`
}

// Answer is the result of a grounded question-answering query.
type Answer struct {
	// Text is the trimmed generated answer.
	Text string `json:"answer"`
	// Context is the bullet list of facts the answer was grounded on.
	Context string `json:"context"`
	// Facts are the selected triples in ranking order.
	Facts []Triple `json:"facts"`
	// Entity is the entity the question was narrowed to, if any.
	Entity string `json:"entity,omitempty"`
}
