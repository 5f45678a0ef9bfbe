package dto

import "github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"

// AskRequest represents a question about the current graph
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// Validate performs validation on AskRequest
func (r *AskRequest) Validate() error {
	if isBlank(r.Question) {
		return ErrEmptyQuestion
	}
	if len(r.Question) > MaxQuestionLength {
		return ErrQuestionTooLong
	}
	if containsControl(r.Question) {
		return ErrInvalidCharacters
	}
	return nil
}

// AskResponse is the grounded answer to an AskRequest
type AskResponse struct {
	Answer  string         `json:"answer"`
	Context string         `json:"context"`
	Facts   []types.Triple `json:"facts"`
	Entity  string         `json:"entity,omitempty"`
}

// NewAskResponse converts an answer into its response form.
func NewAskResponse(a *types.Answer) AskResponse {
	resp := AskResponse{
		Answer:  a.Text,
		Context: a.Context,
		Facts:   a.Facts,
		Entity:  a.Entity,
	}
	if resp.Facts == nil {
		resp.Facts = []types.Triple{}
	}
	return resp
}
