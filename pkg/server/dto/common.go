package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// Validation errors
var (
	ErrEmptyQuestion     = errors.New("question cannot be empty")
	ErrQuestionTooLong   = errors.New("question exceeds maximum length (4096)")
	ErrEmptyPassages     = errors.New("passages cannot be empty")
	ErrTooManyPassages   = errors.New("passages count exceeds maximum (1000)")
	ErrContentTooLong    = errors.New("content exceeds maximum length (1MB)")
	ErrEmptyTriples      = errors.New("triples cannot be empty unless demo is set")
	ErrTooManyTriples    = errors.New("triples count exceeds maximum (10000)")
	ErrTriplesAndDemo    = errors.New("triples and demo are mutually exclusive")
	ErrInvalidCharacters = errors.New("field contains invalid characters")
)

// MaxFieldLengths defines maximum lengths for fields to prevent abuse
const (
	MaxQuestionLength = 4096
	MaxContentLength  = 1024 * 1024 // 1MB
	MaxPassagesCount  = 1000
	MaxTriplesCount   = 10000
)

// Result represents a generic API result
type Result struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	Code      int    `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// FactsResponse lists the facts of the current graph
type FactsResponse struct {
	Facts []types.Triple `json:"facts"`
	Count int            `json:"count"`
}

// GraphResponse carries the elements of the current graph
type GraphResponse struct {
	Elements []types.Element `json:"elements"`
	Nodes    int             `json:"nodes"`
	Edges    int             `json:"edges"`
}

// NewGraphResponse counts nodes and edges of elements.
func NewGraphResponse(elements []types.Element) GraphResponse {
	resp := GraphResponse{Elements: elements}
	if resp.Elements == nil {
		resp.Elements = []types.Element{}
	}
	for _, el := range elements {
		switch el.Kind {
		case types.NodeKind:
			resp.Nodes++
		case types.EdgeKind:
			resp.Edges++
		}
	}
	return resp
}

func containsControl(s string) bool {
	for _, r := range s {
		if r == 0 {
			return true
		}
	}
	return false
}

func validateText(field, s string, max int) error {
	if len(s) > max {
		return fmt.Errorf("%s: %w", field, ErrContentTooLong)
	}
	if containsControl(s) {
		return fmt.Errorf("%s: %w", field, ErrInvalidCharacters)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
