package dto

import (
	"fmt"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// BuildGraphRequest replaces the graph with the given triples, or with the
// built-in demo set when Demo is true.
type BuildGraphRequest struct {
	Triples []types.Triple `json:"triples,omitempty"`
	Demo    bool           `json:"demo,omitempty"`
}

// Validate performs validation on BuildGraphRequest
func (r *BuildGraphRequest) Validate() error {
	if r.Demo {
		if len(r.Triples) > 0 {
			return ErrTriplesAndDemo
		}
		return nil
	}
	if len(r.Triples) == 0 {
		return ErrEmptyTriples
	}
	if len(r.Triples) > MaxTriplesCount {
		return ErrTooManyTriples
	}
	for i, t := range r.Triples {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("triple %d: %w", i, err)
		}
	}
	return nil
}

// IngestRequest represents passages to extract facts from
type IngestRequest struct {
	Passages []string `json:"passages" binding:"required"`
}

// Validate performs validation on IngestRequest
func (r *IngestRequest) Validate() error {
	if len(r.Passages) == 0 {
		return ErrEmptyPassages
	}
	if len(r.Passages) > MaxPassagesCount {
		return ErrTooManyPassages
	}
	blank := 0
	for i, p := range r.Passages {
		if err := validateText(fmt.Sprintf("passage %d", i), p, MaxContentLength); err != nil {
			return err
		}
		if isBlank(p) {
			blank++
		}
	}
	if blank == len(r.Passages) {
		return ErrEmptyPassages
	}
	return nil
}
