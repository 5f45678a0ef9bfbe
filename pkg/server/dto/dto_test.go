package dto

import (
	"errors"
	"strings"
	"testing"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

func TestAskRequestValidate(t *testing.T) {
	tests := []struct {
		name     string
		question string
		wantErr  error
	}{
		{"valid", "Who founded Apple?", nil},
		{"blank", " \t", ErrEmptyQuestion},
		{"too long", strings.Repeat("a", MaxQuestionLength+1), ErrQuestionTooLong},
		{"nul byte", "who\x00", ErrInvalidCharacters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := AskRequest{Question: tt.question}
			if err := req.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestBuildGraphRequestValidate(t *testing.T) {
	valid := []types.Triple{types.NewTriple("a", "b", "c")}

	tests := []struct {
		name    string
		req     BuildGraphRequest
		wantErr error
	}{
		{"triples", BuildGraphRequest{Triples: valid}, nil},
		{"demo", BuildGraphRequest{Demo: true}, nil},
		{"empty", BuildGraphRequest{}, ErrEmptyTriples},
		{"both", BuildGraphRequest{Triples: valid, Demo: true}, ErrTriplesAndDemo},
		{"missing object", BuildGraphRequest{Triples: []types.Triple{{Subject: "a", Predicate: "b"}}}, types.ErrEmptyObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestIngestRequestValidate(t *testing.T) {
	tests := []struct {
		name     string
		passages []string
		wantErr  error
	}{
		{"valid", []string{"text", ""}, nil},
		{"none", nil, ErrEmptyPassages},
		{"all blank", []string{"", "  "}, ErrEmptyPassages},
		{"too long", []string{strings.Repeat("x", MaxContentLength+1)}, ErrContentTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := IngestRequest{Passages: tt.passages}
			if err := req.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewGraphResponse(t *testing.T) {
	elements := []types.Element{
		types.NewNodeElement(types.NodeElement{ID: "a", Label: "a"}),
		types.NewNodeElement(types.NodeElement{ID: "c", Label: "c"}),
		types.NewEdgeElement(types.EdgeElement{ID: "e1", Source: "a", Target: "c", Label: "b"}),
	}

	resp := NewGraphResponse(elements)
	if resp.Nodes != 2 || resp.Edges != 1 {
		t.Errorf("expected 2 nodes and 1 edge, got %d and %d", resp.Nodes, resp.Edges)
	}

	if empty := NewGraphResponse(nil); empty.Elements == nil {
		t.Error("expected non-nil elements slice")
	}
}
