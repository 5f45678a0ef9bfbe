package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	kgagent "github.com/LaurenzPoll/knowledge-graph-agent"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/factstore"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/graph"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAgent records calls and returns canned results.
type stubAgent struct {
	answer    *types.Answer
	answerErr error
	buildErr  error
	ingestErr error
	statsErr  error
	resetErr  error

	elements    []types.Element
	lastTriples []types.Triple
	lastIngest  []string
	answerCalls int
	resetCalls  int
}

func (s *stubAgent) Answer(ctx context.Context, question string) (*types.Answer, error) {
	s.answerCalls++
	return s.answer, s.answerErr
}

func (s *stubAgent) BuildGraph(ctx context.Context, triples []types.Triple) ([]types.Element, error) {
	s.lastTriples = triples
	if s.buildErr != nil {
		return nil, s.buildErr
	}
	s.elements = graph.Build(triples)
	return s.elements, nil
}

func (s *stubAgent) Ingest(ctx context.Context, passages []string) ([]types.Element, error) {
	s.lastIngest = passages
	if s.ingestErr != nil {
		return nil, s.ingestErr
	}
	return s.elements, nil
}

func (s *stubAgent) Elements() []types.Element { return s.elements }

func (s *stubAgent) Triples() []types.Triple {
	triples, _ := factstore.ExtractTriples(s.elements)
	return triples
}

func (s *stubAgent) Neighbors(entity string) graph.Neighborhood {
	return graph.Neighbors(s.elements, entity)
}

func (s *stubAgent) Stats(ctx context.Context) (*factstore.Stats, error) {
	if s.statsErr != nil {
		return nil, s.statsErr
	}
	return &factstore.Stats{TripleCount: int64(len(s.Triples())), GroupCount: 1}, nil
}

func (s *stubAgent) Reset(ctx context.Context) error {
	s.resetCalls++
	if s.resetErr != nil {
		return s.resetErr
	}
	s.elements = nil
	return nil
}

func (s *stubAgent) Close() error { return nil }

var _ kgagent.Agent = (*stubAgent)(nil)

func newRouter(agent kgagent.Agent) *gin.Engine {
	r := gin.New()
	health := NewHealthHandler(agent)
	ask := NewAskHandler(agent, nil)
	g := NewGraphHandler(agent, nil)

	r.GET("/health", health.HealthCheck)
	r.GET("/ready", health.ReadinessCheck)
	r.GET("/live", health.LivenessCheck)
	r.GET("/health/detailed", health.DetailedHealthCheck)
	r.POST("/ask", ask.Ask)
	r.GET("/graph", g.GetGraph)
	r.POST("/graph", g.BuildGraph)
	r.DELETE("/graph", g.ClearGraph)
	r.POST("/ingest", g.Ingest)
	r.GET("/facts", g.GetFacts)
	r.GET("/neighbors/:entity", g.GetNeighbors)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(b); err != nil {
				t.Fatalf("failed to encode body: %v", err)
			}
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v (%s)", err, w.Body.String())
	}
	return response
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"empty question", types.ErrEmptyQuestion, http.StatusBadRequest},
		{"wrapped empty subject", errors.Join(errors.New("triple 0"), types.ErrEmptySubject), http.StatusBadRequest},
		{"no passages", kgagent.ErrNoPassages, http.StatusBadRequest},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"backend", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := statusFor(tt.err)
			if status != tt.expected {
				t.Errorf("expected status %d, got %d", tt.expected, status)
			}
		})
	}
}
