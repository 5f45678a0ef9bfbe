package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/config"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/factstore"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/graph"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// echoAgent answers every question with the request ID it saw.
type echoAgent struct {
	elements []types.Element
}

func (a *echoAgent) Answer(ctx context.Context, question string) (*types.Answer, error) {
	id, _ := ctx.Value(types.ContextKeyRequestID).(string)
	source, _ := ctx.Value(types.ContextKeyRequestSource).(string)
	return &types.Answer{Text: id + "|" + source, Facts: []types.Triple{}}, nil
}

func (a *echoAgent) BuildGraph(ctx context.Context, triples []types.Triple) ([]types.Element, error) {
	a.elements = graph.Build(triples)
	return a.elements, nil
}

func (a *echoAgent) Ingest(ctx context.Context, passages []string) ([]types.Element, error) {
	return a.elements, nil
}

func (a *echoAgent) Elements() []types.Element { return a.elements }

func (a *echoAgent) Triples() []types.Triple {
	triples, _ := factstore.ExtractTriples(a.elements)
	return triples
}

func (a *echoAgent) Neighbors(entity string) graph.Neighborhood {
	return graph.Neighbors(a.elements, entity)
}

func (a *echoAgent) Stats(ctx context.Context) (*factstore.Stats, error) {
	return &factstore.Stats{TripleCount: int64(len(a.Triples()))}, nil
}

func (a *echoAgent) Reset(ctx context.Context) error {
	a.elements = nil
	return nil
}

func (a *echoAgent) Close() error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host: "localhost",
			Port: 8080,
			Mode: "test",
		},
	}
}

func TestNew(t *testing.T) {
	cfg := testConfig()

	// Test with nil agent (server should still be created)
	server := New(cfg, nil, nil)
	if server == nil {
		t.Fatal("expected non-nil server")
	}

	if server.config != cfg {
		t.Error("expected config to be set")
	}
	if server.logger == nil {
		t.Error("expected default logger")
	}
}

func TestSetup(t *testing.T) {
	server := New(testConfig(), nil, nil)
	server.Setup()

	if server.router == nil {
		t.Error("expected router to be initialized")
	}

	if server.server == nil {
		t.Error("expected http.Server to be initialized")
	}

	expectedAddr := "localhost:8080"
	if server.server.Addr != expectedAddr {
		t.Errorf("expected addr %s, got %s", expectedAddr, server.server.Addr)
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := New(testConfig(), nil, nil)
	server.Setup()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["service"] != "kgagent" {
		t.Errorf("expected service kgagent, got %v", response["service"])
	}
}

func TestReadyWithoutAgent(t *testing.T) {
	server := New(testConfig(), nil, nil)
	server.Setup()

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()

	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", w.Code)
	}
}

func TestReadyWithAgent(t *testing.T) {
	server := New(testConfig(), &echoAgent{}, nil)
	server.Setup()

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()

	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequestIDPropagation(t *testing.T) {
	server := New(testConfig(), &echoAgent{}, nil)
	server.Setup()

	tests := []struct {
		name     string
		headerID string
	}{
		{"caller supplied", "req-42"},
		{"generated", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/ask", strings.NewReader(`{"question":"who?"}`))
			req.Header.Set("Content-Type", "application/json")
			if tt.headerID != "" {
				req.Header.Set(RequestIDHeader, tt.headerID)
			}
			w := httptest.NewRecorder()

			server.router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
			}

			echoed := w.Header().Get(RequestIDHeader)
			if echoed == "" {
				t.Fatal("expected request ID response header")
			}
			if tt.headerID != "" && echoed != tt.headerID {
				t.Errorf("expected request ID %s, got %s", tt.headerID, echoed)
			}

			var response map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response["answer"] != echoed+"|server" {
				t.Errorf("expected answer %q, got %v", echoed+"|server", response["answer"])
			}
		})
	}
}

func TestContextMiddleware(t *testing.T) {
	server := New(testConfig(), nil, nil)
	server.Setup()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-User-ID", "test-user")
	req.Header.Set("X-Session-ID", "test-session")
	w := httptest.NewRecorder()

	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

func TestRouteExists(t *testing.T) {
	server := New(testConfig(), nil, nil)
	server.Setup()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodGet, "/healthcheck"},
		{http.MethodGet, "/ready"},
		{http.MethodGet, "/live"},
		{http.MethodGet, "/health/detailed"},
		// API routes (will fail without an agent but shouldn't be 404)
		{http.MethodPost, "/api/v1/ask"},
		{http.MethodGet, "/api/v1/graph"},
		{http.MethodPost, "/api/v1/graph"},
		{http.MethodDelete, "/api/v1/graph"},
		{http.MethodPost, "/api/v1/ingest"},
		{http.MethodGet, "/api/v1/facts"},
		{http.MethodGet, "/api/v1/neighbors/Apollo"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			w := httptest.NewRecorder()

			server.router.ServeHTTP(w, req)

			if w.Code == http.StatusNotFound {
				t.Errorf("route %s %s returned 404, route not registered", route.method, route.path)
			}
		})
	}
}

func TestDemoGraphRoundTrip(t *testing.T) {
	server := New(testConfig(), &echoAgent{}, nil)
	server.Setup()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/graph", strings.NewReader(`{"demo":true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/facts", nil)
	w = httptest.NewRecorder()
	server.router.ServeHTTP(w, req)

	var facts struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &facts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if facts.Count != len(graph.DemoTriples()) {
		t.Errorf("expected %d facts, got %d", len(graph.DemoTriples()), facts.Count)
	}
}

func TestServerConfig(t *testing.T) {
	tests := []struct {
		name         string
		host         string
		port         int
		expectedAddr string
	}{
		{"localhost:8080", "localhost", 8080, "localhost:8080"},
		{"0.0.0.0:3000", "0.0.0.0", 3000, "0.0.0.0:3000"},
		{"127.0.0.1:9090", "127.0.0.1", 9090, "127.0.0.1:9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				Server: config.ServerConfig{
					Host: tt.host,
					Port: tt.port,
					Mode: "test",
				},
			}

			server := New(cfg, nil, nil)
			server.Setup()

			if server.server.Addr != tt.expectedAddr {
				t.Errorf("expected addr %s, got %s", tt.expectedAddr, server.server.Addr)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	server := New(testConfig(), nil, nil)
	server.Setup()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/ask", nil)
	w := httptest.NewRecorder()

	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", w.Code)
	}
}

func TestCORSHeaders(t *testing.T) {
	server := New(testConfig(), nil, nil)
	server.Setup()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.router.ServeHTTP(w, req)

	expectedHeaders := []string{
		"Access-Control-Allow-Origin",
		"Access-Control-Allow-Credentials",
		"Access-Control-Allow-Headers",
		"Access-Control-Allow-Methods",
	}

	for _, header := range expectedHeaders {
		if w.Header().Get(header) == "" {
			t.Errorf("expected %s header to be set", header)
		}
	}
}
