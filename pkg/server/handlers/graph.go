package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	kgagent "github.com/LaurenzPoll/knowledge-graph-agent"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/graph"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/server/dto"
	"github.com/gin-gonic/gin"
)

// GraphHandler reads and replaces the current graph
type GraphHandler struct {
	agent  kgagent.Agent
	logger *slog.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(agent kgagent.Agent, logger *slog.Logger) *GraphHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GraphHandler{
		agent:  agent,
		logger: logger,
	}
}

// GetGraph handles GET /api/v1/graph
func (h *GraphHandler) GetGraph(c *gin.Context) {
	if !requireAgent(c, h.agent) {
		return
	}
	c.JSON(http.StatusOK, dto.NewGraphResponse(h.agent.Elements()))
}

// BuildGraph handles POST /api/v1/graph
func (h *GraphHandler) BuildGraph(c *gin.Context) {
	var req dto.BuildGraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if !requireAgent(c, h.agent) {
		return
	}

	triples := req.Triples
	if req.Demo {
		triples = graph.DemoTriples()
	}

	elements, err := h.agent.BuildGraph(c.Request.Context(), triples)
	if err != nil {
		h.fail(c, "Failed to build graph", err)
		return
	}

	h.logger.Info("Built graph", "triples", len(triples), "elements", len(elements))
	c.JSON(http.StatusCreated, dto.NewGraphResponse(elements))
}

// Ingest handles POST /api/v1/ingest
func (h *GraphHandler) Ingest(c *gin.Context) {
	var req dto.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if !requireAgent(c, h.agent) {
		return
	}

	elements, err := h.agent.Ingest(c.Request.Context(), req.Passages)
	if err != nil {
		h.fail(c, "Failed to ingest passages", err)
		return
	}

	h.logger.Info("Ingested passages", "passages", len(req.Passages), "elements", len(elements))
	c.JSON(http.StatusCreated, dto.NewGraphResponse(elements))
}

// GetFacts handles GET /api/v1/facts
func (h *GraphHandler) GetFacts(c *gin.Context) {
	if !requireAgent(c, h.agent) {
		return
	}
	facts := h.agent.Triples()
	c.JSON(http.StatusOK, dto.FactsResponse{Facts: facts, Count: len(facts)})
}

// ClearGraph handles DELETE /api/v1/graph
func (h *GraphHandler) ClearGraph(c *gin.Context) {
	if !requireAgent(c, h.agent) {
		return
	}
	if err := h.agent.Reset(c.Request.Context()); err != nil {
		h.fail(c, "Failed to clear graph", err)
		return
	}
	c.JSON(http.StatusOK, dto.Result{Success: true})
}

// GetNeighbors handles GET /api/v1/neighbors/:entity
func (h *GraphHandler) GetNeighbors(c *gin.Context) {
	entity := strings.TrimSpace(c.Param("entity"))
	if entity == "" {
		writeError(c, http.StatusBadRequest, "invalid_request", "entity is required")
		return
	}
	if !requireAgent(c, h.agent) {
		return
	}

	n := h.agent.Neighbors(entity)
	if len(n.Edges) == 0 {
		writeError(c, http.StatusNotFound, "not_found", "entity has no neighbors: "+entity)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *GraphHandler) fail(c *gin.Context, msg string, err error) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(msg, "error", err)
	}
	writeError(c, status, code, err.Error())
}
