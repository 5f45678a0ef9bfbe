package handlers

import (
	"log/slog"
	"net/http"

	kgagent "github.com/LaurenzPoll/knowledge-graph-agent"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/server/dto"
	"github.com/gin-gonic/gin"
)

// AskHandler answers questions about the current graph
type AskHandler struct {
	agent  kgagent.Agent
	logger *slog.Logger
}

// NewAskHandler creates a new ask handler
func NewAskHandler(agent kgagent.Agent, logger *slog.Logger) *AskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AskHandler{
		agent:  agent,
		logger: logger,
	}
}

// Ask handles POST /api/v1/ask
func (h *AskHandler) Ask(c *gin.Context) {
	var req dto.AskRequest
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

	answer, err := h.agent.Answer(c.Request.Context(), req.Question)
	if err != nil {
		status, code := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("Failed to answer question", "error", err)
		}
		writeError(c, status, code, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.NewAskResponse(answer))
}
