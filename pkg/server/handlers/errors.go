package handlers

import (
	"context"
	"errors"
	"net/http"

	kgagent "github.com/LaurenzPoll/knowledge-graph-agent"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/server/dto"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
	"github.com/gin-gonic/gin"
)

// writeError writes an error response as JSON and aborts the request.
func writeError(c *gin.Context, status int, errCode, message string) {
	resp := dto.ErrorResponse{
		Error:   errCode,
		Message: message,
		Code:    status,
	}
	if id, ok := c.Request.Context().Value(types.ContextKeyRequestID).(string); ok {
		resp.RequestID = id
	}
	c.AbortWithStatusJSON(status, resp)
}

// statusFor maps agent errors to HTTP status codes.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, types.ErrEmptyQuestion),
		errors.Is(err, types.ErrEmptySubject),
		errors.Is(err, types.ErrEmptyPredicate),
		errors.Is(err, types.ErrEmptyObject),
		errors.Is(err, kgagent.ErrNoPassages):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// requireAgent writes 503 and returns false when the handler has no agent.
func requireAgent(c *gin.Context, agent kgagent.Agent) bool {
	if agent == nil {
		writeError(c, http.StatusServiceUnavailable, "unavailable", "agent not initialized")
		return false
	}
	return true
}
