package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"desktop-assistant/internal/assistant"
	"desktop-assistant/internal/router"
	"desktop-assistant/pkg/response"
)

// writeError maps use case errors onto HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrEmptyUtterance):
		response.Error(c, err)
	case errors.Is(err, router.ErrExiting):
		response.ErrorWithStatus(c, http.StatusConflict, response.ErrorCodeConflict, err)
	case errors.Is(err, assistant.ErrStopped),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		response.ErrorWithStatus(c, http.StatusServiceUnavailable, response.ErrorCodeUnavailable, err)
	default:
		response.InternalError(c, err)
	}
}
