package assistant

import (
	"context"

	"desktop-assistant/internal/intent"
	"desktop-assistant/internal/router"
)

// TurnResult describes how one utterance was handled.
type TurnResult struct {
	TraceID   string          `json:"trace_id"`
	Utterance string          `json:"utterance"`
	Decision  intent.Decision `json:"decision"`
	Result    router.Result   `json:"result"`
	// ClassifyError is set when classification failed and the turn was a no-op.
	ClassifyError string `json:"classify_error,omitempty"`
}

type turn struct {
	ctx       context.Context
	utterance string
	reply     chan turnReply
}

type turnReply struct {
	result TurnResult
	err    error
}
