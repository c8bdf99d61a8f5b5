package http

import (
	"strings"

	"desktop-assistant/internal/assistant"
	"desktop-assistant/internal/model"
	"desktop-assistant/pkg/response"
)

// --- Request DTOs ---

type submitReq struct {
	Text string `json:"text" binding:"required,max=2000"`
}

func (r submitReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return assistant.ErrEmptyUtterance
	}
	return nil
}

// --- Response DTOs ---

type intentResp struct {
	Category string `json:"category"`
	Payload  string `json:"payload"`
}

type submitResp struct {
	TraceID            string       `json:"trace_id"`
	Intents            []intentResp `json:"intents"`
	Answer             string       `json:"answer,omitempty"`
	AutomationHandled  bool         `json:"automation_handled"`
	AutomationFailures int          `json:"automation_failures"`
	ImageRequested     bool         `json:"image_requested"`
	Exiting            bool         `json:"exiting"`
	ClassifyError      string       `json:"classify_error,omitempty"`
}

func (h *handler) newSubmitResp(r assistant.TurnResult) submitResp {
	intents := make([]intentResp, len(r.Decision))
	for i, it := range r.Decision {
		intents[i] = intentResp{Category: string(it.Category), Payload: it.Payload}
	}
	return submitResp{
		TraceID:            r.TraceID,
		Intents:            intents,
		Answer:             r.Result.Answer,
		AutomationHandled:  r.Result.AutomationHandled,
		AutomationFailures: r.Result.AutomationFailures,
		ImageRequested:     r.Result.ImageRequested,
		Exiting:            r.Result.Exiting,
		ClassifyError:      r.ClassifyError,
	}
}

type entryResp struct {
	ID        string            `json:"id"`
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	Timestamp response.DateTime `json:"timestamp" swaggertype:"string"`
}

type transcriptResp struct {
	Entries []entryResp `json:"entries"`
	Total   int         `json:"total"`
}

func (h *handler) newTranscriptResp(entries []model.Entry, last int) transcriptResp {
	total := len(entries)
	if last > 0 && last < len(entries) {
		entries = entries[len(entries)-last:]
	}
	out := make([]entryResp, len(entries))
	for i, e := range entries {
		out[i] = entryResp{
			ID:        e.ID,
			Role:      string(e.Role),
			Content:   e.Content,
			Timestamp: response.DateTime(e.Timestamp),
		}
	}
	return transcriptResp{Entries: out, Total: total}
}

type statusResp struct {
	Status string `json:"status"`
}
