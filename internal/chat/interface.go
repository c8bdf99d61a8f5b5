package chat

import (
	"context"

	"desktop-assistant/internal/model"
)

// UseCase answers conversational queries with the chat model.
type UseCase interface {
	// Answer replies to query using the recent transcript as context.
	Answer(ctx context.Context, query string) (string, error)

	// WriteContent drafts a letter, email or similar piece about topic.
	WriteContent(ctx context.Context, topic string) (string, error)
}

// History supplies the recent transcript.
type History interface {
	Recent(ctx context.Context, n int) ([]model.Entry, error)
}
