package router

import (
	"context"

	"desktop-assistant/internal/automation"
	"desktop-assistant/internal/model"
)

// Answerer produces a reply for a query (chat or realtime search).
type Answerer interface {
	Answer(ctx context.Context, query string) (string, error)
}

// Automator runs an automation batch.
type Automator interface {
	Execute(ctx context.Context, commands []automation.Command) []automation.Outcome
}

// ImageRequester queues an image generation prompt without waiting for it.
type ImageRequester interface {
	Request(ctx context.Context, prompt string) error
}

// Session is the part of session state the router writes to.
type Session interface {
	Append(ctx context.Context, role model.Role, content string) (model.Entry, error)
	SetStatus(ctx context.Context, status model.Status)
}

// Presenter displays and speaks answers.
type Presenter interface {
	Present(ctx context.Context, text string) error
}
