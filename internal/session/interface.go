package session

import (
	"context"

	"desktop-assistant/internal/model"
)

// UseCase owns the transcript and the assistant status.
type UseCase interface {
	// Append adds an entry to the end of the transcript.
	Append(ctx context.Context, role model.Role, content string) (model.Entry, error)

	// Transcript returns the full transcript, oldest first.
	Transcript(ctx context.Context) ([]model.Entry, error)

	// Recent returns the last n entries, oldest first.
	Recent(ctx context.Context, n int) ([]model.Entry, error)

	// SeedGreeting writes the default greeting pair if the transcript is empty.
	SeedGreeting(ctx context.Context) error

	SetStatus(ctx context.Context, status model.Status)
	Status() model.Status
}
