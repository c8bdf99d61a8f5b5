package assistant

import (
	"context"

	"desktop-assistant/internal/intent"
	"desktop-assistant/internal/model"
	"desktop-assistant/internal/router"
)

// UseCase accepts utterances from any input surface.
type UseCase interface {
	// Submit queues utterance and waits for its turn to finish.
	Submit(ctx context.Context, utterance string) (TurnResult, error)
	Status() model.Status
	Transcript(ctx context.Context) ([]model.Entry, error)
}

// Classifier turns an utterance into a decision.
type Classifier interface {
	Decide(ctx context.Context, utterance string, history []model.Entry) (intent.Decision, error)
}

// Router dispatches a decision.
type Router interface {
	Route(ctx context.Context, decision intent.Decision) (router.Result, error)
}

// Session is the session state the loop reads and updates.
type Session interface {
	Recent(ctx context.Context, n int) ([]model.Entry, error)
	Transcript(ctx context.Context) ([]model.Entry, error)
	SetStatus(ctx context.Context, status model.Status)
	Status() model.Status
}

// Echo displays the user's utterance before it is handled.
type Echo interface {
	Present(ctx context.Context, text string) error
}
