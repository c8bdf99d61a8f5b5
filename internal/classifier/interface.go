package classifier

import (
	"context"

	"desktop-assistant/internal/intent"
	"desktop-assistant/internal/model"
)

// Classifier labels utterances with intents.
type Classifier interface {
	// Classify returns the raw comma-separated labels for utterance.
	Classify(ctx context.Context, utterance string, history []model.Entry) (string, error)

	// Decide classifies and parses, retrying a bounded number of times on placeholder output.
	Decide(ctx context.Context, utterance string, history []model.Entry) (intent.Decision, error)
}
