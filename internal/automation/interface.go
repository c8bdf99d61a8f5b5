package automation

import (
	"context"

	"desktop-assistant/pkg/websearch"
)

// UseCase runs batches of automation commands.
type UseCase interface {
	// Execute runs every command concurrently and waits for all of them.
	// Outcomes are returned in command order.
	Execute(ctx context.Context, commands []Command) []Outcome
}

// Launcher performs OS and browser side effects.
type Launcher interface {
	OpenApp(ctx context.Context, name string) error
	CloseApp(ctx context.Context, name string) error
	OpenURL(ctx context.Context, url string) error
	OpenFile(ctx context.Context, path string) error
	Volume(ctx context.Context, action VolumeAction) error
}

// WebSearcher resolves names to web results.
type WebSearcher interface {
	Search(ctx context.Context, query string, n int) ([]websearch.Result, error)
}

// VideoFinder resolves a song name to a playable video URL.
type VideoFinder interface {
	FirstVideoURL(ctx context.Context, query string) (string, error)
}

// ContentWriter drafts text about a topic.
type ContentWriter interface {
	WriteContent(ctx context.Context, topic string) (string, error)
}
