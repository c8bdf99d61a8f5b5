package search

import (
	"context"

	"desktop-assistant/pkg/websearch"
)

// UseCase answers queries that need up-to-date information.
type UseCase interface {
	Answer(ctx context.Context, query string) (string, error)
}

// Searcher finds web results for a query.
type Searcher interface {
	Search(ctx context.Context, query string, n int) ([]websearch.Result, error)
}
