package search

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"desktop-assistant/internal/chat"
	"desktop-assistant/pkg/datemath"
	"desktop-assistant/pkg/llmprovider"
	pkgLog "desktop-assistant/pkg/log"
)

// Config tunes result count, history window and the answer cache.
type Config struct {
	Username      string
	AssistantName string
	HistorySize   int
	Results       int
	CacheTTL      time.Duration
	CacheSize     int
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      llmprovider.Generator
	searcher Searcher
	history  chat.History
	clock    *datemath.Clock
	cache    *expirable.LRU[string, string]
	cfg      Config
}

var _ UseCase = (*implUseCase)(nil)

// New creates a realtime search UseCase. A nil searcher answers from the model alone.
func New(l pkgLog.Logger, llm llmprovider.Generator, searcher Searcher, history chat.History, clock *datemath.Clock, cfg Config) *implUseCase {
	if cfg.Results <= 0 {
		cfg.Results = DefaultResults
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = chat.DefaultHistorySize
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}

	uc := &implUseCase{
		l:        l,
		llm:      llm,
		searcher: searcher,
		history:  history,
		clock:    clock,
		cfg:      cfg,
	}
	if cfg.CacheTTL > 0 {
		uc.cache = expirable.NewLRU[string, string](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return uc
}
