package chat

import (
	"desktop-assistant/pkg/datemath"
	"desktop-assistant/pkg/llmprovider"
	pkgLog "desktop-assistant/pkg/log"
)

// Config holds the names used in the system prompt and the history window.
type Config struct {
	Username      string
	AssistantName string
	HistorySize   int
}

type implUseCase struct {
	l       pkgLog.Logger
	llm     llmprovider.Generator
	history History
	clock   *datemath.Clock
	cfg     Config
}

var _ UseCase = (*implUseCase)(nil)

// New creates a chat UseCase.
func New(l pkgLog.Logger, llm llmprovider.Generator, history History, clock *datemath.Clock, cfg Config) *implUseCase {
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultHistorySize
	}
	return &implUseCase{
		l:       l,
		llm:     llm,
		history: history,
		clock:   clock,
		cfg:     cfg,
	}
}
