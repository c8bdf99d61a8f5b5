package automation

import (
	pkgLog "desktop-assistant/pkg/log"
)

// Config holds the batch worker limit and where generated content is written.
type Config struct {
	Workers int
	DataDir string
}

// Deps are the collaborators commands call. Search and Videos may be nil.
type Deps struct {
	Launcher Launcher
	Search   WebSearcher
	Videos   VideoFinder
	Writer   ContentWriter
}

type implUseCase struct {
	l    pkgLog.Logger
	deps Deps
	cfg  Config
}

var _ UseCase = (*implUseCase)(nil)

// New creates an automation UseCase.
func New(l pkgLog.Logger, deps Deps, cfg Config) *implUseCase {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	return &implUseCase{
		l:    l,
		deps: deps,
		cfg:  cfg,
	}
}
