package assistant

import (
	"sync"
	"sync/atomic"
	"time"

	pkgLog "desktop-assistant/pkg/log"
)

// Config tunes the turn loop.
type Config struct {
	HistorySize int
	TurnTimeout time.Duration
	QueueSize   int
}

// Deps are the collaborators of the loop. Echo may be nil.
type Deps struct {
	Classifier Classifier
	Router     Router
	Session    Session
	Echo       Echo
}

// Assistant processes utterances one at a time on a single worker.
type Assistant struct {
	l    pkgLog.Logger
	deps Deps
	cfg  Config

	turns    chan turn
	done     chan struct{}
	doneOnce sync.Once
	running  atomic.Bool
	exiting  atomic.Bool
}

var _ UseCase = (*Assistant)(nil)

// New creates an Assistant. Call Run to start processing.
func New(l pkgLog.Logger, deps Deps, cfg Config) *Assistant {
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultHistorySize
	}
	if cfg.TurnTimeout <= 0 {
		cfg.TurnTimeout = DefaultTurnTimeout
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	return &Assistant{
		l:     l,
		deps:  deps,
		cfg:   cfg,
		turns: make(chan turn, cfg.QueueSize),
		done:  make(chan struct{}),
	}
}
