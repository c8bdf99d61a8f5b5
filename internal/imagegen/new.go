package imagegen

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"

	pkgLog "desktop-assistant/pkg/log"
)

// Config controls how many images are made per request and the queue depth.
type Config struct {
	Images    int
	QueueSize int
	DataDir   string
}

type job struct {
	prompt  string
	traceID string
}

// Worker queues prompts and generates images on its own goroutine.
type Worker struct {
	l      pkgLog.Logger
	gen    Generator
	opener Opener
	cfg    Config
	seed   func() int

	jobs      chan job
	mu        sync.RWMutex
	closed    bool
	done      chan struct{}
	startOnce sync.Once
	started   atomic.Bool
}

var _ Trigger = (*Worker)(nil)

// New creates a Worker. opener may be nil.
func New(l pkgLog.Logger, gen Generator, opener Opener, cfg Config) *Worker {
	if cfg.Images <= 0 {
		cfg.Images = DefaultImages
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	return &Worker{
		l:      l,
		gen:    gen,
		opener: opener,
		cfg:    cfg,
		seed:   func() int { return rand.IntN(1_000_000) },
		jobs:   make(chan job, cfg.QueueSize),
		done:   make(chan struct{}),
	}
}
