package router

import (
	"sync/atomic"

	pkgLog "desktop-assistant/pkg/log"
)

// Deps are the collaborators a Router dispatches to. Images may be nil.
type Deps struct {
	Chat       Answerer
	Realtime   Answerer
	Automation Automator
	Images     ImageRequester
	Session    Session
	Presenter  Presenter
}

// Router dispatches a parsed decision to the handlers.
type Router struct {
	l       pkgLog.Logger
	deps    Deps
	exiting atomic.Bool
}

// New creates a Router.
func New(l pkgLog.Logger, deps Deps) *Router {
	return &Router{l: l, deps: deps}
}

// Exiting reports whether the session has ended.
func (r *Router) Exiting() bool {
	return r.exiting.Load()
}
