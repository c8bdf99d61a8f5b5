package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"desktop-assistant/internal/model"
	"desktop-assistant/internal/router"
	pkgLog "desktop-assistant/pkg/log"
)

// Submit queues utterance and blocks until the turn completes or ctx is done.
func (a *Assistant) Submit(ctx context.Context, utterance string) (TurnResult, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return TurnResult{}, ErrEmptyUtterance
	}

	t := turn{ctx: ctx, utterance: utterance, reply: make(chan turnReply, 1)}
	select {
	case a.turns <- t:
	case <-a.done:
		return TurnResult{}, a.stoppedErr()
	case <-ctx.Done():
		return TurnResult{}, ctx.Err()
	}

	select {
	case r := <-t.reply:
		return r.result, r.err
	case <-a.done:
		// the worker may have replied just before stopping
		select {
		case r := <-t.reply:
			return r.result, r.err
		default:
			return TurnResult{}, a.stoppedErr()
		}
	case <-ctx.Done():
		return TurnResult{}, ctx.Err()
	}
}

// Run processes turns serially until ctx is done or the user exits.
// It returns nil on exit and ctx.Err() on cancellation.
func (a *Assistant) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.doneOnce.Do(func() { close(a.done) })

	a.l.Infof(ctx, "%s: ready", LogPrefixRun)
	for {
		select {
		case <-ctx.Done():
			a.l.Infof(ctx, "%s: stopping: %v", LogPrefixRun, ctx.Err())
			return ctx.Err()
		case t := <-a.turns:
			if err := t.ctx.Err(); err != nil {
				a.l.Debugf(ctx, "%s: skipping abandoned turn %q: %v", LogPrefixRun, t.utterance, err)
				t.reply <- turnReply{err: err}
				continue
			}
			res, err := a.process(ctx, t)
			t.reply <- turnReply{result: res, err: err}
			if a.exiting.Load() {
				a.l.Infof(ctx, "%s: session ended", LogPrefixRun)
				return nil
			}
		}
	}
}

// Done is closed when Run returns.
func (a *Assistant) Done() <-chan struct{} {
	return a.done
}

// Exiting reports whether the user ended the session.
func (a *Assistant) Exiting() bool {
	return a.exiting.Load()
}

func (a *Assistant) Status() model.Status {
	return a.deps.Session.Status()
}

func (a *Assistant) Transcript(ctx context.Context) ([]model.Entry, error) {
	return a.deps.Session.Transcript(ctx)
}

func (a *Assistant) stoppedErr() error {
	if a.exiting.Load() {
		return router.ErrExiting
	}
	return ErrStopped
}

// process runs one turn. Panics are recovered so the loop keeps going.
func (a *Assistant) process(runCtx context.Context, t turn) (res TurnResult, err error) {
	traceID := uuid.NewString()
	ctx, cancel := context.WithTimeout(pkgLog.WithTraceID(t.ctx, traceID), a.cfg.TurnTimeout)
	defer cancel()
	stop := context.AfterFunc(runCtx, cancel)
	defer stop()

	res = TurnResult{TraceID: traceID, Utterance: t.utterance}

	defer func() {
		if r := recover(); r != nil {
			a.l.Errorf(ctx, "%s: panic: %v", LogPrefixTurn, r)
			a.deps.Session.SetStatus(ctx, model.StatusAvailable)
			err = fmt.Errorf("%w: %v", ErrTurnPanicked, r)
		}
	}()

	if a.deps.Echo != nil {
		if err := a.deps.Echo.Present(ctx, t.utterance); err != nil {
			a.l.Warnf(ctx, "%s: echo: %v", LogPrefixTurn, err)
		}
	}

	a.deps.Session.SetStatus(ctx, model.StatusThinking)

	history, herr := a.deps.Session.Recent(ctx, a.cfg.HistorySize)
	if herr != nil {
		a.l.Warnf(ctx, "%s: history unavailable: %v", LogPrefixTurn, herr)
	}

	decision, derr := a.deps.Classifier.Decide(ctx, t.utterance, history)
	if derr != nil {
		a.l.Errorf(ctx, "%s: classify %q: %v", LogPrefixTurn, t.utterance, derr)
		res.ClassifyError = derr.Error()
		decision = nil
	}
	res.Decision = decision
	a.l.Infof(ctx, "%s: %q -> %q", LogPrefixTurn, t.utterance, decision.String())

	result, rerr := a.deps.Router.Route(ctx, decision)
	res.Result = result
	if errors.Is(rerr, router.ErrExiting) || result.Exiting {
		a.exiting.Store(true)
		return res, nil
	}
	if rerr != nil {
		a.l.Errorf(ctx, "%s: route: %v", LogPrefixTurn, rerr)
	}

	a.deps.Session.SetStatus(ctx, model.StatusAvailable)
	return res, nil
}
