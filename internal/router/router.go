package router

import (
	"context"
	"fmt"
	"strings"

	"desktop-assistant/internal/automation"
	"desktop-assistant/internal/chat"
	"desktop-assistant/internal/intent"
	"desktop-assistant/internal/model"
)

// Route runs the automation, image and answer passes for decision, in that order.
// Only ErrExiting is returned; handler failures are logged or turned into an apology.
func (r *Router) Route(ctx context.Context, decision intent.Decision) (Result, error) {
	if r.exiting.Load() {
		return Result{Exiting: true}, ErrExiting
	}

	var res Result
	if decision.Empty() {
		return res, nil
	}
	r.l.Debugf(ctx, "%s: decision=%q", LogPrefixRoute, decision.String())

	r.automate(ctx, decision, &res)
	r.requestImage(ctx, decision, &res)

	if decision.Has(intent.CategoryRealtime) {
		if q := decision.MergedQuery(); q != "" {
			r.answer(ctx, r.deps.Realtime, intent.CategoryRealtime, model.StatusSearching, q, &res)
		}
		if decision.Has(intent.CategoryExit) {
			r.exit(ctx, &res)
		}
		return res, nil
	}

	if decision.Has(intent.CategoryExit) {
		r.exit(ctx, &res)
		return res, nil
	}

	for _, it := range decision {
		if it.Category == intent.CategoryGeneral && it.Payload != "" {
			r.answer(ctx, r.deps.Chat, intent.CategoryGeneral, model.StatusThinking, it.Payload, &res)
			break
		}
	}
	return res, nil
}

func (r *Router) automate(ctx context.Context, decision intent.Decision, res *Result) {
	var batch []automation.Command
	for _, it := range decision {
		if it.Category.IsAutomation() {
			batch = append(batch, automation.FromIntent(it))
		}
	}
	if len(batch) == 0 || r.deps.Automation == nil {
		return
	}

	outcomes := r.deps.Automation.Execute(ctx, batch)
	res.AutomationHandled = true
	res.AutomationFailures = automation.Failures(outcomes)
	for _, o := range outcomes {
		if !o.OK {
			r.l.Warnf(ctx, "%s: %q failed: %v", LogPrefixAutomation, o.Command.String(), o.Err)
		}
	}
}

// requestImage fires at most one request per turn; the last matching intent wins.
func (r *Router) requestImage(ctx context.Context, decision intent.Decision, res *Result) {
	prompt := ""
	for _, it := range decision {
		if strings.Contains(it.Raw, imageKeyword) {
			prompt = it.Raw
		}
	}
	if prompt == "" || r.deps.Images == nil {
		return
	}

	if err := r.deps.Images.Request(ctx, prompt); err != nil {
		r.l.Warnf(ctx, "%s: %q not queued: %v", LogPrefixImage, prompt, err)
		return
	}
	res.ImageRequested = true
}

func (r *Router) exit(ctx context.Context, res *Result) {
	r.answer(ctx, r.deps.Chat, intent.CategoryExit, model.StatusThinking, Farewell, res)
	r.exiting.Store(true)
	r.deps.Session.SetStatus(ctx, model.StatusExiting)
	res.Exiting = true
}

func (r *Router) answer(ctx context.Context, h Answerer, by intent.Category, status model.Status, query string, res *Result) {
	query = chat.ModifyQuery(query)
	r.deps.Session.SetStatus(ctx, status)

	text, err := h.Answer(ctx, query)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrHandler, by, err)
		r.l.Errorf(ctx, "%s: %v", LogPrefixAnswer, err)
		text = ApologyMessage
	}

	if _, err := r.deps.Session.Append(ctx, model.RoleUser, query); err != nil {
		r.l.Errorf(ctx, "%s: append query: %v", LogPrefixAnswer, err)
	}
	if _, err := r.deps.Session.Append(ctx, model.RoleAssistant, text); err != nil {
		r.l.Errorf(ctx, "%s: append answer: %v", LogPrefixAnswer, err)
	}

	r.deps.Session.SetStatus(ctx, model.StatusAnswering)
	if err := r.deps.Presenter.Present(ctx, text); err != nil {
		r.l.Warnf(ctx, "%s: present: %v", LogPrefixAnswer, err)
	}

	res.Answered = true
	res.AnsweredBy = by
	res.Answer = text
}
