package automation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"desktop-assistant/internal/intent"
)

func (uc *implUseCase) Execute(ctx context.Context, commands []Command) []Outcome {
	outcomes := make([]Outcome, len(commands))
	if len(commands) == 0 {
		return outcomes
	}

	var g errgroup.Group
	g.SetLimit(uc.cfg.Workers)

	for i, cmd := range commands {
		g.Go(func() error {
			outcomes[i] = uc.run(ctx, cmd)
			return nil // failures stay per item
		})
	}
	_ = g.Wait()

	failed := Failures(outcomes)
	for _, o := range outcomes {
		if o.Err != nil {
			uc.l.Warnf(ctx, "%s: %q failed: %v", LogPrefixExecute, o.Command.String(), o.Err)
		}
	}
	uc.l.Infof(ctx, "%s: %d command(s), %d failed", LogPrefixExecute, len(commands), failed)
	return outcomes
}

// run executes one command, turning panics into a failed outcome.
func (uc *implUseCase) run(ctx context.Context, cmd Command) (out Outcome) {
	out.Command = cmd
	defer func() {
		if r := recover(); r != nil {
			out.OK = false
			out.Err = fmt.Errorf("%w: %v", ErrCommandPanicked, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}

	out.Err = uc.dispatch(ctx, cmd)
	out.OK = out.Err == nil
	return out
}

func (uc *implUseCase) dispatch(ctx context.Context, cmd Command) error {
	if cmd.Arg == "" {
		return fmt.Errorf("%w: %s", ErrEmptyArgument, cmd.Verb)
	}

	switch cmd.Verb {
	case intent.CategoryOpen:
		return uc.open(ctx, cmd.Arg)
	case intent.CategoryClose:
		return uc.deps.Launcher.CloseApp(ctx, cmd.Arg)
	case intent.CategoryPlay:
		return uc.play(ctx, cmd.Arg)
	case intent.CategorySystem:
		return uc.system(ctx, cmd.Arg)
	case intent.CategoryContent:
		return uc.content(ctx, cmd.Arg)
	case intent.CategoryGoogleSearch:
		return uc.deps.Launcher.OpenURL(ctx, GoogleSearchURL+queryEscape(cmd.Arg))
	case intent.CategoryYouTubeSearch:
		return uc.deps.Launcher.OpenURL(ctx, youtubeSearchURL(cmd.Arg))
	default:
		return fmt.Errorf("%w: %s", ErrUnknownVerb, cmd.Verb)
	}
}
