package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"desktop-assistant/internal/assistant"
	"desktop-assistant/internal/httpserver"
	"desktop-assistant/internal/router"
	"desktop-assistant/pkg/log"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive assistant and its HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runAssistant,
	}
	cmd.Flags().Bool("no-repl", false, "serve the HTTP API only")
	return cmd
}

func runAssistant(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	noREPL, _ := cmd.Flags().GetBool("no-repl")

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting desktop assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	var rl *readline.Instance
	var out io.Writer = os.Stdout
	if !noREPL {
		if err := os.MkdirAll(cfg.Assistant.DataDir, 0o755); err != nil {
			return fmt.Errorf("data dir: %w", err)
		}
		rl, err = readline.NewEx(&readline.Config{
			Prompt:          "> ",
			HistoryFile:     filepath.Join(cfg.Assistant.DataDir, ".history"),
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
		})
		if err != nil {
			return fmt.Errorf("readline: %w", err)
		}
		defer rl.Close()
		out = rl.Stdout()
	}

	a, err := buildApp(ctx, cfg, logger, out)
	if err != nil {
		return err
	}
	defer a.Close()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.images != nil {
		a.images.Start(runCtx)
	}

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		err := a.assistant.Run(gctx)
		cancel()
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if cfg.HTTPServer.Enabled {
		srv, err := httpserver.New(logger, httpserver.Config{
			Logger:          logger,
			Port:            cfg.HTTPServer.Port,
			Mode:            cfg.HTTPServer.Mode,
			Environment:     cfg.Environment.Name,
			RateLimitPerMin: cfg.RateLimit.PerMin,
			Assistant:       a.assistant,
		})
		if err != nil {
			cancel()
			return fmt.Errorf("http server: %w", err)
		}
		g.Go(func() error { return srv.Run(gctx) })
	}

	if rl != nil {
		go func() {
			<-gctx.Done()
			rl.Close()
		}()
		g.Go(func() error {
			defer cancel()
			return repl(gctx, rl, a.assistant, logger)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Errorf(ctx, "Assistant stopped with error: %v", err)
		return err
	}
	logger.Info(ctx, "Assistant stopped")
	return nil
}

// repl feeds typed lines to the assistant until EOF, interrupt or exit.
func repl(ctx context.Context, rl *readline.Instance, a *assistant.Assistant, l log.Logger) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if _, err := a.Submit(ctx, line); err != nil {
			if errors.Is(err, router.ErrExiting) || errors.Is(err, context.Canceled) {
				return nil
			}
			l.Errorf(ctx, "Submit: %v", err)
			fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
		}
		if a.Exiting() {
			return nil
		}
	}
}
