package imagegen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"desktop-assistant/internal/automation"
	pkgLog "desktop-assistant/pkg/log"
)

// Request enqueues prompt and returns immediately. A full queue drops the request.
func (w *Worker) Request(ctx context.Context, prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return ErrEmptyPrompt
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return ErrClosed
	}

	select {
	case w.jobs <- job{prompt: prompt, traceID: pkgLog.TraceID(ctx)}:
		w.l.Infof(ctx, "%s: queued %q", LogPrefixRequest, prompt)
		return nil
	default:
		w.l.Warnf(ctx, "%s: queue full, dropping %q", LogPrefixRequest, prompt)
		return ErrQueueFull
	}
}

// Start runs the worker loop until ctx is done or Close is called.
func (w *Worker) Start(ctx context.Context) {
	w.startOnce.Do(func() {
		w.started.Store(true)
		go w.loop(ctx)
	})
}

// Close stops accepting requests and waits for the queued ones to finish.
func (w *Worker) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.jobs)
	}
	w.mu.Unlock()
	if w.started.Load() {
		<-w.done
	}
}

func (w *Worker) loop(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case j, ok := <-w.jobs:
			if !ok {
				return
			}
			jctx := pkgLog.WithTraceID(ctx, j.traceID)
			if _, err := w.generate(jctx, j.prompt); err != nil {
				w.l.Errorf(jctx, "%s: %q failed: %v", LogPrefixGenerate, j.prompt, err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// generate renders cfg.Images variants of prompt concurrently and saves them.
func (w *Worker) generate(ctx context.Context, prompt string) ([]string, error) {
	dir := filepath.Join(w.cfg.DataDir, ImagesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}

	base := automation.FileName(prompt)
	paths := make([]string, w.cfg.Images)

	g, gctx := errgroup.WithContext(ctx)
	for i := range paths {
		seeded := prompt + fmt.Sprintf(PromptSuffix, w.seed())
		path := filepath.Join(dir, fmt.Sprintf("%s%d.jpg", base, i+1))
		g.Go(func() error {
			img, err := w.gen.TextToImage(gctx, seeded)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, img, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	w.l.Infof(ctx, "%s: saved %d image(s) for %q", LogPrefixGenerate, len(paths), prompt)

	if w.opener != nil {
		for _, p := range paths {
			if err := w.opener.OpenFile(ctx, p); err != nil {
				w.l.Warnf(ctx, "%s: open %s: %v", LogPrefixGenerate, p, err)
			}
		}
	}
	return paths, nil
}
