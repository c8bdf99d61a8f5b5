package automation

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"desktop-assistant/pkg/youtube"
)

// open launches an app, falling back to the first web result for its name.
func (uc *implUseCase) open(ctx context.Context, name string) error {
	err := uc.deps.Launcher.OpenApp(ctx, name)
	if err == nil {
		return nil
	}
	uc.l.Debugf(ctx, "%s: launcher could not open %q (%v), trying the web", LogPrefixOpen, name, err)

	if uc.deps.Search == nil {
		return err
	}
	results, serr := uc.deps.Search.Search(ctx, name, 1)
	if serr != nil {
		return fmt.Errorf("open %q: %w", name, serr)
	}
	if len(results) == 0 || results[0].Link == "" {
		return fmt.Errorf("open %q: %w", name, ErrNoWebResult)
	}
	return uc.deps.Launcher.OpenURL(ctx, results[0].Link)
}

// play opens the first matching video, or the results page when lookup is unavailable.
func (uc *implUseCase) play(ctx context.Context, song string) error {
	if uc.deps.Videos != nil {
		link, err := uc.deps.Videos.FirstVideoURL(ctx, song)
		if err == nil {
			return uc.deps.Launcher.OpenURL(ctx, link)
		}
		uc.l.Warnf(ctx, "%s: video lookup for %q failed: %v", LogPrefixExecute, song, err)
	}
	return uc.deps.Launcher.OpenURL(ctx, youtubeSearchURL(song))
}

func (uc *implUseCase) system(ctx context.Context, command string) error {
	action := VolumeAction(strings.ToLower(strings.TrimSpace(command)))
	switch action {
	case VolumeMute, VolumeUnmute, VolumeUp, VolumeDown:
		return uc.deps.Launcher.Volume(ctx, action)
	}
	return fmt.Errorf("%w: %q", ErrUnknownSystemCommand, command)
}

// content drafts a piece about topic, saves it under DataDir and opens it in the editor.
func (uc *implUseCase) content(ctx context.Context, topic string) error {
	text, err := uc.deps.Writer.WriteContent(ctx, topic)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(uc.cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(uc.cfg.DataDir, FileName(topic)+".txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write content: %w", err)
	}
	uc.l.Infof(ctx, "%s: saved %s", LogPrefixContent, path)

	return uc.deps.Launcher.OpenFile(ctx, path)
}

// FileName turns free text into a lower snake_case file name.
func FileName(s string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			underscore = false
		case !underscore && b.Len() > 0:
			b.WriteByte('_')
			underscore = true
		}
	}
	name := strings.TrimSuffix(b.String(), "_")
	if name == "" {
		return "untitled"
	}
	return name
}

func queryEscape(s string) string {
	return url.QueryEscape(s)
}

func youtubeSearchURL(q string) string {
	return youtube.SearchURL(q)
}
