package presenter

import (
	"context"
	"os/exec"
	"strings"

	pkgLog "desktop-assistant/pkg/log"
)

// Speaker pipes answers to a text-to-speech command. Failures are logged and swallowed.
type Speaker struct {
	l    pkgLog.Logger
	cmd  string
	args []string
	run  func(ctx context.Context, name string, args ...string) error
}

var _ Presenter = (*Speaker)(nil)

// NewSpeaker splits command on whitespace; the text is passed as the last argument.
func NewSpeaker(l pkgLog.Logger, command string) *Speaker {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		fields = []string{DefaultTTSCommand}
	}
	return &Speaker{
		l:    l,
		cmd:  fields[0],
		args: fields[1:],
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

func (s *Speaker) Present(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	args := append(append([]string(nil), s.args...), text)
	if err := s.run(ctx, s.cmd, args...); err != nil {
		s.l.Warnf(ctx, "%s: %s failed: %v", LogPrefixSpeak, s.cmd, err)
	}
	return nil
}
