package launcher

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"desktop-assistant/internal/automation"
)

// ErrNotFound is returned when no executable matches an app name.
var ErrNotFound = errors.New("application not found")

// Config selects the programs used for browsing and editing. Empty values use the OS default opener.
type Config struct {
	Browser string
	Editor  string
}

// runner starts (detached) or runs (waited) an external program.
type runner interface {
	Start(ctx context.Context, name string, args ...string) error
	Run(ctx context.Context, name string, args ...string) error
	LookPath(file string) (string, error)
}

// Launcher drives desktop programs through the OS command line.
type Launcher struct {
	cfg  Config
	goos string
	exec runner
}

var _ automation.Launcher = (*Launcher)(nil)

// New creates a Launcher for the current OS.
func New(cfg Config) *Launcher {
	return &Launcher{cfg: cfg, goos: runtime.GOOS, exec: osRunner{}}
}

func (l *Launcher) OpenApp(ctx context.Context, name string) error {
	candidates := []string{name, strings.ToLower(name), strings.ReplaceAll(strings.ToLower(name), " ", "-")}
	for _, c := range candidates {
		if path, err := l.exec.LookPath(c); err == nil {
			return l.exec.Start(ctx, path)
		}
	}
	if l.goos == "darwin" {
		return l.exec.Run(ctx, "open", "-a", name)
	}
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

func (l *Launcher) CloseApp(ctx context.Context, name string) error {
	if l.goos == "windows" {
		image := name
		if !strings.HasSuffix(strings.ToLower(image), ".exe") {
			image += ".exe"
		}
		return l.exec.Run(ctx, "taskkill", "/IM", image, "/F")
	}
	return l.exec.Run(ctx, "pkill", "-i", "-f", name)
}

func (l *Launcher) OpenURL(ctx context.Context, url string) error {
	if l.cfg.Browser != "" {
		return l.exec.Start(ctx, l.cfg.Browser, url)
	}
	return l.openDefault(ctx, url)
}

func (l *Launcher) OpenFile(ctx context.Context, path string) error {
	if l.cfg.Editor != "" {
		return l.exec.Start(ctx, l.cfg.Editor, path)
	}
	return l.openDefault(ctx, path)
}

func (l *Launcher) Volume(ctx context.Context, action automation.VolumeAction) error {
	args, ok := volumeCommands[l.goos][action]
	if !ok {
		return fmt.Errorf("%w: %q on %s", automation.ErrUnknownSystemCommand, action, l.goos)
	}
	return l.exec.Run(ctx, args[0], args[1:]...)
}

func (l *Launcher) openDefault(ctx context.Context, target string) error {
	switch l.goos {
	case "darwin":
		return l.exec.Start(ctx, "open", target)
	case "windows":
		return l.exec.Start(ctx, "rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return l.exec.Start(ctx, "xdg-open", target)
	}
}

var volumeCommands = map[string]map[automation.VolumeAction][]string{
	"linux": {
		automation.VolumeMute:   {"pactl", "set-sink-mute", "@DEFAULT_SINK@", "1"},
		automation.VolumeUnmute: {"pactl", "set-sink-mute", "@DEFAULT_SINK@", "0"},
		automation.VolumeUp:     {"pactl", "set-sink-volume", "@DEFAULT_SINK@", "+10%"},
		automation.VolumeDown:   {"pactl", "set-sink-volume", "@DEFAULT_SINK@", "-10%"},
	},
	"darwin": {
		automation.VolumeMute:   {"osascript", "-e", "set volume output muted true"},
		automation.VolumeUnmute: {"osascript", "-e", "set volume output muted false"},
		automation.VolumeUp:     {"osascript", "-e", "set volume output volume ((output volume of (get volume settings)) + 10)"},
		automation.VolumeDown:   {"osascript", "-e", "set volume output volume ((output volume of (get volume settings)) - 10)"},
	},
}

type osRunner struct{}

// Start launches the program without waiting; the child is reaped in the background.
func (osRunner) Start(ctx context.Context, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}

func (osRunner) Run(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("run %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (osRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
