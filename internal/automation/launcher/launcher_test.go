package launcher

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"desktop-assistant/internal/automation"
)

type call struct {
	mode string
	argv []string
}

type fakeRunner struct {
	calls []call
	paths map[string]string
	err   error
}

func (f *fakeRunner) Start(ctx context.Context, name string, args ...string) error {
	f.calls = append(f.calls, call{"start", append([]string{name}, args...)})
	return f.err
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	f.calls = append(f.calls, call{"run", append([]string{name}, args...)})
	return f.err
}

func (f *fakeRunner) LookPath(file string) (string, error) {
	if p, ok := f.paths[file]; ok {
		return p, nil
	}
	return "", errors.New("not found")
}

func newTestLauncher(goos string, cfg Config) (*Launcher, *fakeRunner) {
	r := &fakeRunner{paths: map[string]string{"firefox": "/usr/bin/firefox", "visual-studio-code": "/usr/bin/visual-studio-code"}}
	return &Launcher{cfg: cfg, goos: goos, exec: r}, r
}

func TestOpenApp(t *testing.T) {
	ctx := context.Background()

	l, r := newTestLauncher("linux", Config{})
	if err := l.OpenApp(ctx, "Firefox"); err != nil {
		t.Fatalf("OpenApp: %v", err)
	}
	if err := l.OpenApp(ctx, "Visual Studio Code"); err != nil {
		t.Fatalf("OpenApp: %v", err)
	}
	want := []call{
		{"start", []string{"/usr/bin/firefox"}},
		{"start", []string{"/usr/bin/visual-studio-code"}},
	}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %+v, want %+v", r.calls, want)
	}

	if err := l.OpenApp(ctx, "facebook"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	mac, mr := newTestLauncher("darwin", Config{})
	if err := mac.OpenApp(ctx, "Spotify"); err != nil {
		t.Fatalf("OpenApp darwin: %v", err)
	}
	if got := strings.Join(mr.calls[0].argv, " "); got != "open -a Spotify" {
		t.Errorf("unexpected darwin call %q", got)
	}
}

func TestCloseApp(t *testing.T) {
	ctx := context.Background()

	l, r := newTestLauncher("linux", Config{})
	l.CloseApp(ctx, "spotify")
	if got := strings.Join(r.calls[0].argv, " "); got != "pkill -i -f spotify" {
		t.Errorf("unexpected linux call %q", got)
	}

	w, wr := newTestLauncher("windows", Config{})
	w.CloseApp(ctx, "notepad")
	if got := strings.Join(wr.calls[0].argv, " "); got != "taskkill /IM notepad.exe /F" {
		t.Errorf("unexpected windows call %q", got)
	}
}

func TestOpenURLAndFile(t *testing.T) {
	ctx := context.Background()

	l, r := newTestLauncher("linux", Config{Browser: "firefox", Editor: "gedit"})
	l.OpenURL(ctx, "https://go.dev")
	l.OpenFile(ctx, "data/letter.txt")

	d, dr := newTestLauncher("linux", Config{})
	d.OpenURL(ctx, "https://go.dev")

	if got := strings.Join(r.calls[0].argv, " "); got != "firefox https://go.dev" {
		t.Errorf("unexpected browser call %q", got)
	}
	if got := strings.Join(r.calls[1].argv, " "); got != "gedit data/letter.txt" {
		t.Errorf("unexpected editor call %q", got)
	}
	if got := strings.Join(dr.calls[0].argv, " "); got != "xdg-open https://go.dev" {
		t.Errorf("unexpected default opener %q", got)
	}
}

func TestVolume(t *testing.T) {
	ctx := context.Background()

	l, r := newTestLauncher("linux", Config{})
	if err := l.Volume(ctx, automation.VolumeUp); err != nil {
		t.Fatalf("Volume: %v", err)
	}
	if got := strings.Join(r.calls[0].argv, " "); got != "pactl set-sink-volume @DEFAULT_SINK@ +10%" {
		t.Errorf("unexpected volume call %q", got)
	}
	if r.calls[0].mode != "run" {
		t.Error("volume commands should be waited on")
	}

	w, _ := newTestLauncher("windows", Config{})
	if err := w.Volume(ctx, automation.VolumeMute); !errors.Is(err, automation.ErrUnknownSystemCommand) {
		t.Errorf("expected unsupported volume on windows, got %v", err)
	}
}
