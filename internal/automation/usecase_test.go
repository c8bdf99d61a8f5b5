package automation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"desktop-assistant/internal/intent"
	"desktop-assistant/pkg/log"
	"desktop-assistant/pkg/websearch"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeLauncher struct {
	mu       sync.Mutex
	opened   []string
	urls     []string
	files    []string
	closed   []string
	volumes  []VolumeAction
	openErr  error
	closeErr error
	panicOn  string

	inFlight, maxInFlight int32
	delay                 time.Duration
}

func (f *fakeLauncher) track() func() {
	n := atomic.AddInt32(&f.inFlight, 1)
	for {
		max := atomic.LoadInt32(&f.maxInFlight)
		if n <= max || atomic.CompareAndSwapInt32(&f.maxInFlight, max, n) {
			break
		}
	}
	time.Sleep(f.delay)
	return func() { atomic.AddInt32(&f.inFlight, -1) }
}

func (f *fakeLauncher) OpenApp(ctx context.Context, name string) error {
	defer f.track()()
	if name == f.panicOn {
		panic("launcher exploded")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.openErr != nil {
		return f.openErr
	}
	f.opened = append(f.opened, name)
	return nil
}

func (f *fakeLauncher) CloseApp(ctx context.Context, name string) error {
	defer f.track()()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = append(f.closed, name)
	return f.closeErr
}

func (f *fakeLauncher) OpenURL(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	return nil
}

func (f *fakeLauncher) OpenFile(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files = append(f.files, path)
	return nil
}

func (f *fakeLauncher) Volume(ctx context.Context, action VolumeAction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volumes = append(f.volumes, action)
	return nil
}

type fakeSearch struct {
	results []websearch.Result
	err     error
}

func (f fakeSearch) Search(ctx context.Context, query string, n int) ([]websearch.Result, error) {
	return f.results, f.err
}

type fakeVideos struct {
	url string
	err error
}

func (f fakeVideos) FirstVideoURL(ctx context.Context, query string) (string, error) {
	return f.url, f.err
}

type fakeWriter struct {
	text string
	err  error
}

func (f fakeWriter) WriteContent(ctx context.Context, topic string) (string, error) {
	return f.text, f.err
}

func TestExecute_Batch(t *testing.T) {
	launcher := &fakeLauncher{}
	uc := New(log.NewNop(), Deps{Launcher: launcher}, Config{})

	outcomes := uc.Execute(context.Background(), []Command{
		{Verb: intent.CategoryOpen, Arg: "chrome"},
		{Verb: intent.CategoryClose, Arg: "spotify"},
		{Verb: intent.CategorySystem, Arg: "Volume Up"},
		{Verb: intent.CategoryGoogleSearch, Arg: "golang generics"},
		{Verb: intent.CategoryYouTubeSearch, Arg: "lofi beats"},
	})

	if len(outcomes) != 5 {
		t.Fatalf("expected 5 outcomes, got %d", len(outcomes))
	}
	for i, o := range outcomes {
		if !o.OK || o.Err != nil {
			t.Errorf("outcome %d failed: %+v", i, o)
		}
	}
	if outcomes[1].Command.Arg != "spotify" {
		t.Errorf("outcomes must keep command order, got %+v", outcomes[1])
	}

	sort.Strings(launcher.urls)
	want := []string{
		"https://www.google.com/search?q=golang+generics",
		"https://www.youtube.com/results?search_query=lofi+beats",
	}
	if len(launcher.urls) != 2 || launcher.urls[0] != want[0] || launcher.urls[1] != want[1] {
		t.Errorf("unexpected urls %v", launcher.urls)
	}
	if len(launcher.volumes) != 1 || launcher.volumes[0] != VolumeUp {
		t.Errorf("unexpected volume actions %v", launcher.volumes)
	}
}

func TestExecute_FailuresAreIsolated(t *testing.T) {
	launcher := &fakeLauncher{closeErr: errors.New("no such process"), panicOn: "boom"}
	uc := New(log.NewNop(), Deps{Launcher: launcher}, Config{})

	outcomes := uc.Execute(context.Background(), []Command{
		{Verb: intent.CategoryClose, Arg: "ghost"},
		{Verb: intent.CategoryOpen, Arg: "boom"},
		{Verb: intent.CategorySystem, Arg: "brightness up"},
		{Verb: intent.CategoryOpen, Arg: "chrome"},
		{Verb: intent.CategoryGenerateImage, Arg: "a cat"},
		{Verb: intent.CategoryOpen, Arg: ""},
	})

	if outcomes[0].OK || outcomes[0].Err == nil {
		t.Error("close failure should be reported")
	}
	if !errors.Is(outcomes[1].Err, ErrCommandPanicked) {
		t.Errorf("expected recovered panic, got %v", outcomes[1].Err)
	}
	if !errors.Is(outcomes[2].Err, ErrUnknownSystemCommand) {
		t.Errorf("expected ErrUnknownSystemCommand, got %v", outcomes[2].Err)
	}
	if !outcomes[3].OK {
		t.Errorf("healthy command should succeed: %+v", outcomes[3])
	}
	if !errors.Is(outcomes[4].Err, ErrUnknownVerb) {
		t.Errorf("expected ErrUnknownVerb, got %v", outcomes[4].Err)
	}
	if !errors.Is(outcomes[5].Err, ErrEmptyArgument) {
		t.Errorf("expected ErrEmptyArgument, got %v", outcomes[5].Err)
	}
	if Failures(outcomes) != 5 {
		t.Errorf("expected 5 failures, got %d", Failures(outcomes))
	}
}

func TestExecute_BoundedConcurrency(t *testing.T) {
	launcher := &fakeLauncher{delay: 20 * time.Millisecond}
	uc := New(log.NewNop(), Deps{Launcher: launcher}, Config{Workers: 2})

	cmds := make([]Command, 6)
	for i := range cmds {
		cmds[i] = Command{Verb: intent.CategoryOpen, Arg: "app"}
	}
	uc.Execute(context.Background(), cmds)

	if max := atomic.LoadInt32(&launcher.maxInFlight); max > 2 || max < 1 {
		t.Errorf("expected at most 2 concurrent commands, saw %d", max)
	}
	if len(launcher.opened) != 6 {
		t.Errorf("expected all commands to run, got %d", len(launcher.opened))
	}
}

func TestExecute_CancelledContext(t *testing.T) {
	launcher := &fakeLauncher{}
	uc := New(log.NewNop(), Deps{Launcher: launcher}, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := uc.Execute(ctx, []Command{{Verb: intent.CategoryOpen, Arg: "chrome"}})
	if !errors.Is(outcomes[0].Err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", outcomes[0].Err)
	}
	if len(launcher.opened) != 0 {
		t.Error("cancelled batch must not launch anything")
	}
}

func TestOpen_WebFallback(t *testing.T) {
	launcher := &fakeLauncher{openErr: errors.New("not installed")}
	uc := New(log.NewNop(), Deps{
		Launcher: launcher,
		Search:   fakeSearch{results: []websearch.Result{{Link: "https://www.facebook.com/"}}},
	}, Config{})

	out := uc.Execute(context.Background(), []Command{{Verb: intent.CategoryOpen, Arg: "facebook"}})
	if !out[0].OK {
		t.Fatalf("expected web fallback to succeed: %v", out[0].Err)
	}
	if len(launcher.urls) != 1 || launcher.urls[0] != "https://www.facebook.com/" {
		t.Errorf("unexpected urls %v", launcher.urls)
	}

	uc = New(log.NewNop(), Deps{Launcher: launcher, Search: fakeSearch{}}, Config{})
	out = uc.Execute(context.Background(), []Command{{Verb: intent.CategoryOpen, Arg: "nothing"}})
	if !errors.Is(out[0].Err, ErrNoWebResult) {
		t.Errorf("expected ErrNoWebResult, got %v", out[0].Err)
	}
}

func TestPlay(t *testing.T) {
	launcher := &fakeLauncher{}
	uc := New(log.NewNop(), Deps{Launcher: launcher, Videos: fakeVideos{url: "https://www.youtube.com/watch?v=abc"}}, Config{})
	uc.Execute(context.Background(), []Command{{Verb: intent.CategoryPlay, Arg: "despacito"}})

	uc = New(log.NewNop(), Deps{Launcher: launcher, Videos: fakeVideos{err: errors.New("quota")}}, Config{})
	uc.Execute(context.Background(), []Command{{Verb: intent.CategoryPlay, Arg: "despacito"}})

	want := []string{
		"https://www.youtube.com/watch?v=abc",
		"https://www.youtube.com/results?search_query=despacito",
	}
	if len(launcher.urls) != 2 || launcher.urls[0] != want[0] || launcher.urls[1] != want[1] {
		t.Errorf("unexpected urls %v", launcher.urls)
	}
}

func TestContent(t *testing.T) {
	dir := t.TempDir()
	launcher := &fakeLauncher{}
	uc := New(log.NewNop(), Deps{Launcher: launcher, Writer: fakeWriter{text: "Dear Sir,"}}, Config{DataDir: dir})

	out := uc.Execute(context.Background(), []Command{{Verb: intent.CategoryContent, Arg: "Application for Sick Leave"}})
	if !out[0].OK {
		t.Fatalf("content failed: %v", out[0].Err)
	}

	path := filepath.Join(dir, "application_for_sick_leave.txt")
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "Dear Sir," {
		t.Errorf("unexpected file content %q, %v", data, err)
	}
	if len(launcher.files) != 1 || launcher.files[0] != path {
		t.Errorf("expected editor to open %s, got %v", path, launcher.files)
	}

	uc = New(log.NewNop(), Deps{Launcher: launcher, Writer: fakeWriter{err: errors.New("llm down")}}, Config{DataDir: dir})
	if out := uc.Execute(context.Background(), []Command{{Verb: intent.CategoryContent, Arg: "poem"}}); out[0].OK {
		t.Error("expected writer failure to fail the item")
	}
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"Application for Sick Leave": "application_for_sick_leave",
		"  a/b\\c..d  ":               "a_b_c_d",
		"!!!":                        "untitled",
		"Email to Bob!":              "email_to_bob",
	}
	for in, want := range tests {
		if got := FileName(in); got != want {
			t.Errorf("FileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFromIntent(t *testing.T) {
	cmd := FromIntent(intent.Intent{Category: intent.CategoryPlay, Payload: "despacito", Raw: "play despacito"})
	if cmd.Verb != intent.CategoryPlay || cmd.Arg != "despacito" || cmd.String() != "play despacito" {
		t.Errorf("unexpected command %+v", cmd)
	}
}
