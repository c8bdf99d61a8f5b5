package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"desktop-assistant/internal/model"
	"desktop-assistant/internal/session"
	"desktop-assistant/internal/session/repository"
	"desktop-assistant/internal/session/repository/memory"
	"desktop-assistant/pkg/log"
)

type failingRepo struct {
	repository.Repository
}

func (failingRepo) Append(ctx context.Context, e model.Entry) error { return errors.New("disk full") }
func (failingRepo) Count(ctx context.Context) (int, error)          { return 0, nil }

func newTestUseCase() *implUseCase {
	uc := New(log.NewNop(), memory.New(), session.Names{Username: "Tony", AssistantName: "Jarvis"})
	uc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return uc
}

func TestAppend(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	e, err := uc.Append(ctx, model.RoleUser, "  hello  ")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if e.ID == "" || e.Content != "hello" || !e.Timestamp.Equal(uc.now()) {
		t.Errorf("unexpected entry %+v", e)
	}

	if _, err := uc.Append(ctx, model.RoleUser, "   "); !errors.Is(err, session.ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent, got %v", err)
	}
	if _, err := uc.Append(ctx, model.Role("system"), "x"); !errors.Is(err, session.ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}

	all, _ := uc.Transcript(ctx)
	if len(all) != 1 {
		t.Errorf("rejected entries must not be stored, got %d", len(all))
	}
}

func TestAppend_RepositoryError(t *testing.T) {
	uc := New(log.NewNop(), failingRepo{}, session.Names{})
	if _, err := uc.Append(context.Background(), model.RoleUser, "hi"); err == nil {
		t.Error("expected repository error")
	}
}

func TestRecent(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()
	for _, c := range []string{"one", "two", "three"} {
		uc.Append(ctx, model.RoleUser, c)
	}

	got, err := uc.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 || got[0].Content != "two" || got[1].Content != "three" {
		t.Errorf("unexpected recent entries %+v", got)
	}

	if none, _ := uc.Recent(ctx, 0); none != nil {
		t.Errorf("expected nil for n=0, got %+v", none)
	}
}

func TestSeedGreeting(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	if err := uc.SeedGreeting(ctx); err != nil {
		t.Fatalf("SeedGreeting: %v", err)
	}
	all, _ := uc.Transcript(ctx)
	if len(all) != 2 {
		t.Fatalf("expected greeting pair, got %d entries", len(all))
	}
	if all[0].Role != model.RoleUser || all[0].Content != "Hello Jarvis, How are you?" {
		t.Errorf("unexpected user greeting %+v", all[0])
	}
	if all[1].Role != model.RoleAssistant || all[1].Content != "Welcome Tony. I am doing well. How may I help you?" {
		t.Errorf("unexpected assistant greeting %+v", all[1])
	}

	// A non-empty transcript is left alone.
	if err := uc.SeedGreeting(ctx); err != nil {
		t.Fatalf("SeedGreeting again: %v", err)
	}
	if all, _ = uc.Transcript(ctx); len(all) != 2 {
		t.Errorf("expected no reseed, got %d entries", len(all))
	}
}

func TestStatus(t *testing.T) {
	uc := newTestUseCase()
	if uc.Status() != model.StatusAvailable {
		t.Errorf("expected initial Available, got %s", uc.Status())
	}
	uc.SetStatus(context.Background(), model.StatusSearching)
	if uc.Status() != model.StatusSearching {
		t.Errorf("expected Searching, got %s", uc.Status())
	}
}
