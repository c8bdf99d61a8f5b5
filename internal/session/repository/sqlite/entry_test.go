package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"desktop-assistant/internal/model"
	"desktop-assistant/internal/session/repository"
)

func entry(i int, role model.Role) model.Entry {
	return model.Entry{
		ID:        fmt.Sprintf("id-%d", i),
		Role:      role,
		Content:   fmt.Sprintf("message %d", i),
		Timestamp: time.Unix(1700000000+int64(i), 0),
	}
}

func TestRepository_AppendList(t *testing.T) {
	ctx := context.Background()
	r, err := New(":memory:")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	for i := 0; i < 5; i++ {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleAssistant
		}
		if err := r.Append(ctx, entry(i, role)); err != nil {
			t.Fatalf("Append(%d): %v", i, err)
		}
	}

	all, err := r.List(ctx, repository.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(all))
	}
	for i, e := range all {
		if e.ID != fmt.Sprintf("id-%d", i) {
			t.Errorf("entry %d out of order: %s", i, e.ID)
		}
	}
	if all[1].Role != model.RoleAssistant || !all[1].Timestamp.Equal(time.Unix(1700000001, 0)) {
		t.Errorf("unexpected entry %+v", all[1])
	}

	last, err := r.List(ctx, repository.ListOptions{Last: 2})
	if err != nil {
		t.Fatalf("List last: %v", err)
	}
	if len(last) != 2 || last[0].ID != "id-3" || last[1].ID != "id-4" {
		t.Errorf("unexpected last entries %+v", last)
	}

	n, err := r.Count(ctx)
	if err != nil || n != 5 {
		t.Errorf("Count() = %d, %v", n, err)
	}
}

func TestRepository_DuplicateID(t *testing.T) {
	ctx := context.Background()
	r, err := New(":memory:")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	if err := r.Append(ctx, entry(1, model.RoleUser)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := r.Append(ctx, entry(1, model.RoleUser)); err == nil {
		t.Error("expected duplicate id to fail")
	}
}

func TestRepository_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "assistant.db")

	r, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.Append(ctx, entry(7, model.RoleUser)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	r.Close()

	r2, err := New(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer r2.Close()

	all, err := r2.List(ctx, repository.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 || all[0].Content != "message 7" {
		t.Errorf("expected persisted entry, got %+v", all)
	}
}
