package memory

import (
	"context"

	"desktop-assistant/internal/model"
	"desktop-assistant/internal/session/repository"
)

func (r *implRepository) Append(ctx context.Context, entry model.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if opt.Last > 0 && opt.Last < len(r.entries) {
		start = len(r.entries) - opt.Last
	}
	out := make([]model.Entry, len(r.entries)-start)
	copy(out, r.entries[start:])
	return out, nil
}

func (r *implRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries), nil
}
