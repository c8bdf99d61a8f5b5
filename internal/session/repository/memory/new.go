package memory

import (
	"sync"

	"desktop-assistant/internal/model"
	"desktop-assistant/internal/session/repository"
)

type implRepository struct {
	mu      sync.RWMutex
	entries []model.Entry
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an in-process transcript store.
func New() *implRepository {
	return &implRepository{}
}

func (r *implRepository) Close() error {
	return nil
}
