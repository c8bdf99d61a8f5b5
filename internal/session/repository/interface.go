package repository

import (
	"context"

	"desktop-assistant/internal/model"
)

// Repository persists transcript entries. Entries are never updated once stored.
type Repository interface {
	Append(ctx context.Context, entry model.Entry) error
	List(ctx context.Context, opt ListOptions) ([]model.Entry, error)
	Count(ctx context.Context) (int, error)
	Close() error
}
