package sqlite

import (
	"context"
	"fmt"
	"time"

	"desktop-assistant/internal/model"
	"desktop-assistant/internal/session/repository"
)

func (r *implRepository) Append(ctx context.Context, entry model.Entry) error {
	const query = `INSERT INTO transcript (id, role, content, created_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		entry.ID, string(entry.Role), entry.Content, entry.Timestamp.UnixNano(),
	); err != nil {
		return fmt.Errorf("insert transcript entry: %w", err)
	}
	return nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Entry, error) {
	query := `SELECT id, role, content, created_at FROM transcript ORDER BY seq ASC`
	args := []any{}
	if opt.Last > 0 {
		query = `SELECT id, role, content, created_at FROM (
			SELECT seq, id, role, content, created_at FROM transcript ORDER BY seq DESC LIMIT ?
		) ORDER BY seq ASC`
		args = append(args, opt.Last)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		var (
			e    model.Entry
			role string
			ts   int64
		)
		if err := rows.Scan(&e.ID, &role, &e.Content, &ts); err != nil {
			return nil, fmt.Errorf("scan transcript row: %w", err)
		}
		e.Role = model.Role(role)
		e.Timestamp = time.Unix(0, ts)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transcript rows: %w", err)
	}
	return entries, nil
}

func (r *implRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transcript`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transcript: %w", err)
	}
	return n, nil
}
