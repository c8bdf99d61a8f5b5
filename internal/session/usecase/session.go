package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"desktop-assistant/internal/model"
	"desktop-assistant/internal/session"
	"desktop-assistant/internal/session/repository"
)

func (uc *implUseCase) Append(ctx context.Context, role model.Role, content string) (model.Entry, error) {
	if !role.Valid() {
		return model.Entry{}, fmt.Errorf("%w: %q", session.ErrInvalidRole, role)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return model.Entry{}, session.ErrEmptyContent
	}

	entry := model.Entry{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: uc.now(),
	}
	if err := uc.repo.Append(ctx, entry); err != nil {
		uc.l.Errorf(ctx, "%s: failed to store %s entry: %v", session.LogPrefixAppend, role, err)
		return model.Entry{}, err
	}
	return entry, nil
}

func (uc *implUseCase) Transcript(ctx context.Context) ([]model.Entry, error) {
	return uc.repo.List(ctx, repository.ListOptions{})
}

func (uc *implUseCase) Recent(ctx context.Context, n int) ([]model.Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	return uc.repo.List(ctx, repository.ListOptions{Last: n})
}

func (uc *implUseCase) SeedGreeting(ctx context.Context) error {
	n, err := uc.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	if _, err := uc.Append(ctx, model.RoleUser, fmt.Sprintf(session.GreetingUser, uc.names.AssistantName)); err != nil {
		return err
	}
	if _, err := uc.Append(ctx, model.RoleAssistant, fmt.Sprintf(session.GreetingAssistant, uc.names.Username)); err != nil {
		return err
	}
	uc.l.Debugf(ctx, "%s: seeded empty transcript", session.LogPrefixSeed)
	return nil
}

func (uc *implUseCase) SetStatus(ctx context.Context, status model.Status) {
	uc.mu.Lock()
	prev := uc.status
	uc.status = status
	uc.mu.Unlock()

	if prev != status {
		uc.l.Debugf(ctx, "%s: %s -> %s", session.LogPrefixSetStatus, prev, status)
	}
}

func (uc *implUseCase) Status() model.Status {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.status
}
