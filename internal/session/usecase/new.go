package usecase

import (
	"sync"
	"time"

	"desktop-assistant/internal/model"
	"desktop-assistant/internal/session"
	"desktop-assistant/internal/session/repository"
	pkgLog "desktop-assistant/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	names session.Names
	now   func() time.Time

	mu     sync.RWMutex
	status model.Status
}

var _ session.UseCase = (*implUseCase)(nil)

// New creates a session UseCase backed by repo. Status starts as Available.
func New(l pkgLog.Logger, repo repository.Repository, names session.Names) *implUseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		names:  names,
		now:    time.Now,
		status: model.StatusAvailable,
	}
}
