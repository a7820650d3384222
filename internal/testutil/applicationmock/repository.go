package applicationmock

import (
	"context"

	"bursary-portal/internal/domain/access"
	domain "bursary-portal/internal/domain/application"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, a *domain.Application) error
	GetByApplicationIDFn func(ctx context.Context, applicationID string) (*domain.Application, error)
	ListByScopeFn        func(ctx context.Context, scope access.Scope) ([]domain.Application, error)
	TransitionStatusFn   func(ctx context.Context, id uint64, from, to domain.Status) (bool, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByScope(ctx context.Context, scope access.Scope) ([]domain.Application, error) {
	if m.ListByScopeFn != nil {
		return m.ListByScopeFn(ctx, scope)
	}
	return nil, context.Canceled
}

func (m *Repo) TransitionStatus(ctx context.Context, id uint64, from, to domain.Status) (bool, error) {
	if m.TransitionStatusFn != nil {
		return m.TransitionStatusFn(ctx, id, from, to)
	}
	return false, context.Canceled
}
