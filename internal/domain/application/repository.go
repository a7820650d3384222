package application

import (
	"context"

	"bursary-portal/internal/domain/access"
)

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// ListByScope never widens the scope: ScopeNone yields an empty slice.
	ListByScope(ctx context.Context, scope access.Scope) ([]Application, error)
	// TransitionStatus is a conditional update guarded by status = from. It writes the
	// status column only and reports false when no row matched (status already moved or id unknown).
	TransitionStatus(ctx context.Context, id uint64, from, to Status) (bool, error)
}
