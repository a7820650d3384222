package accountmock

import (
	"context"

	domain "bursary-portal/internal/domain/account"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, a *domain.Account) error
	GetByUsernameFn func(ctx context.Context, username string) (*domain.Account, error)
	GetByUserIDFn   func(ctx context.Context, userID string) (*domain.Account, error)
	GetBindingFn    func(ctx context.Context, userID string) (*domain.ReviewerBinding, error)
	BindFn          func(ctx context.Context, b *domain.ReviewerBinding) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.Account, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetBinding(ctx context.Context, userID string) (*domain.ReviewerBinding, error) {
	if m.GetBindingFn != nil {
		return m.GetBindingFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) Bind(ctx context.Context, b *domain.ReviewerBinding) error {
	if m.BindFn != nil {
		return m.BindFn(ctx, b)
	}
	return nil
}
