package uowmock

import (
	"context"
	"errors"

	"bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn            func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinApplicationTxFn func(ctx context.Context, applicationID string, fn func(r uow.Repos, a *application.Application) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinApplicationTx(fn func(context.Context, string, func(uow.Repos, *application.Application) error) error) *UoW {
	m.WithinApplicationTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Passthrough runs every callback against repos, loading applications through
// repos.Applications.GetByApplicationID.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error { return fn(repos) },
		WithinApplicationTxFn: func(ctx context.Context, id string, fn func(uow.Repos, *application.Application) error) error {
			a, err := repos.Applications.GetByApplicationID(ctx, id)
			if err != nil {
				return err
			}
			return fn(repos, a)
		},
	}
}

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinApplicationTx(ctx context.Context, applicationID string, fn func(r uow.Repos, a *application.Application) error) error {
	if m.WithinApplicationTxFn != nil {
		return m.WithinApplicationTxFn(ctx, applicationID, fn)
	}
	return errUnimplemented
}
