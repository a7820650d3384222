package uow

import (
	"context"

	"bursary-portal/internal/domain/account"
	"bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/reference"
)

// Repos are bound to one transaction.
type Repos struct {
	Applications application.Repository
	References   reference.Repository
	Accounts     account.Repository
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinApplicationTx loads the application first and passes it in.
	// A missing row surfaces as application.ErrNotFound without calling fn.
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.Application) error) error
}
