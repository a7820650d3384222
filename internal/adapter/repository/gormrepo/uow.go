package gormrepo

import (
	"context"

	"bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Applications: &ApplicationRepository{db: tx},
		References:   &ReferenceRepository{db: tx},
		Accounts:     &AccountRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinApplicationTx(ctx context.Context, applicationID string, fn func(r uow.Repos, a *application.Application) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		a, err := r.Applications.GetByApplicationID(ctx, applicationID)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}
