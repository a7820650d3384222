package gormrepo

import (
	"context"
	"errors"

	"bursary-portal/internal/domain/access"
	appDomain "bursary-portal/internal/domain/application"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	err := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ApplicationRepository) ListByScope(ctx context.Context, scope access.Scope) ([]appDomain.Application, error) {
	q := r.db.WithContext(ctx).Model(&appDomain.Application{})
	switch scope.Kind {
	case access.ScopeAll:
	case access.ScopeConstituency:
		q = q.Where("constituency_id = ?", scope.ConstituencyID)
	case access.ScopeStudent:
		q = q.Where("student_id = ?", scope.StudentID)
	default:
		return []appDomain.Application{}, nil
	}
	out := []appDomain.Application{}
	if err := q.Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// TransitionStatus uses UpdateColumn so updated_at and hooks are left alone.
func (r *ApplicationRepository) TransitionStatus(ctx context.Context, id uint64, from, to appDomain.Status) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&appDomain.Application{}).
		Where("id = ? AND status = ?", id, from).
		UpdateColumn("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
