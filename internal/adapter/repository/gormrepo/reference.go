package gormrepo

import (
	"context"
	"errors"

	refDomain "bursary-portal/internal/domain/reference"

	"gorm.io/gorm"
)

type ReferenceRepository struct{ db *gorm.DB }

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository { return &ReferenceRepository{db: db} }

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return refDomain.ErrNotFound
	}
	return err
}

func (r *ReferenceRepository) ListCounties(ctx context.Context) ([]refDomain.County, error) {
	out := []refDomain.County{}
	err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *ReferenceRepository) GetCounty(ctx context.Context, id uint64) (*refDomain.County, error) {
	var out refDomain.County
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (r *ReferenceRepository) ListConstituencies(ctx context.Context, countyID uint64) ([]refDomain.Constituency, error) {
	out := []refDomain.Constituency{}
	err := r.db.WithContext(ctx).
		Where("county_id = ?", countyID).
		Order("name ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *ReferenceRepository) GetConstituency(ctx context.Context, id uint64) (*refDomain.Constituency, error) {
	var out refDomain.Constituency
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (r *ReferenceRepository) ListLevels(ctx context.Context) ([]refDomain.LevelOfStudy, error) {
	out := []refDomain.LevelOfStudy{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *ReferenceRepository) GetLevel(ctx context.Context, id uint64) (*refDomain.LevelOfStudy, error) {
	var out refDomain.LevelOfStudy
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (r *ReferenceRepository) CreateCounty(ctx context.Context, c *refDomain.County) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ReferenceRepository) CreateConstituency(ctx context.Context, c *refDomain.Constituency) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ReferenceRepository) CreateLevel(ctx context.Context, l *refDomain.LevelOfStudy) error {
	return r.db.WithContext(ctx).Create(l).Error
}
