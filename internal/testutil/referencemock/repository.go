package referencemock

import (
	"context"

	domain "bursary-portal/internal/domain/reference"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Lookups default to context.Canceled, creates to nil.
type Repo struct {
	ListCountiesFn       func(ctx context.Context) ([]domain.County, error)
	GetCountyFn          func(ctx context.Context, id uint64) (*domain.County, error)
	ListConstituenciesFn func(ctx context.Context, countyID uint64) ([]domain.Constituency, error)
	GetConstituencyFn    func(ctx context.Context, id uint64) (*domain.Constituency, error)
	ListLevelsFn         func(ctx context.Context) ([]domain.LevelOfStudy, error)
	GetLevelFn           func(ctx context.Context, id uint64) (*domain.LevelOfStudy, error)
	CreateCountyFn       func(ctx context.Context, c *domain.County) error
	CreateConstituencyFn func(ctx context.Context, c *domain.Constituency) error
	CreateLevelFn        func(ctx context.Context, l *domain.LevelOfStudy) error
}

func (m *Repo) ListCounties(ctx context.Context) ([]domain.County, error) {
	if m.ListCountiesFn != nil {
		return m.ListCountiesFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) GetCounty(ctx context.Context, id uint64) (*domain.County, error) {
	if m.GetCountyFn != nil {
		return m.GetCountyFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListConstituencies(ctx context.Context, countyID uint64) ([]domain.Constituency, error) {
	if m.ListConstituenciesFn != nil {
		return m.ListConstituenciesFn(ctx, countyID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetConstituency(ctx context.Context, id uint64) (*domain.Constituency, error) {
	if m.GetConstituencyFn != nil {
		return m.GetConstituencyFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListLevels(ctx context.Context) ([]domain.LevelOfStudy, error) {
	if m.ListLevelsFn != nil {
		return m.ListLevelsFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) GetLevel(ctx context.Context, id uint64) (*domain.LevelOfStudy, error) {
	if m.GetLevelFn != nil {
		return m.GetLevelFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) CreateCounty(ctx context.Context, c *domain.County) error {
	if m.CreateCountyFn != nil {
		return m.CreateCountyFn(ctx, c)
	}
	return nil
}

func (m *Repo) CreateConstituency(ctx context.Context, c *domain.Constituency) error {
	if m.CreateConstituencyFn != nil {
		return m.CreateConstituencyFn(ctx, c)
	}
	return nil
}

func (m *Repo) CreateLevel(ctx context.Context, l *domain.LevelOfStudy) error {
	if m.CreateLevelFn != nil {
		return m.CreateLevelFn(ctx, l)
	}
	return nil
}

// Fixed builds a mock backed by in-memory reference data. Unknown ids return
// domain.ErrNotFound.
func Fixed(counties []domain.County, cons []domain.Constituency, levels []domain.LevelOfStudy) *Repo {
	return &Repo{
		ListCountiesFn: func(context.Context) ([]domain.County, error) { return counties, nil },
		GetCountyFn: func(_ context.Context, id uint64) (*domain.County, error) {
			for i := range counties {
				if counties[i].ID == id {
					return &counties[i], nil
				}
			}
			return nil, domain.ErrNotFound
		},
		ListConstituenciesFn: func(_ context.Context, countyID uint64) ([]domain.Constituency, error) {
			out := []domain.Constituency{}
			for _, c := range cons {
				if c.CountyID == countyID {
					out = append(out, c)
				}
			}
			return out, nil
		},
		GetConstituencyFn: func(_ context.Context, id uint64) (*domain.Constituency, error) {
			for i := range cons {
				if cons[i].ID == id {
					return &cons[i], nil
				}
			}
			return nil, domain.ErrNotFound
		},
		ListLevelsFn: func(context.Context) ([]domain.LevelOfStudy, error) { return levels, nil },
		GetLevelFn: func(_ context.Context, id uint64) (*domain.LevelOfStudy, error) {
			for i := range levels {
				if levels[i].ID == id {
					return &levels[i], nil
				}
			}
			return nil, domain.ErrNotFound
		},
	}
}
