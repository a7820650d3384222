package reference

import "context"

type Repository interface {
	ListCounties(ctx context.Context) ([]County, error)
	GetCounty(ctx context.Context, id uint64) (*County, error)
	// Constituencies of one county, ordered by name.
	ListConstituencies(ctx context.Context, countyID uint64) ([]Constituency, error)
	GetConstituency(ctx context.Context, id uint64) (*Constituency, error)
	ListLevels(ctx context.Context) ([]LevelOfStudy, error)
	GetLevel(ctx context.Context, id uint64) (*LevelOfStudy, error)

	CreateCounty(ctx context.Context, c *County) error
	CreateConstituency(ctx context.Context, c *Constituency) error
	CreateLevel(ctx context.Context, l *LevelOfStudy) error
}
