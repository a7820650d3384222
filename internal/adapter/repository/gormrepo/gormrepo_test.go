package gormrepo

import (
	"context"
	"testing"

	"bursary-portal/internal/domain/reference"
	"bursary-portal/internal/testutil/dbtest"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	nairobi   reference.County
	mombasa   reference.County
	westlands reference.Constituency
	kibra     reference.Constituency
	nyali     reference.Constituency
	level     reference.LevelOfStudy
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t)
	require.NoError(t, Migrate(db))

	ctx := context.Background()
	refs := NewReferenceRepository(db)
	f := &fixture{db: db}
	f.nairobi = reference.County{Name: "Nairobi"}
	f.mombasa = reference.County{Name: "Mombasa"}
	require.NoError(t, refs.CreateCounty(ctx, &f.nairobi))
	require.NoError(t, refs.CreateCounty(ctx, &f.mombasa))
	f.westlands = reference.Constituency{Name: "Westlands", CountyID: f.nairobi.ID}
	f.kibra = reference.Constituency{Name: "Kibra", CountyID: f.nairobi.ID}
	f.nyali = reference.Constituency{Name: "Nyali", CountyID: f.mombasa.ID}
	require.NoError(t, refs.CreateConstituency(ctx, &f.westlands))
	require.NoError(t, refs.CreateConstituency(ctx, &f.kibra))
	require.NoError(t, refs.CreateConstituency(ctx, &f.nyali))
	f.level = reference.LevelOfStudy{Name: "university"}
	require.NoError(t, refs.CreateLevel(ctx, &f.level))
	return f
}
