package referencemock

import (
	"context"
	"errors"
	"testing"

	domain "bursary-portal/internal/domain/reference"
)

func TestFixed_Lookups(t *testing.T) {
	ctx := context.Background()
	m := Fixed(
		[]domain.County{{ID: 1, Name: "Nairobi"}, {ID: 2, Name: "Mombasa"}},
		[]domain.Constituency{{ID: 10, Name: "Westlands", CountyID: 1}, {ID: 20, Name: "Nyali", CountyID: 2}},
		[]domain.LevelOfStudy{{ID: 1, Name: "university"}},
	)

	c, err := m.GetConstituency(ctx, 20)
	if err != nil || c.CountyID != 2 {
		t.Fatalf("GetConstituency: got (%+v, %v)", c, err)
	}
	if _, err := m.GetCounty(ctx, 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetCounty unknown: want ErrNotFound, got %v", err)
	}
	got, err := m.ListConstituencies(ctx, 1)
	if err != nil || len(got) != 1 || got[0].Name != "Westlands" {
		t.Fatalf("ListConstituencies: got (%+v, %v)", got, err)
	}
	if got, _ := m.ListConstituencies(ctx, 3); got == nil || len(got) != 0 {
		t.Fatalf("ListConstituencies unknown county: want empty non-nil, got %#v", got)
	}
}

func TestRepo_Defaults(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}
	if _, err := m.ListCounties(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("ListCounties default: got %v", err)
	}
	if _, err := m.GetLevel(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("GetLevel default: got %v", err)
	}
	if err := m.CreateCounty(ctx, &domain.County{}); err != nil {
		t.Fatalf("CreateCounty default: want nil, got %v", err)
	}
}
