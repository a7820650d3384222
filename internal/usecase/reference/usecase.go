package reference

import (
	"context"
	"strconv"
	"strings"

	domain "bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/reference"
)

type Option struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type ConstituencyOption struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	CountyID uint64 `json:"county_id"`
}

// Usecase serves the lookup lists behind the cascading selectors.
type Usecase struct {
	refs reference.Repository
}

func NewUsecase(refs reference.Repository) *Usecase { return &Usecase{refs: refs} }

func (u *Usecase) ListCounties(ctx context.Context) ([]Option, error) {
	counties, err := u.refs.ListCounties(ctx)
	if err != nil {
		return nil, domain.Upstream("list counties", err)
	}
	out := make([]Option, 0, len(counties))
	for _, c := range counties {
		out = append(out, Option{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// ListConstituencies resolves the dependent selector. A blank, malformed or unknown county
// yields an empty list rather than an error.
func (u *Usecase) ListConstituencies(ctx context.Context, countyID string) ([]ConstituencyOption, error) {
	out := []ConstituencyOption{}
	id, err := strconv.ParseUint(strings.TrimSpace(countyID), 10, 64)
	if err != nil || id == 0 {
		return out, nil
	}
	cons, err := u.refs.ListConstituencies(ctx, id)
	if err != nil {
		return nil, domain.Upstream("list constituencies", err)
	}
	for _, c := range cons {
		out = append(out, ConstituencyOption{ID: c.ID, Name: c.Name, CountyID: c.CountyID})
	}
	return out, nil
}

func (u *Usecase) ListLevels(ctx context.Context) ([]Option, error) {
	levels, err := u.refs.ListLevels(ctx)
	if err != nil {
		return nil, domain.Upstream("list levels of study", err)
	}
	out := make([]Option, 0, len(levels))
	for _, l := range levels {
		out = append(out, Option{ID: l.ID, Name: l.Name})
	}
	return out, nil
}
