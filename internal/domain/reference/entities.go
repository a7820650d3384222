package reference

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("reference record not found")
)

// Table: counties
type County struct {
	ID   uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;size:100;not null;uniqueIndex" json:"name"`

	Constituencies []Constituency `gorm:"foreignKey:CountyID" json:"-"`
}

func (County) TableName() string { return "counties" }

// Table: constituencies. A constituency belongs to exactly one county.
type Constituency struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"column:name;size:100;not null;uniqueIndex:ux_constituencies_county_name" json:"name"`
	CountyID uint64 `gorm:"column:county_id;not null;index;uniqueIndex:ux_constituencies_county_name" json:"county_id"`
}

func (Constituency) TableName() string { return "constituencies" }

// Table: levels_of_study
type LevelOfStudy struct {
	ID   uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;size:50;not null;uniqueIndex" json:"name"`
}

func (LevelOfStudy) TableName() string { return "levels_of_study" }

// DefaultLevels is the education tier lookup seeded on a fresh database.
var DefaultLevels = []string{"university", "college", "kmtc", "high-school"}

// IsNotFound folds the ORM's missing-row error into the domain one.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
