package gormrepo

import (
	"context"
	"errors"

	"bursary-portal/internal/domain/account"
	"bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/reference"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&reference.County{},
		&reference.Constituency{},
		&reference.LevelOfStudy{},
		&account.Account{},
		&account.ReviewerBinding{},
		&application.Application{},
	)
}

// SeedCounties inserts counties and their constituencies if they are missing.
// Existing rows are left alone so seeding can be repeated.
func SeedCounties(ctx context.Context, db *gorm.DB, data map[string][]string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for countyName, constituencies := range data {
			county := reference.County{Name: countyName}
			if err := tx.Where(reference.County{Name: countyName}).FirstOrCreate(&county).Error; err != nil {
				return err
			}
			for _, name := range constituencies {
				c := reference.Constituency{Name: name, CountyID: county.ID}
				if err := tx.Where(reference.Constituency{Name: name, CountyID: county.ID}).FirstOrCreate(&c).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// SeedLevels inserts the default levels of study.
func SeedLevels(ctx context.Context, db *gorm.DB) error {
	for _, name := range reference.DefaultLevels {
		l := reference.LevelOfStudy{Name: name}
		err := db.WithContext(ctx).Where(reference.LevelOfStudy{Name: name}).FirstOrCreate(&l).Error
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return nil
}
