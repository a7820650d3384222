// Package dbtest opens throwaway sqlite databases for repository and workflow tests.
package dbtest

import (
	"fmt"
	"testing"

	"bursary-portal/internal/domain/application"
	"bursary-portal/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a private in-memory database. A single connection is kept so that
// concurrent transactions queue instead of failing with SQLITE_BUSY.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", id.NewID32())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// NewApplication returns a complete pending application for a both-parents-alive student.
func NewApplication(studentID string, countyID, constituencyID, levelID uint64) *application.Application {
	return &application.Application{
		ApplicationID:   id.NewID32(),
		StudentID:       studentID,
		FullName:        "Jane Wanjiku",
		AdmissionNumber: "ADM-001",
		NationalID:      "12345678",
		CountyID:        countyID,
		ConstituencyID:  constituencyID,
		LevelOfStudyID:  levelID,
		School:          "University of Nairobi",
		Course:          "BSc Computer Science",
		YearOfStudy:     2,
		Phone:           "0712345678",
		AmountRequested: 25000,
		PollingStation:  "Kangemi Primary",
		SubLocation:     "Kangemi",
		Location:        "Kangemi",
		Ward:            "Kangemi",
		FamilyStatus:    application.FamilyBothAlive,
		FatherName:      "John Kamau",
		FatherPhone:     "0711111111",
		MotherName:      "Mary Njeri",
		MotherPhone:     "0722222222",
		Referee1Name:    "Chief Otieno",
		Referee1Phone:   "0733333333",
		Referee2Name:    "Pastor Mwangi",
		Referee2Phone:   "0744444444",
		IDDocument:      "mem://id",
		MainDocument:    "mem://doc",
		Status:          application.StatusPending,
	}
}
