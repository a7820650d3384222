package application

import (
	"strings"
	"time"

	domain "bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/document"
)

// Submission is one raw form post: text inputs plus attached files, both keyed by field name.
type Submission struct {
	Fields map[string]string
	Files  map[string]document.File
}

func (s Submission) value(name string) string {
	if s.Fields == nil {
		return ""
	}
	return strings.TrimSpace(s.Fields[name])
}

func (s Submission) file(name string) (document.File, bool) {
	if s.Files == nil {
		return document.File{}, false
	}
	f, ok := s.Files[name]
	if !ok || f.Empty() {
		return document.File{}, false
	}
	return f, true
}

// Draft is a validated, normalized application that has not been stored yet.
// Uploads holds the files that survived normalization, keyed by document field.
type Draft struct {
	Application *domain.Application
	Uploads     map[string]document.File
}

type ApplicationDTO struct {
	ApplicationID   string    `json:"application_id"`
	StudentID       string    `json:"student_id"`
	FullName        string    `json:"full_name"`
	AdmissionNumber string    `json:"admission_number"`
	School          string    `json:"school"`
	CountyID        uint64    `json:"county_id"`
	ConstituencyID  uint64    `json:"constituency_id"`
	LevelOfStudyID  uint64    `json:"level_of_study_id"`
	AmountRequested float64   `json:"amount_requested"`
	FamilyStatus    string    `json:"family_status"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func toDTO(a *domain.Application) ApplicationDTO {
	return ApplicationDTO{
		ApplicationID:   a.ApplicationID,
		StudentID:       a.StudentID,
		FullName:        a.FullName,
		AdmissionNumber: a.AdmissionNumber,
		School:          a.School,
		CountyID:        a.CountyID,
		ConstituencyID:  a.ConstituencyID,
		LevelOfStudyID:  a.LevelOfStudyID,
		AmountRequested: a.AmountRequested,
		FamilyStatus:    string(a.FamilyStatus),
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
	}
}

// Fieldset tells a rendering layer which conditional fields are live.
type Fieldset struct {
	FamilyStatus     string   `json:"family_status"`
	FamilyFields     []string `json:"family_fields"`
	Disability       bool     `json:"disability"`
	DisabilityFields []string `json:"disability_fields"`
}
