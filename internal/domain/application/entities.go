package application

import (
	"time"

	"bursary-portal/internal/domain/access"
)

// Table: applications
type Application struct {
	ID            uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ApplicationID string `gorm:"column:application_id;size:32;not null;uniqueIndex" json:"application_id"`
	// Public user id of the owning student. One student may own several rows.
	StudentID string `gorm:"column:student_id;size:32;not null;index" json:"student_id"`

	FullName        string `gorm:"column:full_name;size:100;not null" json:"full_name"`
	AdmissionNumber string `gorm:"column:admission_number;size:50;not null" json:"admission_number"`
	NationalID      string `gorm:"column:national_id_number;size:20" json:"national_id_number,omitempty"`
	BirthCertNumber string `gorm:"column:birth_certificate_number;size:20" json:"birth_certificate_number,omitempty"`

	CountyID       uint64 `gorm:"column:county_id;not null;index" json:"county_id"`
	ConstituencyID uint64 `gorm:"column:constituency_id;not null;index" json:"constituency_id"`
	LevelOfStudyID uint64 `gorm:"column:level_of_study_id;not null" json:"level_of_study_id"`

	School          string  `gorm:"column:school;size:100" json:"school"`
	Course          string  `gorm:"column:course;size:100" json:"course"`
	YearOfStudy     int     `gorm:"column:year_of_study" json:"year_of_study"`
	Phone           string  `gorm:"column:phone;size:15" json:"phone"`
	AmountRequested float64 `gorm:"column:amount_requested;type:decimal(12,2)" json:"amount_requested"`
	AnnualFee       float64 `gorm:"column:annual_fee;type:decimal(12,2)" json:"annual_fee"`

	PollingStation string `gorm:"column:polling_station;size:100" json:"polling_station"`
	SubLocation    string `gorm:"column:sub_location;size:100" json:"sub_location"`
	Location       string `gorm:"column:location;size:100" json:"location"`
	Ward           string `gorm:"column:ward;size:100" json:"ward"`

	HasDisability  bool   `gorm:"column:has_disability" json:"has_disability"`
	DisabilityType string `gorm:"column:disability_type;size:100" json:"disability_type,omitempty"`

	FamilyStatus          FamilyStatus `gorm:"column:family_status;size:20;not null" json:"family_status"`
	FatherName            string       `gorm:"column:father_name;size:100" json:"father_name,omitempty"`
	FatherPhone           string       `gorm:"column:father_phone;size:15" json:"father_phone,omitempty"`
	FatherOccupation      string       `gorm:"column:father_occupation;size:100" json:"father_occupation,omitempty"`
	FatherIDNumber        string       `gorm:"column:father_id_number;size:20" json:"father_id_number,omitempty"`
	MotherName            string       `gorm:"column:mother_name;size:100" json:"mother_name,omitempty"`
	MotherPhone           string       `gorm:"column:mother_phone;size:15" json:"mother_phone,omitempty"`
	MotherOccupation      string       `gorm:"column:mother_occupation;size:100" json:"mother_occupation,omitempty"`
	MotherIDNumber        string       `gorm:"column:mother_id_number;size:20" json:"mother_id_number,omitempty"`
	FatherDeathCertNumber string       `gorm:"column:father_death_cert_number;size:50" json:"father_death_cert_number,omitempty"`
	MotherDeathCertNumber string       `gorm:"column:mother_death_cert_number;size:50" json:"mother_death_cert_number,omitempty"`
	GuardianName          string       `gorm:"column:guardian_name;size:100" json:"guardian_name,omitempty"`
	GuardianPhone         string       `gorm:"column:guardian_phone;size:15" json:"guardian_phone,omitempty"`
	GuardianOccupation    string       `gorm:"column:guardian_occupation;size:100" json:"guardian_occupation,omitempty"`

	// Sibling tables are kept as newline-delimited "name:amount" text, not rows.
	SiblingCount       int    `gorm:"column:sibling_count" json:"sibling_count"`
	SiblingsHighSchool string `gorm:"column:siblings_high_school;type:text" json:"siblings_high_school,omitempty"`
	SiblingsCollege    string `gorm:"column:siblings_college;type:text" json:"siblings_college,omitempty"`
	SiblingsUniversity string `gorm:"column:siblings_university;type:text" json:"siblings_university,omitempty"`

	Referee1Name  string `gorm:"column:referee1_name;size:100;not null" json:"referee1_name"`
	Referee1Phone string `gorm:"column:referee1_phone;size:15;not null" json:"referee1_phone"`
	Referee2Name  string `gorm:"column:referee2_name;size:100;not null" json:"referee2_name"`
	Referee2Phone string `gorm:"column:referee2_phone;size:15;not null" json:"referee2_phone"`

	// Blob store references, never raw bytes.
	IDDocument             string `gorm:"column:id_document;type:text" json:"id_document,omitempty"`
	MainDocument           string `gorm:"column:document;type:text" json:"document,omitempty"`
	TranscriptDocument     string `gorm:"column:transcript;type:text" json:"transcript,omitempty"`
	DisabilityDocument     string `gorm:"column:disability_document;type:text" json:"disability_document,omitempty"`
	FatherDeathCertificate string `gorm:"column:father_death_certificate;type:text" json:"father_death_certificate,omitempty"`
	MotherDeathCertificate string `gorm:"column:mother_death_certificate;type:text" json:"mother_death_certificate,omitempty"`

	// Status is the only column a review writes.
	Status    Status    `gorm:"column:status;size:16;not null;default:pending;index" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;<-:create" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }

// VisibleTo applies the access scope to this record.
func (a *Application) VisibleTo(s access.Scope) bool {
	return s.Permits(a.ConstituencyID, a.StudentID)
}

// TextField returns a pointer to the string column backing a text form field, or nil.
func (a *Application) TextField(name string) *string {
	switch name {
	case FieldFullName:
		return &a.FullName
	case FieldAdmissionNumber:
		return &a.AdmissionNumber
	case FieldNationalID:
		return &a.NationalID
	case FieldBirthCertNumber:
		return &a.BirthCertNumber
	case FieldDisabilityType:
		return &a.DisabilityType
	case FieldSchool:
		return &a.School
	case FieldCourse:
		return &a.Course
	case FieldPhone:
		return &a.Phone
	case FieldPollingStation:
		return &a.PollingStation
	case FieldSubLocation:
		return &a.SubLocation
	case FieldLocation:
		return &a.Location
	case FieldWard:
		return &a.Ward
	case FieldFatherName:
		return &a.FatherName
	case FieldFatherPhone:
		return &a.FatherPhone
	case FieldFatherOccupation:
		return &a.FatherOccupation
	case FieldFatherIDNumber:
		return &a.FatherIDNumber
	case FieldMotherName:
		return &a.MotherName
	case FieldMotherPhone:
		return &a.MotherPhone
	case FieldMotherOccupation:
		return &a.MotherOccupation
	case FieldMotherIDNumber:
		return &a.MotherIDNumber
	case FieldFatherDeathCertNumber:
		return &a.FatherDeathCertNumber
	case FieldMotherDeathCertNumber:
		return &a.MotherDeathCertNumber
	case FieldGuardianName:
		return &a.GuardianName
	case FieldGuardianPhone:
		return &a.GuardianPhone
	case FieldGuardianOccupation:
		return &a.GuardianOccupation
	case FieldSiblingsHighSchool:
		return &a.SiblingsHighSchool
	case FieldSiblingsCollege:
		return &a.SiblingsCollege
	case FieldSiblingsUniversity:
		return &a.SiblingsUniversity
	case FieldReferee1Name:
		return &a.Referee1Name
	case FieldReferee1Phone:
		return &a.Referee1Phone
	case FieldReferee2Name:
		return &a.Referee2Name
	case FieldReferee2Phone:
		return &a.Referee2Phone
	}
	return nil
}

// DocumentRef returns a pointer to the column holding the stored reference for a document field.
func (a *Application) DocumentRef(name string) *string {
	switch name {
	case FieldIDDocument:
		return &a.IDDocument
	case FieldDocument:
		return &a.MainDocument
	case FieldTranscript:
		return &a.TranscriptDocument
	case FieldDisabilityDocument:
		return &a.DisabilityDocument
	case FieldFatherDeathCertificate:
		return &a.FatherDeathCertificate
	case FieldMotherDeathCertificate:
		return &a.MotherDeathCertificate
	}
	return nil
}

// ClearField blanks a text or document field.
func (a *Application) ClearField(name string) {
	if p := a.TextField(name); p != nil {
		*p = ""
	}
	if p := a.DocumentRef(name); p != nil {
		*p = ""
	}
}
