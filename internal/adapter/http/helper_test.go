package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"strings"
	"testing"

	"bursary-portal/internal/domain/access"
	domain "bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/reference"
	"bursary-portal/internal/testutil/referencemock"

	"github.com/labstack/echo/v4"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

var (
	westlands = uint64(10)
	nyali     = uint64(20)

	student   = &access.Principal{UserID: strings.Repeat("5", 32), Role: access.RoleStudent}
	officer   = &access.Principal{UserID: strings.Repeat("0", 32), Role: access.RoleOfficer, ConstituencyID: &westlands}
	outsider  = &access.Principal{UserID: strings.Repeat("1", 32), Role: access.RoleOfficer, ConstituencyID: &nyali}
	superUser = &access.Principal{UserID: strings.Repeat("9", 32), Role: access.RoleOfficer, SuperAdmin: true}
)

func testRefs() *referencemock.Repo {
	return referencemock.Fixed(
		[]reference.County{{ID: 1, Name: "Nairobi"}, {ID: 2, Name: "Mombasa"}},
		[]reference.Constituency{{ID: westlands, Name: "Westlands", CountyID: 1}, {ID: nyali, Name: "Nyali", CountyID: 2}},
		[]reference.LevelOfStudy{{ID: 1, Name: "university"}},
	)
}

// formFields is a complete both_alive, no-disability submission.
func formFields() map[string]string {
	return map[string]string{
		domain.FieldCounty:           "1",
		domain.FieldConstituency:     "10",
		domain.FieldLevelOfStudy:     "1",
		domain.FieldFullName:         "Jane Wanjiku",
		domain.FieldAdmissionNumber:  "ADM-001",
		domain.FieldNationalID:       "12345678",
		domain.FieldDisability:       "no",
		domain.FieldSchool:           "University of Nairobi",
		domain.FieldCourse:           "BSc Computer Science",
		domain.FieldYearOfStudy:      "2",
		domain.FieldPhone:            "0712345678",
		domain.FieldAmountRequested:  "25000",
		domain.FieldPollingStation:   "Kangemi Primary",
		domain.FieldSubLocation:      "Kangemi",
		domain.FieldLocation:         "Kangemi",
		domain.FieldWard:             "Kangemi",
		domain.FieldFamilyStatus:     "both_alive",
		domain.FieldFatherName:       "John Kamau",
		domain.FieldFatherPhone:      "0711111111",
		domain.FieldFatherOccupation: "Farmer",
		domain.FieldFatherIDNumber:   "11111111",
		domain.FieldMotherName:       "Mary Njeri",
		domain.FieldMotherPhone:      "0722222222",
		domain.FieldMotherOccupation: "Nurse",
		domain.FieldMotherIDNumber:   "22222222",
		domain.FieldSiblingCount:     "3",
		domain.FieldReferee1Name:     "Chief Otieno",
		domain.FieldReferee1Phone:    "0733333333",
		domain.FieldReferee2Name:     "Pastor Mwangi",
		domain.FieldReferee2Phone:    "0744444444",
	}
}

func formFiles() map[string][]byte {
	return map[string][]byte{
		domain.FieldIDDocument: []byte("%PDF-1.4 id"),
		domain.FieldDocument:   []byte("%PDF-1.4 fees"),
	}
}

// multipartBody encodes fields and files the way a browser form would.
func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for k, data := range files {
		fw, err := w.CreateFormFile(k, k+".pdf")
		if err != nil {
			t.Fatalf("create file: %v", err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return buf, w.FormDataContentType()
}
