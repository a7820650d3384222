package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bursary-portal/internal/adapter/middleware"
	"bursary-portal/internal/domain/access"
	domain "bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/document"
	"bursary-portal/internal/domain/uow"
	"bursary-portal/internal/testutil/applicationmock"
	"bursary-portal/internal/testutil/blobmock"
	"bursary-portal/internal/testutil/uowmock"
	uc "bursary-portal/internal/usecase/application"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const storedID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func newApplicationHandler(apps *applicationmock.Repo, blobs *blobmock.Store, maxUpload int64) *ApplicationHandler {
	refs := testRefs()
	tx := uowmock.Passthrough(uow.Repos{Applications: apps, References: refs})
	return NewApplicationHandler(uc.NewUsecase(refs, apps, blobs, tx, nil, zap.NewNop()), maxUpload, zap.NewNop())
}

func storedApplication() *domain.Application {
	return &domain.Application{
		ID:             7,
		ApplicationID:  storedID,
		StudentID:      student.UserID,
		FullName:       "Jane Wanjiku",
		CountyID:       1,
		ConstituencyID: westlands,
		FamilyStatus:   domain.FamilyBothAlive,
		Status:         domain.StatusPending,
		CreatedAt:      time.Now().UTC(),
	}
}

func submit(t *testing.T, h *ApplicationHandler, p *access.Principal, fields map[string]string, files map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()
	body, ct := multipartBody(t, fields, files)
	req := httptest.NewRequest(stdhttp.MethodPost, "/applications", body)
	req.Header.Set(echo.HeaderContentType, ct)
	rec := httptest.NewRecorder()
	c := newEchoWithValidator().NewContext(req, rec)
	if p != nil {
		middleware.SetPrincipal(c, p)
	}
	require.NoError(t, h.Submit(c))
	return rec
}

func TestSubmit_Created(t *testing.T) {
	var created *domain.Application
	apps := &applicationmock.Repo{CreateFn: func(_ context.Context, a *domain.Application) error {
		created = a
		return nil
	}}
	blobs := &blobmock.Store{}
	h := newApplicationHandler(apps, blobs, 0)

	rec := submit(t, h, student, formFields(), formFiles())
	require.Equal(t, stdhttp.StatusCreated, rec.Code, rec.Body.String())

	var dto uc.ApplicationDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "pending", dto.Status)
	assert.Equal(t, student.UserID, dto.StudentID)
	require.NotNil(t, created)
	assert.Equal(t, 25000.0, created.AmountRequested)
	assert.NotEmpty(t, created.IDDocument)
	assert.NotEmpty(t, created.MainDocument)
	assert.Len(t, blobs.Blobs, 2)
}

func TestSubmit_FieldErrors(t *testing.T) {
	apps := &applicationmock.Repo{CreateFn: func(context.Context, *domain.Application) error {
		t.Fatalf("invalid submission must not be stored")
		return nil
	}}
	h := newApplicationHandler(apps, &blobmock.Store{}, 0)

	fields := formFields()
	delete(fields, domain.FieldMotherName)
	fields[domain.FieldConstituency] = "20" // Nyali is in Mombasa
	files := formFiles()
	delete(files, domain.FieldIDDocument)

	rec := submit(t, h, student, fields, files)
	require.Equal(t, stdhttp.StatusUnprocessableEntity, rec.Code)

	var er ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &er))
	assert.True(t, containsFieldMsg(er.Details, domain.FieldMotherName, "is required"), "%+v", er.Details)
	assert.True(t, containsFieldMsg(er.Details, domain.FieldIDDocument, "is required"), "%+v", er.Details)
	assert.True(t, containsFieldMsg(er.Details, domain.FieldConstituency, "selected county"), "%+v", er.Details)
}

func TestSubmit_Principals(t *testing.T) {
	h := newApplicationHandler(&applicationmock.Repo{}, &blobmock.Store{}, 0)

	assert.Equal(t, stdhttp.StatusUnauthorized, submit(t, h, nil, formFields(), formFiles()).Code)
	assert.Equal(t, stdhttp.StatusForbidden, submit(t, h, officer, formFields(), formFiles()).Code)
}

func TestSubmit_RejectsBadBodies(t *testing.T) {
	h := newApplicationHandler(&applicationmock.Repo{}, &blobmock.Store{}, 1024)

	// over the cap
	files := formFiles()
	files[domain.FieldDocument] = bytes.Repeat([]byte("x"), 4096)
	rec := submit(t, h, student, formFields(), files)
	assert.Equal(t, stdhttp.StatusRequestEntityTooLarge, rec.Code)

	// not multipart
	req := httptest.NewRequest(stdhttp.MethodPost, "/applications", mustJSON(formFields()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	c := newEchoWithValidator().NewContext(req, rec)
	middleware.SetPrincipal(c, student)
	require.NoError(t, h.Submit(c))
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
}

func TestSubmit_BlobStoreDown(t *testing.T) {
	apps := &applicationmock.Repo{CreateFn: func(context.Context, *domain.Application) error {
		t.Fatalf("nothing may be stored when uploads fail")
		return nil
	}}
	blobs := &blobmock.Store{PutFn: func(context.Context, string, document.File) (string, error) {
		return "", document.ErrStoreUnavailable
	}}
	rec := submit(t, newApplicationHandler(apps, blobs, 0), student, formFields(), formFiles())
	assert.Equal(t, stdhttp.StatusServiceUnavailable, rec.Code)
}

func TestList_ScopedByPrincipal(t *testing.T) {
	var seen []access.Scope
	apps := &applicationmock.Repo{ListByScopeFn: func(_ context.Context, s access.Scope) ([]domain.Application, error) {
		seen = append(seen, s)
		if s.Kind == access.ScopeNone {
			return nil, nil
		}
		return []domain.Application{*storedApplication()}, nil
	}}
	h := newApplicationHandler(apps, &blobmock.Store{}, 0)

	for _, p := range []*access.Principal{student, officer, superUser, nil} {
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(stdhttp.MethodGet, "/applications", nil), rec)
		if p != nil {
			middleware.SetPrincipal(c, p)
		}
		require.NoError(t, h.List(c))
		require.Equal(t, stdhttp.StatusOK, rec.Code)
	}

	require.Len(t, seen, 4)
	assert.Equal(t, access.Scope{Kind: access.ScopeStudent, StudentID: student.UserID}, seen[0])
	assert.Equal(t, access.Scope{Kind: access.ScopeConstituency, ConstituencyID: westlands}, seen[1])
	assert.Equal(t, access.ScopeAll, seen[2].Kind)
	assert.Equal(t, access.ScopeNone, seen[3].Kind)
}

func TestGet_Visibility(t *testing.T) {
	apps := &applicationmock.Repo{GetByApplicationIDFn: func(_ context.Context, id string) (*domain.Application, error) {
		if id == storedID {
			return storedApplication(), nil
		}
		return nil, domain.ErrNotFound
	}}
	h := newApplicationHandler(apps, &blobmock.Store{}, 0)

	tests := []struct {
		name string
		p    *access.Principal
		id   string
		want int
	}{
		{"owner", student, storedID, stdhttp.StatusOK},
		{"bound officer", officer, storedID, stdhttp.StatusOK},
		{"super admin", superUser, storedID, stdhttp.StatusOK},
		{"other constituency", outsider, storedID, stdhttp.StatusForbidden},
		{"other student", &access.Principal{UserID: strings.Repeat("6", 32), Role: access.RoleStudent}, storedID, stdhttp.StatusForbidden},
		{"unknown id", superUser, strings.Repeat("b", 32), stdhttp.StatusNotFound},
		{"unknown id to student", student, strings.Repeat("b", 32), stdhttp.StatusForbidden},
		{"unknown id to officer", officer, strings.Repeat("b", 32), stdhttp.StatusForbidden},
		{"malformed id", superUser, "not-an-id", stdhttp.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := newEchoWithValidator().NewContext(httptest.NewRequest(stdhttp.MethodGet, "/applications/"+tc.id, nil), rec)
			c.SetParamNames("application_id")
			c.SetParamValues(tc.id)
			middleware.SetPrincipal(c, tc.p)
			require.NoError(t, h.Get(c))
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}

func TestFieldset(t *testing.T) {
	h := newApplicationHandler(&applicationmock.Repo{}, &blobmock.Store{}, 0)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodGet, "/fieldsets?family_status=orphan&disability=yes", nil)
	require.NoError(t, h.Fieldset(echo.New().NewContext(req, rec)))
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	var fs uc.Fieldset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fs))
	assert.Equal(t, "orphan", fs.FamilyStatus)
	assert.Contains(t, fs.FamilyFields, domain.FieldGuardianName)
	assert.Contains(t, fs.FamilyFields, domain.FieldMotherDeathCertificate)
	assert.NotContains(t, fs.FamilyFields, domain.FieldFatherName)
	assert.True(t, fs.Disability)
	assert.Equal(t, []string{domain.FieldDisabilityType, domain.FieldDisabilityDocument}, fs.DisabilityFields)
}
