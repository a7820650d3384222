package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"bursary-portal/internal/domain/access"
	"bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/uow"
	"bursary-portal/internal/infrastructure/metrics"
	"bursary-portal/internal/testutil/applicationmock"
	"bursary-portal/internal/testutil/uowmock"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

func u64(v uint64) *uint64 { return &v }

func TestUsecase_Decide(t *testing.T) {
	now := time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC)
	officer := &access.Principal{UserID: "officer-1", Role: access.RoleOfficer, ConstituencyID: u64(10)}
	admin := &access.Principal{UserID: "admin-1", Role: access.RoleOfficer, SuperAdmin: true}
	student := &access.Principal{UserID: "student-1", Role: access.RoleStudent}
	unbound := &access.Principal{UserID: "officer-9", Role: access.RoleOfficer}

	newPending := func(constituency uint64) *application.Application {
		return &application.Application{ID: 7, ApplicationID: "A-7", FullName: "Jane Wanjiku", ConstituencyID: constituency, Status: application.StatusPending}
	}

	type setup struct {
		app        *application.Application
		loadErr    error
		transition func(t *testing.T) (bool, error)
	}

	tests := []struct {
		name      string
		principal *access.Principal
		approve   bool
		setup     setup
		wantErr   error
		wantState string
		wantMsg   string
	}{
		{
			name:      "officer approves in own constituency",
			principal: officer,
			approve:   true,
			setup:     setup{app: newPending(10), transition: func(*testing.T) (bool, error) { return true, nil }},
			wantState: "approved",
			wantMsg:   "Application for Jane Wanjiku has been approved.",
		},
		{
			name:      "super admin rejects anywhere",
			principal: admin,
			setup:     setup{app: newPending(99), transition: func(*testing.T) (bool, error) { return true, nil }},
			wantState: "rejected",
			wantMsg:   "Application for Jane Wanjiku has been rejected.",
		},
		{
			name:      "officer outside constituency",
			principal: officer,
			approve:   true,
			setup: setup{app: newPending(11), transition: func(t *testing.T) (bool, error) {
				t.Fatalf("status must not change")
				return false, nil
			}},
			wantErr: access.ErrForbidden,
		},
		{
			name:      "student cannot review",
			principal: student,
			approve:   true,
			wantErr:   access.ErrForbidden,
		},
		{
			name:      "unbound staff cannot review",
			principal: unbound,
			wantErr:   access.ErrForbidden,
		},
		{
			name:    "anonymous",
			approve: true,
			wantErr: access.ErrUnauthenticated,
		},
		{
			name:      "already decided",
			principal: officer,
			approve:   true,
			setup: setup{app: &application.Application{ID: 7, ConstituencyID: 10, Status: application.StatusRejected}, transition: func(t *testing.T) (bool, error) {
				t.Fatalf("status must not change")
				return false, nil
			}},
			wantErr: application.ErrInvalidState,
		},
		{
			name:      "lost the race",
			principal: officer,
			approve:   true,
			setup:     setup{app: newPending(10), transition: func(*testing.T) (bool, error) { return false, nil }},
			wantErr:   application.ErrInvalidState,
		},
		{
			name:      "application missing, officer",
			principal: officer,
			approve:   true,
			setup:     setup{loadErr: application.ErrNotFound},
			wantErr:   access.ErrForbidden,
		},
		{
			name:      "application missing, super-admin",
			principal: admin,
			approve:   true,
			setup:     setup{loadErr: application.ErrNotFound},
			wantErr:   application.ErrNotFound,
		},
		{
			name:      "datastore failure",
			principal: admin,
			approve:   true,
			setup:     setup{app: newPending(10), transition: func(*testing.T) (bool, error) { return false, errors.New("conn reset") }},
			wantErr:   application.ErrUpstream,
		},
		{
			name:      "transaction failure",
			principal: admin,
			setup:     setup{loadErr: errors.New("deadlock")},
			wantErr:   application.ErrUpstream,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			apps := &applicationmock.Repo{
				TransitionStatusFn: func(_ context.Context, id uint64, from, to application.Status) (bool, error) {
					if id != 7 || from != application.StatusPending {
						t.Fatalf("unexpected transition args: %d %s %s", id, from, to)
					}
					return tc.setup.transition(t)
				},
			}
			tx := &uowmock.UoW{
				WithinApplicationTxFn: func(_ context.Context, applicationID string, fn func(uow.Repos, *application.Application) error) error {
					if applicationID != "A-7" {
						t.Fatalf("applicationID = %q", applicationID)
					}
					if tc.setup.loadErr != nil {
						return tc.setup.loadErr
					}
					return fn(uow.Repos{Applications: apps}, tc.setup.app)
				},
			}
			uc := NewUsecase(tx, metrics.New(prometheus.NewRegistry()), zap.NewNop())
			uc.now = func() time.Time { return now }

			in := ReviewInput{ApplicationID: "A-7", Principal: tc.principal}
			var (
				dto *ReviewDTO
				err error
			)
			if tc.approve {
				dto, err = uc.Approve(context.Background(), in)
			} else {
				dto, err = uc.Reject(context.Background(), in)
			}

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want err %v, got %v", tc.wantErr, err)
				}
				if dto != nil {
					t.Fatalf("want nil dto on error, got %+v", dto)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if dto.Status != tc.wantState || dto.Message != tc.wantMsg {
				t.Fatalf("dto = %+v", dto)
			}
			if dto.ReviewedBy != tc.principal.UserID || !dto.ReviewedAt.Equal(now) {
				t.Fatalf("review stamp mismatch: %+v", dto)
			}
		})
	}
}

func TestUsecase_NoUnitOfWork(t *testing.T) {
	uc := NewUsecase(nil, nil, nil)
	_, err := uc.Approve(context.Background(), ReviewInput{ApplicationID: "A-1", Principal: &access.Principal{UserID: "x", SuperAdmin: true}})
	if !errors.Is(err, errNoUnitOfWork) {
		t.Fatalf("want errNoUnitOfWork, got %v", err)
	}
}

func TestUsecase_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	pending := true
	apps := &applicationmock.Repo{
		TransitionStatusFn: func(context.Context, uint64, application.Status, application.Status) (bool, error) {
			return true, nil
		},
	}
	tx := &uowmock.UoW{
		WithinApplicationTxFn: func(_ context.Context, _ string, fn func(uow.Repos, *application.Application) error) error {
			st := application.StatusApproved
			if pending {
				st = application.StatusPending
			}
			return fn(uow.Repos{Applications: apps}, &application.Application{ID: 1, FullName: "J", Status: st})
		},
	}
	uc := NewUsecase(tx, m, zap.NewNop())
	admin := &access.Principal{UserID: "admin", SuperAdmin: true}

	if _, err := uc.Approve(context.Background(), ReviewInput{ApplicationID: "A", Principal: admin}); err != nil {
		t.Fatalf("approve: %v", err)
	}
	pending = false
	if _, err := uc.Reject(context.Background(), ReviewInput{ApplicationID: "A", Principal: admin}); !errors.Is(err, application.ErrInvalidState) {
		t.Fatalf("reject decided: want ErrInvalidState, got %v", err)
	}

	if got := testutil.ToFloat64(m.Reviews.WithLabelValues("approved")); got != 1 {
		t.Fatalf("approved reviews = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ReviewConflicts); got != 1 {
		t.Fatalf("review conflicts = %v, want 1", got)
	}
}
