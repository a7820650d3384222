package application

import (
	"context"
	"errors"
	"path"
	"strings"

	"bursary-portal/internal/domain/access"
	domain "bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/document"
	"bursary-portal/internal/domain/reference"
	"bursary-portal/internal/domain/uow"
	"bursary-portal/internal/infrastructure/logger"
	"bursary-portal/internal/infrastructure/metrics"
	"bursary-portal/pkg/id"

	"go.uber.org/zap"
)

var errNoUnitOfWork = errors.New("application usecase: unit of work not configured")

type Usecase struct {
	validator *Validator
	apps      domain.Repository
	blobs     document.Store
	uow       uow.UnitOfWork
	metrics   *metrics.Metrics
	log       *zap.Logger
}

func NewUsecase(refs reference.Repository, apps domain.Repository, blobs document.Store, tx uow.UnitOfWork, m *metrics.Metrics, log *zap.Logger) *Usecase {
	return &Usecase{
		validator: NewValidator(refs),
		apps:      apps,
		blobs:     blobs,
		uow:       tx,
		metrics:   m,
		log:       logger.OrNop(log),
	}
}

// Submit validates everything first, then uploads documents, then stores one pending row.
func (u *Usecase) Submit(ctx context.Context, p *access.Principal, sub Submission) (*ApplicationDTO, error) {
	if p == nil || p.UserID == "" {
		return nil, access.ErrUnauthenticated
	}
	if p.Role != access.RoleStudent || p.SuperAdmin {
		return nil, access.ErrForbidden
	}
	if u.uow == nil {
		return nil, errNoUnitOfWork
	}

	draft, ferrs, err := u.validator.Validate(ctx, sub)
	if err != nil {
		return nil, err
	}
	if len(ferrs) > 0 {
		u.metrics.IncrementValidationFailures()
		u.log.Info("application rejected by validation",
			zap.String("student_id", p.UserID),
			zap.Strings("fields", ferrs.Fields()))
		return nil, &domain.ValidationError{Fields: ferrs}
	}

	app := draft.Application
	app.ApplicationID = id.NewID32()
	app.StudentID = p.UserID
	app.Status = domain.StatusPending

	stored, err := u.upload(ctx, app, draft.Uploads)
	if err != nil {
		return nil, err
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Applications.Create(ctx, app)
	})
	if err != nil {
		u.discard(ctx, stored)
		return nil, domain.Upstream("save application", err)
	}

	u.metrics.IncrementSubmitted()
	u.log.Info("application submitted",
		zap.String("application_id", app.ApplicationID),
		zap.String("student_id", app.StudentID),
		zap.Uint64("constituency_id", app.ConstituencyID))
	dto := toDTO(app)
	return &dto, nil
}

func (u *Usecase) upload(ctx context.Context, app *domain.Application, files map[string]document.File) ([]string, error) {
	var stored []string
	for _, field := range domain.DocumentFields {
		f, ok := files[field]
		if !ok {
			continue
		}
		key := "applications/" + app.ApplicationID + "/" + field + strings.ToLower(path.Ext(f.Filename))
		ref, err := u.blobs.Put(ctx, key, f)
		if err != nil {
			u.metrics.IncrementUploadFailures()
			u.discard(ctx, stored)
			return nil, domain.Upstream("upload "+field, err)
		}
		*app.DocumentRef(field) = ref
		stored = append(stored, ref)
	}
	return stored, nil
}

// discard removes blobs orphaned by a failed save. Failures are logged, not returned:
// the caller already has the error that matters.
func (u *Usecase) discard(ctx context.Context, refs []string) {
	for _, ref := range refs {
		if err := u.blobs.Delete(ctx, ref); err != nil {
			u.log.Warn("orphaned document left in store", zap.String("ref", ref), zap.Error(err))
		}
	}
}

// List returns the applications visible to p. Unknown principals get an empty list.
func (u *Usecase) List(ctx context.Context, p *access.Principal) ([]ApplicationDTO, error) {
	scope := access.ScopeFor(p)
	apps, err := u.apps.ListByScope(ctx, scope)
	if err != nil {
		return nil, domain.Upstream("list applications", err)
	}
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, toDTO(&apps[i]))
	}
	return out, nil
}

// Get returns the full record if p may see it. Below super-admin an unknown id is
// reported as forbidden, the same as a record outside the caller's scope.
func (u *Usecase) Get(ctx context.Context, p *access.Principal, applicationID string) (*domain.Application, error) {
	scope := access.ScopeFor(p)
	if scope.Kind == access.ScopeNone {
		return nil, access.ErrForbidden
	}
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if errors.Is(err, domain.ErrNotFound) {
		if scope.Kind != access.ScopeAll {
			return nil, access.ErrForbidden
		}
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.Upstream("load application", err)
	}
	if !a.VisibleTo(scope) {
		return nil, access.ErrForbidden
	}
	return a, nil
}

func (u *Usecase) Fieldset(familyStatus, disability string) Fieldset {
	return ActiveFieldset(familyStatus, disability)
}
