package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bursary-portal/internal/domain/access"
	domain "bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/uow"
	"bursary-portal/internal/infrastructure/logger"
	"bursary-portal/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

var errNoUnitOfWork = errors.New("review usecase: unit of work not configured")

type Usecase struct {
	uow     uow.UnitOfWork
	metrics *metrics.Metrics
	log     *zap.Logger
	now     func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, m *metrics.Metrics, log *zap.Logger) *Usecase {
	return &Usecase{uow: tx, metrics: m, log: logger.OrNop(log), now: time.Now}
}

func (u *Usecase) Approve(ctx context.Context, in ReviewInput) (*ReviewDTO, error) {
	return u.decide(ctx, in, domain.StatusApproved)
}

func (u *Usecase) Reject(ctx context.Context, in ReviewInput) (*ReviewDTO, error) {
	return u.decide(ctx, in, domain.StatusRejected)
}

func (u *Usecase) decide(ctx context.Context, in ReviewInput, to domain.Status) (*ReviewDTO, error) {
	if u.uow == nil {
		return nil, errNoUnitOfWork
	}
	if in.Principal == nil || in.Principal.UserID == "" {
		return nil, access.ErrUnauthenticated
	}
	scope := access.ScopeFor(in.Principal)
	// Students and unbound staff cannot review anything; refuse before touching the row.
	if scope.Kind != access.ScopeAll && scope.Kind != access.ScopeConstituency {
		return nil, access.ErrForbidden
	}

	var dto *ReviewDTO
	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *domain.Application) error {
		if !scope.CanReview(a.ConstituencyID) {
			return access.ErrForbidden
		}
		// State guard: only pending -> approved|rejected
		if !a.Status.CanTransitionTo(to) {
			return domain.ErrInvalidState
		}
		ok, err := r.Applications.TransitionStatus(ctx, a.ID, domain.StatusPending, to)
		if err != nil {
			return domain.Upstream("update status", err)
		}
		if !ok {
			// another reviewer won the race
			return domain.ErrInvalidState
		}
		dto = &ReviewDTO{
			ApplicationID: a.ApplicationID,
			FullName:      a.FullName,
			Status:        string(to),
			ReviewedBy:    in.Principal.UserID,
			ReviewedAt:    u.now().UTC(),
			Message:       fmt.Sprintf("Application for %s has been %s.", a.FullName, to),
		}
		return nil
	})
	if err != nil {
		return nil, u.classify(err, in, to)
	}

	u.metrics.IncrementReviews(string(to))
	u.log.Info("application reviewed",
		zap.String("application_id", dto.ApplicationID),
		zap.String("status", dto.Status),
		zap.String("reviewer", dto.ReviewedBy),
		zap.Time("reviewed_at", dto.ReviewedAt))
	return dto, nil
}

func (u *Usecase) classify(err error, in ReviewInput, to domain.Status) error {
	switch {
	case errors.Is(err, domain.ErrInvalidState):
		u.metrics.IncrementReviewConflicts()
		u.log.Info("review on non-pending application",
			zap.String("application_id", in.ApplicationID),
			zap.String("wanted", string(to)))
		return err
	case errors.Is(err, access.ErrForbidden):
		u.log.Warn("review outside reviewer scope",
			zap.String("application_id", in.ApplicationID),
			zap.String("reviewer", in.Principal.UserID))
		return err
	case errors.Is(err, domain.ErrNotFound):
		if access.ScopeFor(in.Principal).Kind != access.ScopeAll {
			return access.ErrForbidden
		}
		return err
	case errors.Is(err, domain.ErrUpstream):
		return err
	}
	return domain.Upstream("review transaction", err)
}
