package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bursary-portal/internal/domain/access"
	domain "bursary-portal/internal/domain/account"
	appdomain "bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/reference"
	"bursary-portal/internal/domain/uow"
	"bursary-portal/internal/infrastructure/logger"
	"bursary-portal/internal/infrastructure/secrets"
	"bursary-portal/pkg/id"

	"go.uber.org/zap"
)

var errNoUnitOfWork = errors.New("account usecase: unit of work not configured")

// TokenService issues and validates bearer tokens for a user id.
type TokenService interface {
	Issue(userID string) (string, time.Time, error)
	Validate(token string) (string, error)
}

type Usecase struct {
	accounts domain.Repository
	uow      uow.UnitOfWork
	tokens   TokenService
	log      *zap.Logger
}

func NewUsecase(accounts domain.Repository, tx uow.UnitOfWork, tokens TokenService, log *zap.Logger) *Usecase {
	return &Usecase{accounts: accounts, uow: tx, tokens: tokens, log: logger.OrNop(log)}
}

// Signup registers a student account.
func (u *Usecase) Signup(ctx context.Context, in CredentialsInput) (*AccountDTO, error) {
	acc, err := u.newAccount(in.Username, in.Password, access.RoleStudent, false)
	if err != nil {
		return nil, err
	}
	if err := u.accounts.Create(ctx, acc); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, err
		}
		return nil, appdomain.Upstream("create account", err)
	}
	u.log.Info("student registered", zap.String("user_id", acc.UserID))
	dto := toDTO(acc, nil)
	return &dto, nil
}

func (u *Usecase) Login(ctx context.Context, in CredentialsInput) (*TokenDTO, error) {
	acc, err := u.accounts.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidLogin
	}
	if err != nil {
		return nil, appdomain.Upstream("load account", err)
	}
	if err := secrets.Verify(in.Password, acc.PasswordHash); err != nil {
		if errors.Is(err, secrets.ErrMismatch) {
			return nil, domain.ErrInvalidLogin
		}
		return nil, err
	}
	token, exp, err := u.tokens.Issue(acc.UserID)
	if err != nil {
		return nil, err
	}
	return &TokenDTO{AccessToken: token, TokenType: "Bearer", ExpiresAt: exp}, nil
}

// Authenticate turns a bearer token into the acting principal.
func (u *Usecase) Authenticate(ctx context.Context, token string) (*access.Principal, error) {
	userID, err := u.tokens.Validate(token)
	if err != nil {
		return nil, err
	}
	return u.ResolvePrincipal(ctx, userID)
}

// ResolvePrincipal loads the account and its reviewer binding. An unknown user is
// unauthenticated, not missing.
func (u *Usecase) ResolvePrincipal(ctx context.Context, userID string) (*access.Principal, error) {
	acc, err := u.accounts.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, access.ErrUnauthenticated
	}
	if err != nil {
		return nil, appdomain.Upstream("load account", err)
	}
	p := &access.Principal{
		UserID:     acc.UserID,
		Username:   acc.Username,
		Role:       acc.Role,
		SuperAdmin: acc.IsSuperAdmin,
	}
	if acc.Role != access.RoleOfficer || acc.IsSuperAdmin {
		return p, nil
	}
	b, err := u.accounts.GetBinding(ctx, acc.UserID)
	if err != nil {
		return nil, appdomain.Upstream("load reviewer binding", err)
	}
	if b != nil {
		cid := b.ConstituencyID
		p.ConstituencyID = &cid
	}
	return p, nil
}

// CreateStaff creates a super admin, or an officer bound to one constituency, in one transaction.
func (u *Usecase) CreateStaff(ctx context.Context, in StaffInput) (*AccountDTO, error) {
	if u.uow == nil {
		return nil, errNoUnitOfWork
	}
	if !in.SuperAdmin && in.ConstituencyID == 0 {
		return nil, fmt.Errorf("%w: constituency is required for officers", domain.ErrNotReviewerRole)
	}
	acc, err := u.newAccount(in.Username, in.Password, access.RoleOfficer, in.SuperAdmin)
	if err != nil {
		return nil, err
	}

	var binding *domain.ReviewerBinding
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if !in.SuperAdmin {
			if _, err := r.References.GetConstituency(ctx, in.ConstituencyID); err != nil {
				return err
			}
		}
		if err := r.Accounts.Create(ctx, acc); err != nil {
			return err
		}
		if in.SuperAdmin {
			return nil
		}
		binding = &domain.ReviewerBinding{UserID: acc.UserID, ConstituencyID: in.ConstituencyID}
		return r.Accounts.Bind(ctx, binding)
	})
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrAlreadyBound):
		return nil, err
	case reference.IsNotFound(err):
		return nil, reference.ErrNotFound
	default:
		return nil, appdomain.Upstream("create staff account", err)
	}

	u.log.Info("staff account created",
		zap.String("user_id", acc.UserID),
		zap.Bool("super_admin", acc.IsSuperAdmin),
		zap.Uint64("constituency_id", in.ConstituencyID))
	dto := toDTO(acc, binding)
	return &dto, nil
}

func (u *Usecase) newAccount(username, password string, role access.Role, super bool) (*domain.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrInvalidLogin
	}
	hash, err := secrets.Hash(password)
	if err != nil {
		return nil, err
	}
	return &domain.Account{
		UserID:       id.NewID32(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		IsSuperAdmin: super,
	}, nil
}
