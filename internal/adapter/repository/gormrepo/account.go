package gormrepo

import (
	"context"
	"errors"

	acctDomain "bursary-portal/internal/domain/account"

	"gorm.io/gorm"
)

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) Create(ctx context.Context, a *acctDomain.Account) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&acctDomain.Account{}).Where("username = ?", a.Username).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return acctDomain.ErrUsernameTaken
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*acctDomain.Account, error) {
	var out acctDomain.Account
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, acctDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AccountRepository) GetByUserID(ctx context.Context, userID string) (*acctDomain.Account, error) {
	var out acctDomain.Account
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, acctDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AccountRepository) GetBinding(ctx context.Context, userID string) (*acctDomain.ReviewerBinding, error) {
	var out acctDomain.ReviewerBinding
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AccountRepository) Bind(ctx context.Context, b *acctDomain.ReviewerBinding) error {
	var n int64
	err := r.db.WithContext(ctx).Model(&acctDomain.ReviewerBinding{}).
		Where("user_id = ? OR constituency_id = ?", b.UserID, b.ConstituencyID).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n > 0 {
		return acctDomain.ErrAlreadyBound
	}
	return r.db.WithContext(ctx).Create(b).Error
}
