package account

import (
	"errors"
	"time"

	"bursary-portal/internal/domain/access"
)

var (
	ErrNotFound        = errors.New("account not found")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrInvalidLogin    = errors.New("invalid username or password")
	ErrAlreadyBound    = errors.New("constituency or officer already bound")
	ErrNotReviewerRole = errors.New("only officer accounts can be bound to a constituency")
)

// Table: accounts
type Account struct {
	ID           uint64      `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserID       string      `gorm:"column:user_id;size:32;not null;uniqueIndex" json:"user_id"`
	Username     string      `gorm:"column:username;size:150;not null;uniqueIndex" json:"username"`
	PasswordHash string      `gorm:"column:password_hash;size:100;not null" json:"-"`
	Role         access.Role `gorm:"column:role;size:16;not null" json:"role"`
	IsSuperAdmin bool        `gorm:"column:is_super_admin;not null;default:false" json:"is_super_admin"`
	CreatedAt    time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Account) TableName() string { return "accounts" }

// Table: reviewer_bindings. One principal per constituency and one constituency per principal.
type ReviewerBinding struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	UserID         string    `gorm:"column:user_id;size:32;not null;uniqueIndex"`
	ConstituencyID uint64    `gorm:"column:constituency_id;not null;uniqueIndex"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ReviewerBinding) TableName() string { return "reviewer_bindings" }
