package account

import (
	"time"

	"bursary-portal/internal/domain/access"
	domain "bursary-portal/internal/domain/account"
)

type CredentialsInput struct {
	Username string `json:"username" validate:"required,min=3,max=150,alphanum"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// StaffInput creates reviewer accounts from the operator CLI.
// ConstituencyID is ignored for super admins.
type StaffInput struct {
	Username       string
	Password       string
	SuperAdmin     bool
	ConstituencyID uint64
}

type AccountDTO struct {
	UserID         string      `json:"user_id"`
	Username       string      `json:"username"`
	Role           access.Role `json:"role"`
	SuperAdmin     bool        `json:"super_admin"`
	ConstituencyID *uint64     `json:"constituency_id,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

type TokenDTO struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func toDTO(a *domain.Account, b *domain.ReviewerBinding) AccountDTO {
	dto := AccountDTO{
		UserID:     a.UserID,
		Username:   a.Username,
		Role:       a.Role,
		SuperAdmin: a.IsSuperAdmin,
		CreatedAt:  a.CreatedAt,
	}
	if b != nil {
		id := b.ConstituencyID
		dto.ConstituencyID = &id
	}
	return dto
}
