package account

import "context"

type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByUserID(ctx context.Context, userID string) (*Account, error)
	// GetBinding returns (nil, nil) when the user has no reviewer binding.
	GetBinding(ctx context.Context, userID string) (*ReviewerBinding, error)
	Bind(ctx context.Context, b *ReviewerBinding) error
}
