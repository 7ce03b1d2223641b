package auth

import (
	"context"
	"time"

	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type RefreshToken struct {
	JTI       string
	UserID    ident.ID
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

type RefreshTokenRepository interface {
	Store(ctx context.Context, token RefreshToken) error
	Get(ctx context.Context, jti string) (RefreshToken, error)
	Revoke(ctx context.Context, jti string) error
}
