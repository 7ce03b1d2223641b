package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/auth"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/database"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Store implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Store(ctx context.Context, token auth.RefreshToken) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (jti, user_id, expires_at, revoked)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := q.Exec(ctx, query, token.JTI, token.UserID, token.ExpiresAt, token.Revoked); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// Get implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Get(ctx context.Context, jti string) (auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT jti, user_id, expires_at, revoked, created_at
		FROM refresh_tokens
		WHERE jti = $1
	`

	var token auth.RefreshToken
	err := q.QueryRow(ctx, query, jti).Scan(
		&token.JTI,
		&token.UserID,
		&token.ExpiresAt,
		&token.Revoked,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.RefreshToken{}, auth.ErrRefreshTokenRevoked
		}
		return auth.RefreshToken{}, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return token, nil
}

// Revoke implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, jti string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked = TRUE
		WHERE jti = $1
	`

	if _, err := q.Exec(ctx, query, jti); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
