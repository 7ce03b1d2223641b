package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/auth"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/employee"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/user"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/jwt"
)

type AuthService struct {
	users     user.UserRepository
	employees employee.EmployeeRepository
	tokens    auth.RefreshTokenRepository
	jwt       jwt.Service
}

func NewAuthService(users user.UserRepository, employees employee.EmployeeRepository, tokens auth.RefreshTokenRepository, jwtService jwt.Service) *AuthService {
	return &AuthService{
		users:     users,
		employees: employees,
		tokens:    tokens,
		jwt:       jwtService,
	}
}

// Login checks the password and issues an access token plus a refresh
// token whose jti is persisted for revocation.
func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, string, int64, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	emp, err := s.employees.GetByUserID(ctx, u.ID)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to resolve employee for user: %w", err)
	}

	access, expiresAt, err := s.jwt.GenerateAccessToken(u.ID, emp.ID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, jti, refreshExpiresAt, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokens.Store(ctx, auth.RefreshToken{
		JTI:       jti,
		UserID:    u.ID,
		ExpiresAt: time.Unix(refreshExpiresAt, 0),
	}); err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: access,
		ExpiresAt:   expiresAt,
		EmployeeID:  emp.ID,
		Role:        string(u.Role),
	}, refresh, refreshExpiresAt, nil
}

// Refresh rotates the refresh token and issues a fresh access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, string, int64, error) {
	userID, jti, err := s.jwt.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	stored, err := s.tokens.Get(ctx, jti)
	if err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrRefreshTokenRevoked
	}
	if stored.Revoked || stored.ExpiresAt.Before(time.Now()) {
		return auth.TokenResponse{}, "", 0, auth.ErrRefreshTokenRevoked
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrUserNotFound
	}

	emp, err := s.employees.GetByUserID(ctx, u.ID)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to resolve employee for user: %w", err)
	}

	// Rotate: revoke the presented token before issuing the next one.
	if err := s.tokens.Revoke(ctx, jti); err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	access, expiresAt, err := s.jwt.GenerateAccessToken(u.ID, emp.ID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, newJTI, refreshExpiresAt, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokens.Store(ctx, auth.RefreshToken{
		JTI:       newJTI,
		UserID:    u.ID,
		ExpiresAt: time.Unix(refreshExpiresAt, 0),
	}); err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: access,
		ExpiresAt:   expiresAt,
		EmployeeID:  emp.ID,
		Role:        string(u.Role),
	}, refresh, refreshExpiresAt, nil
}

// Logout revokes the refresh token if it parses; an unparsable or already
// revoked token still logs the caller out.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	_, jti, err := s.jwt.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil
	}
	if err := s.tokens.Revoke(ctx, jti); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
