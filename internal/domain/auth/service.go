package auth

import "context"

type AuthService interface {
	// Login returns the access token response plus the refresh token and
	// its expiry, which the handler sets as an HTTP-only cookie.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, string, int64, error)

	// Refresh rotates the presented refresh token.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, string, int64, error)

	// Logout revokes the presented refresh token. Unknown tokens are not
	// an error; logout is idempotent.
	Logout(ctx context.Context, refreshToken string) error
}
