package jwt

import (
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/user"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type Service interface {
	GenerateAccessToken(userID ident.ID, employeeID ident.ID, role user.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID ident.ID) (token string, jti string, expiresAt int64, err error)
	ParseRefreshToken(tokenString string) (userID ident.ID, jti string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
}

type JWTService struct {
	accessExpiration  string
	refreshExpiration string
	tokenAuth         *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessExpiration string, refreshExpiration string) Service {
	return &JWTService{
		accessExpiration:  accessExpiration,
		refreshExpiration: refreshExpiration,
		tokenAuth:         jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateAccessToken issues an access token carrying the caller identity.
// IDs travel as decimal strings, matching the API encoding.
func (j *JWTService) GenerateAccessToken(userID ident.ID, employeeID ident.ID, role user.Role) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.accessExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":     userID.String(),
		"employee_id": employeeID.String(),
		"role":        string(role),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// GenerateRefreshToken issues a refresh token with a unique jti so that
// individual tokens can be revoked server-side.
func (j *JWTService) GenerateRefreshToken(userID ident.ID) (string, string, int64, error) {
	expDuration, err := time.ParseDuration(j.refreshExpiration)
	if err != nil {
		return "", "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()
	jti := uuid.NewString()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID.String(),
		"jti":     jti,
		"type":    "refresh",
		"exp":     expiresAt,
	})
	return tokenString, jti, expiresAt, err
}

// ParseRefreshToken verifies a refresh token and returns its subject and jti.
func (j *JWTService) ParseRefreshToken(tokenString string) (ident.ID, string, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return 0, "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return 0, "", jwt.ErrInvalidJWT()
	}

	rawUserID, ok := token.Get("user_id")
	if !ok {
		return 0, "", jwt.ErrInvalidJWT()
	}
	userIDStr, ok := rawUserID.(string)
	if !ok {
		return 0, "", jwt.ErrInvalidJWT()
	}
	userID, err := ident.Parse(userIDStr)
	if err != nil {
		return 0, "", jwt.ErrInvalidJWT()
	}

	jti := token.JwtID()
	if jti == "" {
		if raw, found := token.Get("jti"); found {
			jti, _ = raw.(string)
		}
	}
	if jti == "" {
		return 0, "", jwt.ErrInvalidJWT()
	}

	return userID, jti, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}
