package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/user"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

// callerFromRequest rebuilds the authenticated identity from the verified
// access token claims.
func callerFromRequest(r *http.Request) (user.Caller, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Caller{}, user.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return user.Caller{}, user.ErrInvalidToken
	}
	userID, err := ident.Parse(userIDStr)
	if err != nil {
		return user.Caller{}, user.ErrInvalidToken
	}

	employeeIDStr, ok := claims["employee_id"].(string)
	if !ok {
		return user.Caller{}, user.ErrInvalidToken
	}
	employeeID, err := ident.Parse(employeeIDStr)
	if err != nil {
		return user.Caller{}, user.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return user.Caller{}, user.ErrInvalidToken
	}

	return user.Caller{
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       user.Role(roleStr),
	}, nil
}
