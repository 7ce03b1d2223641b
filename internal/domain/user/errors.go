package user

import "errors"

var (
	ErrInvalidToken          = errors.New("invalid or missing token")
	ErrManagerAccessRequired = errors.New("manager access required")
)
