package project

import "errors"

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrTaskProjectMismatch = errors.New("task does not belong to the given project")
)
