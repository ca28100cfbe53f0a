package domain

import "errors"

var (
	ErrMissingCollaborator = errors.New("required collaborator is missing")
	ErrInvalidConfig       = errors.New("invalid infinity config")
	ErrInvalidPlan         = errors.New("invalid plan")
	ErrNotFound            = errors.New("not found")
)
