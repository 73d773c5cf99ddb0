package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound        = errors.New("resource not found")
	ErrCompanyNotFound = errors.New("company not found")
	ErrInvalidInput    = errors.New("invalid input")
)
