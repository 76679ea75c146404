package catalog

import "errors"

var (
	// ErrProjectNotFound indicates no project matches the identifier.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidRequest indicates malformed pagination inputs.
	ErrInvalidRequest = errors.New("page and limit must be positive integers")
)
