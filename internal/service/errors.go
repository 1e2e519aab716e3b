package service

import "errors"

// Domain errors. These propagate unchanged to the HTTP boundary; any other
// persistence failure is wrapped with the failing operation's context.
var (
	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrAccessDenied means the entity is not owned by the acting user.
	ErrAccessDenied = errors.New("access denied")

	// ErrConflict means a unique constraint rejected the write.
	ErrConflict = errors.New("conflict")

	// ErrInvalidDate means a due-date string did not parse.
	ErrInvalidDate = errors.New("invalid date format")
)
