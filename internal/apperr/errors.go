// Package apperr defines the recoverable domain error taxonomy. Handlers
// translate these to 4xx responses; anything else is treated as an opaque
// infrastructure failure.
package apperr

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrConnectionNotFound = errors.New("connection not found")
	ErrUserAlreadyExists  = errors.New("user already exists")

	// ErrInvalidMembership covers violations of the membership rules,
	// e.g. removing an OWNER connection without transferring ownership.
	ErrInvalidMembership = errors.New("invalid membership operation")
)
