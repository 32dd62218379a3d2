package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong password
	// so login failures are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateSubmission is returned when the double-submit guard has
	// already seen an identical booking recently.
	ErrDuplicateSubmission = errors.New("duplicate submission")
)
