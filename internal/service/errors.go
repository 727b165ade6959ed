package service

import "errors"

var (
	// ErrNotFound is returned when a record does not exist for the owner
	ErrNotFound = errors.New("not found")

	// ErrNoEmail is returned when mailing a profile without an address
	ErrNoEmail = errors.New("no email address on profile")
)
