package services

import "github.com/cockroachdb/errors"

// Failure modes shared by the mutation paths. Services translate these to
// client-facing statuses; anything else is a server error.
var (
	ErrInvalidID = errors.New("invalid id format")
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("record is not test data")
)
