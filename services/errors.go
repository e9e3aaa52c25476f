package services

import "errors"

// Sentinel errors for the enrollment policy. Anything else coming out of the
// service layer is a store failure and must not be shown to clients verbatim.
var (
	ErrMissingField      = errors.New("missing required field")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidProgress   = errors.New("progress must be between 0 and 100")
	ErrInvalidStatus     = errors.New("invalid status")
)
