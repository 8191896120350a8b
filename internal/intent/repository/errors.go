package repository

import "errors"

// Store-level errors. Callers treat these as per-segment failures, never as
// pipeline-fatal conditions.
var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToQuery  = errors.New("failed to query record")
)
