package domain

import "errors"

var (
	// ErrSchema is returned when a catalog row is malformed (missing name or
	// unparseable/negative price). Schema errors abort the whole load.
	ErrSchema = errors.New("malformed catalog row")

	// ErrInvalidQuery is returned for an empty or whitespace-only query
	ErrInvalidQuery = errors.New("query must not be empty")

	// ErrInvalidSelection is returned for a selection that is not a valid
	// candidate index or the skip token
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrNoCandidates is returned when no candidate meets the score threshold
	ErrNoCandidates = errors.New("no candidates above threshold")

	// ErrDuplicateSKU is returned when a catalog contains the same SKU twice
	ErrDuplicateSKU = errors.New("duplicate SKU in catalog")

	// ErrSessionDone is returned when input is submitted after the done sentinel
	ErrSessionDone = errors.New("session already completed")
)
