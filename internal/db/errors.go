package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrRunNotFound  = errors.New("run not found")
	ErrInvalidLimit = errors.New("limit must be between 1 and 500")
)

// MaxRunsLimit caps ListRecentRuns.
const MaxRunsLimit = 500
