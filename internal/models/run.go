package models

import (
	"time"

	"github.com/google/uuid"
)

// Aggregation views
const (
	ViewByYear = "by_year"
	ViewBySite = "by_site"
)

// Run outcome constants
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Run records that an aggregation was computed. It never holds the result.
type Run struct {
	ID         uuid.UUID `json:"id"`
	View       string    `json:"view"`
	Outcome    string    `json:"outcome"`
	Launches   int64     `json:"launches"`
	Error      string    `json:"error,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// RunCount is the number of runs per view and outcome.
type RunCount struct {
	View    string
	Outcome string
	Count   int64
}

// IsOK reports whether the run produced a result.
func (r *Run) IsOK() bool {
	return r.Outcome == OutcomeOK
}
