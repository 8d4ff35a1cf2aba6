package models

// RunsResponse lists recent aggregation runs.
type RunsResponse struct {
	Runs  []Run `json:"runs"`
	Count int   `json:"count"`
}
