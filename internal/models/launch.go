package models

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrMissingLaunchDate is returned when a launch has no date_utc.
var ErrMissingLaunchDate = errors.New("launch has no date_utc")

// Sentinel names substituted when the upstream record has no name.
const (
	RocketNameNA    = "ROCKET_NAME_NA"
	LaunchPadNameNA = "LAUNCHPAD_NAME_NA"
)

// Launch is a single launch as returned by the upstream /launches endpoint.
// RocketName and LaunchPadName are empty until enrichment sets them.
type Launch struct {
	RocketID      string    `json:"rocket"`
	LaunchPadID   string    `json:"launchpad"`
	DateUTC       time.Time `json:"date_utc"`
	RocketName    string    `json:"-"`
	LaunchPadName string    `json:"-"`
}

// UnmarshalJSON decodes an upstream launch and normalizes its date to UTC.
// A missing or null date_utc is an error.
func (l *Launch) UnmarshalJSON(data []byte) error {
	type raw Launch
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	if r.DateUTC.IsZero() {
		return ErrMissingLaunchDate
	}
	*l = Launch(r)
	l.DateUTC = l.DateUTC.UTC()
	return nil
}

// Year returns the calendar year of the launch in UTC.
func (l *Launch) Year() int {
	return l.DateUTC.UTC().Year()
}
