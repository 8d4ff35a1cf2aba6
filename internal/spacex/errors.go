package spacex

import (
	"context"
	"errors"
)

// Upstream error sentinels. Every error returned by Client wraps exactly one.
var (
	// ErrRemoteUnavailable covers transport failures and non-404 error statuses.
	ErrRemoteUnavailable = errors.New("spacex api unavailable")

	// ErrNotFound means the upstream has no entity for the requested id.
	ErrNotFound = errors.New("spacex entity not found")

	// ErrDecode means the upstream returned a payload that could not be decoded.
	ErrDecode = errors.New("malformed spacex api response")
)

// Metric outcome labels
const (
	outcomeOK          = "ok"
	outcomeNotFound    = "not_found"
	outcomeUnavailable = "unavailable"
	outcomeDecodeError = "decode_error"
	outcomeCanceled    = "canceled"
)

// outcomeOf labels a call result. Calls abandoned because the caller
// cancelled are not counted as upstream failures.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, context.Canceled):
		return outcomeCanceled
	case errors.Is(err, ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, ErrDecode):
		return outcomeDecodeError
	default:
		return outcomeUnavailable
	}
}
