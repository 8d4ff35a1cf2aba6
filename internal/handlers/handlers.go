package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"

	"launchstats/internal/spacex"
)

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// upstreamStatus maps an aggregation failure to a response status and message.
// The upstream is a dependency of every aggregation, so its failures are 5xx.
func upstreamStatus(err error) (int, string) {
	switch {
	case errors.Is(err, spacex.ErrRemoteUnavailable):
		if errors.Is(err, context.DeadlineExceeded) {
			return fiber.StatusGatewayTimeout, "SpaceX API timed out"
		}
		return fiber.StatusServiceUnavailable, "SpaceX API unavailable"
	case errors.Is(err, spacex.ErrNotFound):
		return fiber.StatusBadGateway, "SpaceX API references an unknown rocket or launch pad"
	case errors.Is(err, spacex.ErrDecode):
		return fiber.StatusBadGateway, "SpaceX API returned a malformed response"
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, "SpaceX API timed out"
	default:
		return fiber.StatusInternalServerError, "failed to calculate launches"
	}
}
