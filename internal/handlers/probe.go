package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// UpstreamHealth reports the last upstream probe result. Implemented by *jobs.UpstreamProbe.
type UpstreamHealth interface {
	Healthy() bool
}

// Pinger checks a dependency is reachable. Implemented by *db.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	upstream UpstreamHealth
	db       Pinger
}

// NewProbeHandler creates a new probe handler. Either dependency may be nil
// when the corresponding feature is disabled.
func NewProbeHandler(upstream UpstreamHealth, database Pinger) *ProbeHandler {
	return &ProbeHandler{upstream: upstream, db: database}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the SpaceX API answered the last probe and the run
// history database (when enabled) is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.upstream != nil && !h.upstream.Healthy() {
		return jsonError(c, fiber.StatusServiceUnavailable, "spacex api unreachable")
	}

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			return jsonError(c, fiber.StatusServiceUnavailable, "database unavailable")
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
