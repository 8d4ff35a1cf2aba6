package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"launchstats/internal/models"
)

// WelcomeMessage is the plain-text body of GET /.
const WelcomeMessage = "This is Home of Space X data solution"

// Aggregator computes launch aggregations. Implemented by *tasks.Service.
type Aggregator interface {
	LaunchesByYear(ctx context.Context) (models.LaunchesByYear, error)
	LaunchesBySite(ctx context.Context) (models.LaunchesBySite, error)
}

// TaskHandler serves the launch aggregation endpoints.
type TaskHandler struct {
	svc Aggregator
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(svc Aggregator) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// Welcome handles GET /.
func (h *TaskHandler) Welcome(c fiber.Ctx) error {
	return c.SendString(WelcomeMessage)
}

// LaunchesByYear handles GET /task/rocket/launches-by-year.
//
// Example response:
//
//	{"Falcon 9": {"2020": 12, "2021": 15}, "Falcon Heavy": {"2021": 1}}
func (h *TaskHandler) LaunchesByYear(c fiber.Ctx) error {
	result, err := h.svc.LaunchesByYear(c.Context())
	if err != nil {
		status, msg := upstreamStatus(err)
		slog.Warn("launches by year failed", "status", status, "error", err)
		return jsonError(c, status, msg)
	}
	return c.JSON(result)
}

// LaunchesBySite handles GET /task/rocket/launches-by-site.
//
// Example response:
//
//	{"Falcon 9": {"CCAFS SLC 40": 45, "KSC LC 39A": 52}}
func (h *TaskHandler) LaunchesBySite(c fiber.Ctx) error {
	result, err := h.svc.LaunchesBySite(c.Context())
	if err != nil {
		status, msg := upstreamStatus(err)
		slog.Warn("launches by site failed", "status", status, "error", err)
		return jsonError(c, status, msg)
	}
	return c.JSON(result)
}
