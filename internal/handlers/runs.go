package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"launchstats/internal/db"
	"launchstats/internal/models"
)

const defaultRunsLimit = 20

// RunStore reads run history. Implemented by *db.DB.
type RunStore interface {
	ListRecentRuns(ctx context.Context, limit int) ([]models.Run, error)
	GetRun(ctx context.Context, id uuid.UUID) (*models.Run, error)
}

// RunHandler serves the aggregation run history.
type RunHandler struct {
	store RunStore
}

// NewRunHandler creates a run handler. A nil store means history is disabled.
func NewRunHandler(store RunStore) *RunHandler {
	return &RunHandler{store: store}
}

// List handles GET /task/runs?limit=N.
func (h *RunHandler) List(c fiber.Ctx) error {
	if h.store == nil {
		return jsonError(c, fiber.StatusNotFound, "run history is not enabled")
	}

	limit := defaultRunsLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return jsonError(c, fiber.StatusBadRequest, "limit must be an integer")
		}
		limit = n
	}

	runs, err := h.store.ListRecentRuns(c.Context(), limit)
	if err != nil {
		if errors.Is(err, db.ErrInvalidLimit) {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to list runs")
	}

	return c.JSON(models.RunsResponse{Runs: runs, Count: len(runs)})
}

// Get handles GET /task/runs/:id.
func (h *RunHandler) Get(c fiber.Ctx) error {
	if h.store == nil {
		return jsonError(c, fiber.StatusNotFound, "run history is not enabled")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid run id")
	}

	run, err := h.store.GetRun(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrRunNotFound) {
			return jsonError(c, fiber.StatusNotFound, "run not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch run")
	}

	return c.JSON(run)
}
