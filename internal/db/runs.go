package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"launchstats/internal/models"
)

// RecordRun inserts a run. ID and CreatedAt are assigned when unset.
func (d *DB) RecordRun(ctx context.Context, run *models.Run) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	err := d.Pool.QueryRow(ctx, `
		INSERT INTO aggregation_runs (id, view, outcome, launches, error, duration_ms)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING created_at
	`, run.ID, run.View, run.Outcome, run.Launches, run.Error, run.DurationMS).Scan(&run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// GetRun returns a run by id.
func (d *DB) GetRun(ctx context.Context, id uuid.UUID) (*models.Run, error) {
	var run models.Run
	err := d.Pool.QueryRow(ctx, `
		SELECT id, view, outcome, launches, COALESCE(error, ''), duration_ms, created_at
		FROM aggregation_runs
		WHERE id = $1
	`, id).Scan(&run.ID, &run.View, &run.Outcome, &run.Launches, &run.Error, &run.DurationMS, &run.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRecentRuns returns the newest runs first.
func (d *DB) ListRecentRuns(ctx context.Context, limit int) ([]models.Run, error) {
	if limit < 1 || limit > MaxRunsLimit {
		return nil, ErrInvalidLimit
	}

	rows, err := d.Pool.Query(ctx, `
		SELECT id, view, outcome, launches, COALESCE(error, ''), duration_ms, created_at
		FROM aggregation_runs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	runs := []models.Run{}
	for rows.Next() {
		var r models.Run
		if err := rows.Scan(&r.ID, &r.View, &r.Outcome, &r.Launches, &r.Error, &r.DurationMS, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// CountRuns returns run counts grouped by view and outcome for metrics export.
func (d *DB) CountRuns(ctx context.Context) ([]models.RunCount, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT view, outcome, COUNT(*)
		FROM aggregation_runs
		GROUP BY view, outcome
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.RunCount
	for rows.Next() {
		var c models.RunCount
		if err := rows.Scan(&c.View, &c.Outcome, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
