// Package tasks orchestrates one aggregation per request: list launches,
// enrich them, then group and count.
package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"launchstats/internal/aggregate"
	"launchstats/internal/enrich"
	"launchstats/internal/metrics"
	"launchstats/internal/models"
	"launchstats/internal/tracing"
)

// Upstream is the remote data source. Implemented by *spacex.Client.
type Upstream interface {
	enrich.Source
	ListLaunches(ctx context.Context) ([]models.Launch, error)
}

// RunRecorder stores a record of each aggregation. Implemented by *db.DB.
type RunRecorder interface {
	RecordRun(ctx context.Context, run *models.Run) error
}

// Service computes launch aggregations. It keeps no state between calls.
type Service struct {
	upstream Upstream
	pipeline *enrich.Pipeline
	runs     RunRecorder
}

// NewService creates a service. maxConcurrency caps in-flight lookups per
// request (<= 0 is unbounded). runs may be nil to disable run history.
func NewService(upstream Upstream, maxConcurrency int, runs RunRecorder) *Service {
	return &Service{
		upstream: upstream,
		pipeline: enrich.New(upstream, maxConcurrency),
		runs:     runs,
	}
}

// LaunchesByYear counts launches per rocket name and UTC year.
func (s *Service) LaunchesByYear(ctx context.Context) (models.LaunchesByYear, error) {
	ctx, span := tracing.Tracer().Start(ctx, "tasks.launches_by_year")
	defer span.End()
	start := time.Now()

	launches, err := s.upstream.ListLaunches(ctx)
	if err != nil {
		err = fmt.Errorf("list launches: %w", err)
		s.finish(ctx, models.ViewByYear, start, 0, err)
		return nil, err
	}

	enriched, err := s.pipeline.ResolveRockets(ctx, launches)
	if err != nil {
		err = fmt.Errorf("resolve rockets: %w", err)
		s.finish(ctx, models.ViewByYear, start, int64(len(launches)), err)
		return nil, err
	}

	result := aggregate.ByRocketAndYear(enriched)
	s.finish(ctx, models.ViewByYear, start, result.Total(), nil)
	return result, nil
}

// LaunchesBySite counts launches per rocket name and launch pad name.
func (s *Service) LaunchesBySite(ctx context.Context) (models.LaunchesBySite, error) {
	ctx, span := tracing.Tracer().Start(ctx, "tasks.launches_by_site")
	defer span.End()
	start := time.Now()

	launches, err := s.upstream.ListLaunches(ctx)
	if err != nil {
		err = fmt.Errorf("list launches: %w", err)
		s.finish(ctx, models.ViewBySite, start, 0, err)
		return nil, err
	}

	enriched, err := s.pipeline.ResolveRocketsAndSites(ctx, launches)
	if err != nil {
		err = fmt.Errorf("resolve rockets and sites: %w", err)
		s.finish(ctx, models.ViewBySite, start, int64(len(launches)), err)
		return nil, err
	}

	result := aggregate.ByRocketAndSite(enriched)
	s.finish(ctx, models.ViewBySite, start, result.Total(), nil)
	return result, nil
}

// finish logs, counts and records the outcome of one aggregation.
func (s *Service) finish(ctx context.Context, view string, start time.Time, launches int64, err error) {
	elapsed := time.Since(start)
	run := &models.Run{
		View:       view,
		Outcome:    models.OutcomeOK,
		Launches:   launches,
		DurationMS: elapsed.Milliseconds(),
	}
	if err != nil {
		run.Outcome = models.OutcomeError
		run.Error = err.Error()
		slog.Error("aggregation failed", "view", view, "launches", launches, "duration", elapsed, "error", err)
	} else {
		slog.Info("aggregation calculated", "view", view, "launches", launches, "duration", elapsed)
	}

	metrics.RecordAggregation(view, run.Outcome)

	if s.runs == nil {
		return
	}
	// The run is recorded even if the caller has gone away.
	if recErr := s.runs.RecordRun(context.WithoutCancel(ctx), run); recErr != nil {
		slog.Error("failed to record run", "view", view, "error", recErr)
	}
}
