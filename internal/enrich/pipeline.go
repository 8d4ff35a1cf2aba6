// Package enrich resolves the rocket and launch pad names of launches.
//
// Every lookup for a request runs concurrently. The first failure cancels the
// remaining lookups and is returned on its own; callers never see a partially
// enriched set.
package enrich

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"launchstats/internal/models"
	"launchstats/internal/tracing"
)

// Source performs the id-keyed upstream lookups. Implemented by *spacex.Client.
type Source interface {
	GetRocket(ctx context.Context, id string) (*models.Rocket, error)
	GetLaunchPad(ctx context.Context, id string) (*models.LaunchPad, error)
}

// Pipeline enriches launches using a Source. It keeps no state between calls.
type Pipeline struct {
	src   Source
	limit int
}

// New creates a pipeline. limit caps in-flight lookups per call; <= 0 means unbounded.
func New(src Source, limit int) *Pipeline {
	return &Pipeline{src: src, limit: limit}
}

// ResolveRockets sets RocketName on a copy of every launch. Launch pads are
// not looked up.
func (p *Pipeline) ResolveRockets(ctx context.Context, launches []models.Launch) ([]models.Launch, error) {
	return p.run(ctx, "enrich.rockets", launches, false)
}

// ResolveRocketsAndSites sets RocketName and LaunchPadName on a copy of every
// launch, looking up the rocket and the pad of each launch concurrently.
func (p *Pipeline) ResolveRocketsAndSites(ctx context.Context, launches []models.Launch) ([]models.Launch, error) {
	return p.run(ctx, "enrich.rockets_and_sites", launches, true)
}

func (p *Pipeline) run(ctx context.Context, spanName string, launches []models.Launch, withSites bool) ([]models.Launch, error) {
	ctx, span := tracing.Tracer().Start(ctx, spanName)
	defer span.End()
	span.SetAttributes(attribute.Int("launches", len(launches)))

	out := make([]models.Launch, len(launches))
	copy(out, launches)

	g, gctx := errgroup.WithContext(ctx)
	if p.limit > 0 {
		g.SetLimit(p.limit)
	}

	// Each goroutine writes a single field of a single element.
	for i := range out {
		l := &out[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rocket, err := p.src.GetRocket(gctx, l.RocketID)
			if err != nil {
				return err
			}
			l.RocketName = rocket.DisplayName()
			return nil
		})
		if !withSites {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pad, err := p.src.GetLaunchPad(gctx, l.LaunchPadID)
			if err != nil {
				return err
			}
			l.LaunchPadName = pad.DisplayName()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return out, nil
}
