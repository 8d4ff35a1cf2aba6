package jobs

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"launchstats/internal/metrics"
)

// Pinger checks the upstream is reachable. Implemented by *spacex.Client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// UpstreamProbe periodically checks the SpaceX API is reachable.
type UpstreamProbe struct {
	upstream Pinger
	interval time.Duration
	timeout  time.Duration
	healthy  atomic.Bool
}

// NewUpstreamProbe creates a new upstream probe. It reports healthy until
// the first check says otherwise.
func NewUpstreamProbe(upstream Pinger, interval, timeout time.Duration) *UpstreamProbe {
	p := &UpstreamProbe{
		upstream: upstream,
		interval: interval,
		timeout:  timeout,
	}
	p.healthy.Store(true)
	return p
}

// Start begins the background probe loop. It returns when ctx is done.
func (p *UpstreamProbe) Start(ctx context.Context) {
	log.Printf("Upstream probe started (interval: %v)", p.interval)

	// Run immediately on start
	p.Check(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Upstream probe stopped")
			return
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}

// Check probes the upstream once and records the result.
func (p *UpstreamProbe) Check(ctx context.Context) bool {
	// A zero timeout means none, matching http.Client.
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err := p.upstream.Ping(ctx)
	healthy := err == nil

	if was := p.healthy.Swap(healthy); was != healthy {
		if healthy {
			log.Println("Upstream probe: SpaceX API reachable again")
		} else {
			log.Printf("Upstream probe: SpaceX API unreachable: %v", err)
		}
	}
	metrics.SetUpstreamUp(healthy)
	return healthy
}

// Healthy returns the result of the most recent check.
func (p *UpstreamProbe) Healthy() bool {
	return p.healthy.Load()
}
