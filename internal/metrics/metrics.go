package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"launchstats/internal/models"
)

var (
	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchstats_upstream_requests_total",
			Help: "Total upstream SpaceX API requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "launchstats_upstream_request_duration_seconds",
			Help:    "Upstream SpaceX API request latency by endpoint",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	aggregations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchstats_aggregations_total",
			Help: "Total aggregation requests by view and outcome",
		},
		[]string{"view", "outcome"},
	)

	upstreamUp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "launchstats_upstream_up",
			Help: "Whether the last upstream probe reached the SpaceX API (1) or not (0)",
		},
	)

	recordedRunsDesc = prometheus.NewDesc(
		"launchstats_recorded_runs",
		"Aggregation runs stored in run history by view and outcome",
		[]string{"view", "outcome"},
		nil,
	)
)

// RunCounter reads stored run counts. Implemented by *db.DB.
type RunCounter interface {
	CountRuns(ctx context.Context) ([]models.RunCount, error)
}

// RunCollector is a custom Prometheus collector that reads run history
// counts from the database on each scrape.
type RunCollector struct {
	runs RunCounter
}

// Describe sends the metric descriptor to the channel.
func (c *RunCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- recordedRunsDesc
}

// Collect queries the run history and emits one gauge per view/outcome.
func (c *RunCollector) Collect(ch chan<- prometheus.Metric) {
	counts, err := c.runs.CountRuns(context.Background())
	if err != nil {
		slog.Error("failed to collect run history metrics", "error", err)
		return
	}
	for _, rc := range counts {
		ch <- prometheus.MustNewConstMetric(
			recordedRunsDesc,
			prometheus.GaugeValue,
			float64(rc.Count),
			rc.View,
			rc.Outcome,
		)
	}
}

var initOnce sync.Once

// Init registers all collectors with the default registry.
// runs may be nil when run history is disabled. Must be called once at startup.
func Init(runs RunCounter) {
	initOnce.Do(func() {
		prometheus.MustRegister(upstreamRequests, upstreamDuration, aggregations, upstreamUp)
		if runs != nil {
			prometheus.MustRegister(&RunCollector{runs: runs})
		}
	})
}

// ObserveUpstream records one upstream call.
func ObserveUpstream(endpoint, outcome string, elapsed time.Duration) {
	upstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	upstreamDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// RecordAggregation counts one aggregation request.
func RecordAggregation(view, outcome string) {
	aggregations.WithLabelValues(view, outcome).Inc()
}

// SetUpstreamUp records the result of the latest upstream probe.
func SetUpstreamUp(up bool) {
	if up {
		upstreamUp.Set(1)
		return
	}
	upstreamUp.Set(0)
}
