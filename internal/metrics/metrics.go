package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Collector holds the sync pipeline's Prometheus metrics. A dedicated
// registry keeps tests free of global-registration collisions.
type Collector struct {
	registry *prometheus.Registry

	jobsEnqueued   prometheus.Counter
	jobsCompleted  prometheus.Counter
	jobsFailed     prometheus.Counter
	jobDuration    prometheus.Histogram
	matchesStored  prometheus.Counter
	matchesSkipped prometheus.Counter
	riotRequests   *prometheus.CounterVec
	jobsPending    prometheus.Gauge
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		jobsEnqueued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sync_jobs_enqueued_total",
			Help: "Total number of sync jobs enqueued",
		}),
		jobsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sync_jobs_completed_total",
			Help: "Total number of sync jobs completed successfully",
		}),
		jobsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sync_jobs_failed_total",
			Help: "Total number of sync jobs failed",
		}),
		jobDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sync_job_duration_seconds",
			Help:    "Sync job processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		matchesStored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sync_matches_stored_total",
			Help: "Total number of matches fetched and stored",
		}),
		matchesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sync_matches_skipped_total",
			Help: "Total number of match IDs skipped because they were already stored",
		}),
		riotRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "riot_requests_total",
			Help: "Total number of Riot API requests by outcome",
		}, []string{"outcome"}),
		jobsPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sync_jobs_pending",
			Help: "Current number of pending sync jobs",
		}),
	}

	c.registry.MustRegister(
		c.jobsEnqueued,
		c.jobsCompleted,
		c.jobsFailed,
		c.jobDuration,
		c.matchesStored,
		c.matchesSkipped,
		c.riotRequests,
		c.jobsPending,
	)

	return c
}

func (c *Collector) RecordEnqueue() {
	c.jobsEnqueued.Inc()
}

func (c *Collector) RecordCompleted(durationSeconds float64) {
	c.jobsCompleted.Inc()
	c.jobDuration.Observe(durationSeconds)
}

func (c *Collector) RecordFailed() {
	c.jobsFailed.Inc()
}

func (c *Collector) RecordMatchStored() {
	c.matchesStored.Inc()
}

func (c *Collector) RecordMatchSkipped() {
	c.matchesSkipped.Inc()
}

func (c *Collector) RecordRiotRequest(outcome string) {
	c.riotRequests.WithLabelValues(outcome).Inc()
}

func (c *Collector) SetPendingJobs(n int) {
	c.jobsPending.Set(float64(n))
}

// Handler serves the collector's registry in Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

var Module = fx.Provide(NewCollector)
