package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "hydro_"

	ResultSuccess  = "success"
	ResultError    = "error"
	ResultRejected = "rejected"
)

var (
	registerOnce sync.Once

	commandsEnqueued *prometheus.CounterVec
	commandsClaimed  prometheus.Counter
	commandsExpired  prometheus.Counter
	claimLatency     prometheus.Histogram

	alertsEmitted      *prometheus.CounterVec
	cooldownSuppressed *prometheus.CounterVec

	thresholdCache *prometheus.CounterVec

	ingestRequests *prometheus.CounterVec
	ingestLatency  *prometheus.HistogramVec

	exportTotal *prometheus.CounterVec
)

// Init registers the service metrics with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		commandsEnqueued = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "commands_enqueued_total",
				Help: "Total commands enqueued by priority",
			},
			[]string{"priority"},
		)
		commandsClaimed = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "commands_claimed_total",
				Help: "Total commands handed to devices",
			},
		)
		commandsExpired = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "commands_expired_total",
				Help: "Total pending commands marked expired by the sweeper",
			},
		)
		claimLatency = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "command_claim_latency_seconds",
				Help:    "Latency of the atomic claim in seconds",
				Buckets: prometheus.DefBuckets,
			},
		)

		alertsEmitted = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "alerts_emitted_total",
				Help: "Total alerts persisted by severity",
			},
			[]string{"severity"},
		)
		cooldownSuppressed = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "alerts_cooldown_suppressed_total",
				Help: "Alerts suppressed by the cooldown window by condition",
			},
			[]string{"condition"},
		)

		thresholdCache = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "threshold_cache_lookups_total",
				Help: "Threshold cache lookups by outcome",
			},
			[]string{"outcome"},
		)

		ingestRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "ingest_requests_total",
				Help: "Total telemetry ingest requests by result",
			},
			[]string{"result"},
		)
		ingestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "ingest_latency_seconds",
				Help:    "Telemetry ingest latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Total data exports by format and result",
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			commandsEnqueued,
			commandsClaimed,
			commandsExpired,
			claimLatency,
			alertsEmitted,
			cooldownSuppressed,
			thresholdCache,
			ingestRequests,
			ingestLatency,
			exportTotal,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func IncCommandEnqueued(priority string) {
	if commandsEnqueued == nil {
		return
	}
	commandsEnqueued.WithLabelValues(priority).Inc()
}

func AddCommandsClaimed(count int, duration time.Duration) {
	if commandsClaimed == nil {
		return
	}
	if count > 0 {
		commandsClaimed.Add(float64(count))
	}
	claimLatency.Observe(duration.Seconds())
}

func AddCommandsExpired(count int64) {
	if commandsExpired == nil || count <= 0 {
		return
	}
	commandsExpired.Add(float64(count))
}

func IncAlertEmitted(severity string) {
	if alertsEmitted == nil {
		return
	}
	alertsEmitted.WithLabelValues(severity).Inc()
}

func IncCooldownSuppressed(condition string) {
	if cooldownSuppressed == nil {
		return
	}
	cooldownSuppressed.WithLabelValues(condition).Inc()
}

// IncThresholdCache records a cache lookup; outcome is hit, miss or fallback.
func IncThresholdCache(outcome string) {
	if thresholdCache == nil {
		return
	}
	thresholdCache.WithLabelValues(outcome).Inc()
}

func ObserveIngest(result string, duration time.Duration) {
	if ingestRequests == nil {
		return
	}
	ingestRequests.WithLabelValues(result).Inc()
	ingestLatency.WithLabelValues(result).Observe(duration.Seconds())
}

func IncExport(format, result string) {
	if exportTotal == nil {
		return
	}
	exportTotal.WithLabelValues(format, result).Inc()
}
