package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PollsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gistwatch_polls_total",
		Help: "Completed gist list polls",
	})
	PollErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gistwatch_poll_errors_total",
		Help: "Failed identity checks and gist list polls",
	})
	AlertsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gistwatch_alerts_total",
		Help: "Detected collection changes that produced an alert",
	})
	SinkFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gistwatch_sink_failures_total",
		Help: "Notification deliveries that failed, by sink",
	}, []string{"sink"})
	BaselineCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "gistwatch_baseline_count",
		Help: "Collection size currently used for comparison",
	})
	RateLimitRemaining = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "gistwatch_ratelimit_remaining",
		Help: "Remaining API requests reported by the last response",
	})
)

// MustRegister registers every gistwatch collector.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		PollsTotal,
		PollErrors,
		AlertsTotal,
		SinkFailures,
		BaselineCount,
		RateLimitRemaining,
	)
}

// ObservePoll records the outcome of one poll.
func ObservePoll(err error) {
	if err != nil {
		PollErrors.Inc()
		return
	}
	PollsTotal.Inc()
}

// SetBaseline publishes the current baseline.
func SetBaseline(count int) {
	BaselineCount.Set(float64(count))
}

// SetRateLimitRemaining publishes the last reported API quota.
func SetRateLimitRemaining(remaining int) {
	RateLimitRemaining.Set(float64(remaining))
}

// IncAlert counts one dispatched alert.
func IncAlert() {
	AlertsTotal.Inc()
}

// IncSinkFailure counts one failed delivery for sink.
func IncSinkFailure(sink string) {
	if sink == "" {
		sink = "unknown"
	}
	SinkFailures.WithLabelValues(sink).Inc()
}
