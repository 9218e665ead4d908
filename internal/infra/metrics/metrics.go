package metrics

import (
	"net/http"
	"strconv"
	"time"

	"museum-booking/internal/domain/booking"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "museum_booking"

// Metrics implements the engine and verification recorders on a private registry.
type Metrics struct {
	registry      *prometheus.Registry
	attempts      *prometheus.CounterVec
	attemptTime   *prometheus.HistogramVec
	escalations   *prometheus.CounterVec
	tiersTried    prometheus.Histogram
	verifications *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strategy_attempts_total",
			Help:      "Booking strategy attempts by tier and outcome.",
		}, []string{"tier", "success"}),
		attemptTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "strategy_attempt_seconds",
			Help:      "Time spent in one strategy attempt.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"tier"}),
		escalations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "escalations_total",
			Help:      "Completed escalations by terminal tier.",
		}, []string{"terminal", "success"}),
		tiersTried: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "escalation_tiers_tried",
			Help:      "Number of tiers tried per escalation.",
			Buckets:   prometheus.LinearBuckets(1, 1, 6),
		}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verification_lookups_total",
			Help:      "Platform verification lookups by result.",
		}, []string{"found"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.attempts,
		m.attemptTime,
		m.escalations,
		m.tiersTried,
		m.verifications,
	)
	return m
}

func (m *Metrics) ObserveAttempt(tier booking.Provenance, success bool, elapsed time.Duration) {
	m.attempts.WithLabelValues(tier.String(), strconv.FormatBool(success)).Inc()
	m.attemptTime.WithLabelValues(tier.String()).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveEscalation(terminal booking.Provenance, success bool, tiersTried int) {
	m.escalations.WithLabelValues(terminal.String(), strconv.FormatBool(success)).Inc()
	m.tiersTried.Observe(float64(tiersTried))
}

func (m *Metrics) ObserveVerification(found bool) {
	m.verifications.WithLabelValues(strconv.FormatBool(found)).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
