// Package telemetry records verification outcomes as Prometheus metrics. It
// wraps a verifier.Service so the verification core itself stays free of
// side effects.
package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/specialistvlad/guardian/internal/scoring"
	"github.com/specialistvlad/guardian/internal/verifier"
)

const (
	OutcomeOK          = "ok"
	OutcomeUnknownDish = "unknown_dish"
	OutcomeMalformed   = "malformed_submission"
	OutcomeError       = "error"
)

// unknownDishLabel replaces ids that are not in the catalog so arbitrary
// input cannot grow label cardinality.
const unknownDishLabel = "_unknown"

// Metrics holds the collectors.
type Metrics struct {
	verifications *prometheus.CounterVec
	violations    *prometheus.CounterVec
	score         *prometheus.HistogramVec
	duration      *prometheus.HistogramVec
}

// NewMetrics registers the collectors with registerer, or with the default
// registerer when nil.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &Metrics{
		verifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guardian_verifications_total",
				Help: "Total number of verification calls by outcome",
			},
			[]string{"dish", "outcome"},
		),
		violations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guardian_violations_total",
				Help: "Total number of violations reported, by kind",
			},
			[]string{"dish", "kind"},
		),
		score: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "guardian_authenticity_score",
				Help:    "Distribution of authenticity scores",
				Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			},
			[]string{"dish"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "guardian_verification_duration_seconds",
				Help:    "Duration of verification calls in seconds",
				Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
			},
			[]string{"outcome"},
		),
	}
}

// ObserveVerification records one call.
func (m *Metrics) ObserveVerification(dishID string, report *scoring.Report, err error, duration time.Duration) {
	outcome := Outcome(err)
	if outcome == OutcomeUnknownDish {
		dishID = unknownDishLabel
	}
	m.verifications.WithLabelValues(dishID, outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(duration.Seconds())
	if report == nil {
		return
	}
	m.score.WithLabelValues(dishID).Observe(float64(report.Score()))
	for _, v := range report.Violations() {
		m.violations.WithLabelValues(dishID, string(v.Kind)).Inc()
	}
}

// Outcome classifies a verification error into a label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, verifier.ErrUnknownDish):
		return OutcomeUnknownDish
	case errors.Is(err, verifier.ErrMalformedSubmission):
		return OutcomeMalformed
	}
	return OutcomeError
}

// Observed is a verifier.Service that records metrics for every call.
type Observed struct {
	next    verifier.Service
	metrics *Metrics
}

var _ verifier.Service = (*Observed)(nil)

// Observe wraps next.
func Observe(next verifier.Service, metrics *Metrics) *Observed {
	return &Observed{next: next, metrics: metrics}
}

// VerifyJSON implements verifier.Service.
func (o *Observed) VerifyJSON(ctx context.Context, dishID string, candidate []byte) (*scoring.Report, error) {
	start := time.Now()
	report, err := o.next.VerifyJSON(ctx, dishID, candidate)
	o.metrics.ObserveVerification(dishID, report, err, time.Since(start))
	return report, err
}

// ListDishes implements verifier.Service.
func (o *Observed) ListDishes() []string { return o.next.ListDishes() }
