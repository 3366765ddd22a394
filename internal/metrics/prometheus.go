// Package metrics records wizard and collaborator activity in Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/justsurfingit/maya-pricing/internal/wizard"
)

// Recorder implements wizard.Observer and times external calls.
type Recorder struct {
	gatherer prometheus.Gatherer

	stepsTotal     *prometheus.CounterVec
	fallbacksTotal *prometheus.CounterVec
	callDuration   *prometheus.HistogramVec
	sessionsOpened prometheus.Counter
}

var _ wizard.Observer = (*Recorder)(nil)

// NewRecorder registers the collectors on reg. Pass prometheus.NewRegistry()
// in tests to avoid duplicate registration.
func NewRecorder(reg *prometheus.Registry) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		gatherer: reg,
		stepsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "maya_wizard_steps_total",
				Help: "Wizard events by step and outcome",
			},
			[]string{"step", "outcome"},
		),
		fallbacksTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "maya_collaborator_fallbacks_total",
				Help: "External calls that failed and were replaced by a fallback",
			},
			[]string{"collaborator"},
		),
		callDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "maya_collaborator_call_duration_seconds",
				Help:    "Duration of external collaborator calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"collaborator", "status"},
		),
		sessionsOpened: f.NewCounter(prometheus.CounterOpts{
			Name: "maya_wizard_sessions_opened_total",
			Help: "Pricing widget sessions opened",
		}),
	}
}

func (r *Recorder) StepCompleted(step wizard.Step, outcome string) {
	r.stepsTotal.WithLabelValues(string(step), outcome).Inc()
}

func (r *Recorder) Fallback(collaborator string) {
	r.fallbacksTotal.WithLabelValues(collaborator).Inc()
}

func (r *Recorder) SessionOpened() {
	r.sessionsOpened.Inc()
}

// ObserveCall records how long an external call took and whether it failed.
func (r *Recorder) ObserveCall(collaborator string, started time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.callDuration.WithLabelValues(collaborator, status).Observe(time.Since(started).Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
