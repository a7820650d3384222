package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the bursary workflow.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	ApplicationsSubmitted prometheus.Counter
	ValidationFailures    prometheus.Counter
	UploadFailures        prometheus.Counter
	Reviews               *prometheus.CounterVec
	ReviewConflicts       prometheus.Counter
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in main
// and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ApplicationsSubmitted: f.NewCounter(prometheus.CounterOpts{
			Name: "bursary_applications_submitted_total",
			Help: "Total number of applications stored as pending",
		}),
		ValidationFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "bursary_application_validation_failures_total",
			Help: "Total number of submissions rejected by field validation",
		}),
		UploadFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "bursary_document_upload_failures_total",
			Help: "Total number of document uploads the blob store refused",
		}),
		Reviews: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bursary_reviews_total",
			Help: "Total number of completed review decisions",
		}, []string{"decision"}),
		ReviewConflicts: f.NewCounter(prometheus.CounterOpts{
			Name: "bursary_review_conflicts_total",
			Help: "Total number of review attempts on applications that were no longer pending",
		}),
	}
}

func (m *Metrics) IncrementSubmitted() {
	if m == nil {
		return
	}
	m.ApplicationsSubmitted.Inc()
}

func (m *Metrics) IncrementValidationFailures() {
	if m == nil {
		return
	}
	m.ValidationFailures.Inc()
}

func (m *Metrics) IncrementUploadFailures() {
	if m == nil {
		return
	}
	m.UploadFailures.Inc()
}

func (m *Metrics) IncrementReviews(decision string) {
	if m == nil {
		return
	}
	m.Reviews.WithLabelValues(decision).Inc()
}

func (m *Metrics) IncrementReviewConflicts() {
	if m == nil {
		return
	}
	m.ReviewConflicts.Inc()
}
