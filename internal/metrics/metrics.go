package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peorisk_http_requests_total",
			Help: "HTTP requests by route pattern, method and status code",
		},
		[]string{"route", "method", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "peorisk_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	AssessmentsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peorisk_assessments_submitted_total",
			Help: "Assessment submissions by outcome",
		},
		[]string{"outcome"},
	)

	CompanyLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peorisk_company_lookups_total",
			Help: "Company registry lookups by state and outcome",
		},
		[]string{"state", "outcome"},
	)

	QuestionSetSaves = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "peorisk_question_set_saves_total",
			Help: "Committed question set replacements",
		},
	)

	WizardSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "peorisk_wizard_sessions_active",
			Help: "Wizard sessions currently held in memory",
		},
	)
)
