package auditor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Audit run metrics
	auditRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lens_audit_run_duration_seconds",
			Help:    "Time taken to complete a full audit run",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	auditRunTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lens_audit_run_total",
			Help: "Total number of audit run attempts",
		},
		[]string{"status"}, // success or error
	)

	auditPhaseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lens_audit_phase_duration_seconds",
			Help:    "Time taken by individual collection phases",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"phase"}, // core, cluster-info
	)

	auditResourceCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lens_audit_resources",
			Help: "Number of resources in the last collected inventory",
		},
		[]string{"kind"}, // pods, configmaps, nodes
	)

	auditPhaseErrors = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lens_audit_phase_errors",
			Help: "Number of phase errors in the last audit run",
		},
	)
)
