package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	extractionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skillscan_extractions_total",
		Help: "Number of documents processed.",
	})

	extractionSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "skillscan_extraction_duration_seconds",
		Help:    "End to end extraction latency per document.",
		Buckets: prometheus.DefBuckets,
	})

	candidatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillscan_candidates_total",
		Help: "Raw candidates produced, before merging and thresholding.",
	}, []string{"strategy"})

	strategyFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillscan_strategy_failures_total",
		Help: "Strategy errors and panics absorbed during extraction.",
	}, []string{"strategy"})

	recordsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skillscan_records_emitted_total",
		Help: "Skill records returned after merging and thresholding.",
	})
)
