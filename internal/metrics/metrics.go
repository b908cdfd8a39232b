// Package metrics declares the prometheus instruments for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis pipeline metrics
var (
	// AnalysesTotal tracks completed analyses by resulting sentiment band
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibecheck_analyses_total",
			Help: "Completed analyses by sentiment band",
		},
		[]string{"sentiment"},
	)

	// RequestDuration tracks request latency per endpoint in seconds
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vibecheck_request_duration_seconds",
			Help:    "HTTP request duration per endpoint in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
	)
)

// External collaborator metrics
var (
	// ExternalCallsTotal tracks calls to external models by model and outcome
	ExternalCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibecheck_external_calls_total",
			Help: "External model calls by model and status",
		},
		[]string{"model", "status"},
	)

	// ExternalCallDuration tracks external model call latency in seconds
	ExternalCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vibecheck_external_call_duration_seconds",
			Help:    "External model call duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"model"},
	)

	// CircuitBreakerStateChanges tracks breaker transitions by component and new state
	CircuitBreakerStateChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vibecheck_circuit_breaker_state_changes_total",
			Help: "Circuit breaker state transitions by component and new state",
		},
		[]string{"component", "state"},
	)

	// CircuitBreakerState tracks current breaker state (0=closed, 1=half-open, 2=open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vibecheck_circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"component"},
	)
)

// Enhance cache metrics
var (
	// EnhanceCacheHits tracks enhance responses served from cache
	EnhanceCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vibecheck_enhance_cache_hits_total",
			Help: "Enhance responses served from the in-memory cache",
		},
	)

	// EnhanceCacheMisses tracks enhance requests that went to the collaborator
	EnhanceCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vibecheck_enhance_cache_misses_total",
			Help: "Enhance requests that missed the in-memory cache",
		},
	)
)
