package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Evaluations served, by remote outcome (likely, unlikely, failed)
	EvaluationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "renewal_evaluations_total",
		Help: "Total number of renewal evaluations by remote prediction outcome",
	}, []string{"outcome"})

	// Latency of the remote classifier call
	PredictionLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "renewal_prediction_latency_seconds",
		Help:    "Latency of the remote renewal classifier call",
		Buckets: prometheus.DefBuckets,
	})

	PredictionErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "renewal_prediction_errors_total",
		Help: "Remote classifier failures by kind",
	}, []string{"kind"})

	LocalScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "renewal_local_score",
		Help:    "Distribution of local heuristic renewal scores",
		Buckets: prometheus.LinearBuckets(5, 10, 10),
	})

	RateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "renewal_rate_limited_total",
		Help: "Requests rejected by the evaluation rate limiter",
	})
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			EvaluationsTotal,
			PredictionLatency,
			PredictionErrors,
			LocalScore,
			RateLimited,
		)
	})
}
