package metrics

import "github.com/prometheus/client_golang/prometheus"

// Matching and ranking Prometheus metrics.
var (
	SimilarityRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "similarity_requests_total",
			Help:      "Calls to the external similarity service by outcome",
		},
		[]string{"status"}, // "ok" / "timeout" / "error" / "malformed"
	)

	SimilarityRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "similarity_request_duration_seconds",
			Help:      "External similarity call duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5},
		},
	)

	MatcherSelectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "matcher_selected_total",
			Help:      "Assessments by the matcher that produced the score",
		},
		[]string{"matcher"},
	)

	MatcherDeclinedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "matcher_declined_total",
			Help:      "Times a matcher passed to the next one in the chain",
		},
		[]string{"matcher"},
	)

	RankingCandidatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "ranking_candidates_total",
			Help:      "Candidates seen by the ranking stage by outcome",
		},
		[]string{"outcome"}, // "ranked" / "unqualified" / "scoring_failed" / "duplicate"
	)

	RankingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "ranking_duration_seconds",
			Help:      "End-to-end ranking run duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var engineMetricsRegistered bool

// RegisterEngineMetrics registers matching and ranking metrics. Must be called once from main.
func RegisterEngineMetrics() {
	if engineMetricsRegistered {
		return
	}
	prometheus.MustRegister(SimilarityRequestsTotal)
	prometheus.MustRegister(SimilarityRequestDuration)
	prometheus.MustRegister(MatcherSelectedTotal)
	prometheus.MustRegister(MatcherDeclinedTotal)
	prometheus.MustRegister(RankingCandidatesTotal)
	prometheus.MustRegister(RankingDuration)
	engineMetricsRegistered = true
}
