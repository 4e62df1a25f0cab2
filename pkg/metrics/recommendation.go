package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendation HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of the recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Recommendation requests served, labeled by recommendation type
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommendation requests served",
	}, []string{"recommendation_type"})

	// Simulated shopping sessions generated, labeled by shopping behavior
	SessionsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sessions_generated_total",
		Help: "Total number of simulated shopping sessions generated",
	}, []string{"behavior"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		SessionsGenerated,
	)
}
