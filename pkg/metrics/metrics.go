package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache lookup outcomes.
const (
	CacheHit     = "hit"
	CacheMiss    = "miss"
	CacheExpired = "expired"
	CacheCorrupt = "corrupt"
	CacheError   = "error"
)

var (
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lolscope_cache_lookups_total",
			Help: "Cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lolscope_provider_requests_total",
			Help: "Requests sent to the match data provider by endpoint and status class",
		},
		[]string{"endpoint", "status"},
	)

	ProviderRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lolscope_provider_retries_total",
			Help: "Retried provider requests by endpoint",
		},
		[]string{"endpoint"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lolscope_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	DroppedMatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lolscope_dropped_matches_total",
			Help: "Match details that failed to load and were left out of a player lookup",
		},
	)

	PlayerLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lolscope_player_lookups_total",
			Help: "Player lookups by result",
		},
		[]string{"result"},
	)
)

// RecordCacheLookup counts a cache lookup outcome.
func RecordCacheLookup(outcome string) {
	CacheLookups.WithLabelValues(outcome).Inc()
}

// RecordProviderRequest counts a provider response, status 0 meaning no response.
func RecordProviderRequest(endpoint string, status int) {
	ProviderRequests.WithLabelValues(endpoint, StatusClass(status)).Inc()
}

// StatusClass groups a HTTP status code as 2xx, 4xx and so on.
func StatusClass(status int) string {
	if status <= 0 {
		return "transport"
	}
	return strconv.Itoa(status/100) + "xx"
}
