// Package metrics defines and registers all custom Prometheus metrics for
// the barber discovery API. It is the single source of truth for metric
// names, labels, and help strings, and depends on no other internal package
// so every layer may increment counters freely.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "barbers"

// BarberSearchesTotal counts executed catalog searches.
var BarberSearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of barber catalog searches executed.",
	},
)

// SessionsCreatedTotal counts successfully created booking sessions.
var SessionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of booking sessions created.",
	},
)

// ImageSearchesTotal counts image similarity searches.
// Label:
//   - result: "ok" or "error"
var ImageSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_searches_total",
		Help:      "Total number of image similarity searches, by result.",
	},
	[]string{"result"},
)

// EmbeddingCacheTotal counts embedding cache lookups.
// Label:
//   - result: "hit" (vector served from cache) or "miss" (embedder called)
var EmbeddingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "embedding_cache_total",
		Help:      "Total number of embedding cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
