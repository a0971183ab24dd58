// Package metrics defines and registers the custom Prometheus metrics of the
// catalog service. It is the single source of truth for metric names, labels
// and help strings.
//
// Metrics register with the default registry on package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "compass"

// ── Fetch metrics ─────────────────────────────────────────────────────────────

// FetchesTotal counts list fetches against the record source.
// Labels:
//   - collection: "resources" or "roadmaps"
//   - result: "ok" or "error"
var FetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetches_total",
		Help:      "Total number of list fetches, by collection and result.",
	},
	[]string{"collection", "result"},
)

// FetchDuration measures how long one list fetch takes.
// Label:
//   - collection: "resources" or "roadmaps"
var FetchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "fetch_duration_seconds",
		Help:      "Duration of list fetches against the record source.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"collection"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CacheLookupsTotal counts snapshot cache lookups.
// Labels:
//   - collection: "resources" or "roadmaps"
//   - result: "hit", "miss" or "error"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of snapshot cache lookups, by collection and result.",
	},
	[]string{"collection", "result"},
)

// ── Browser metrics ───────────────────────────────────────────────────────────

// FilteredResults observes how many resources survive a browser filter.
// Label:
//   - category: the selected category ("All" included)
var FilteredResults = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "filtered_results",
		Help:      "Number of resources shown after filtering.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
	},
	[]string{"category"},
)
