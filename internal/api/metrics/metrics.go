// Package metrics defines and registers all custom Prometheus metrics
// for the microblog services. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics are registered with the default registry via promauto at
// package init; expose them with the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "microblog"

// ── Tweet metrics ─────────────────────────────────────────────────────────────

// TweetsCreatedTotal counts tweets successfully created.
var TweetsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tweets_created_total",
		Help:      "Total number of tweets created.",
	},
)

// ── Author directory metrics ──────────────────────────────────────────────────

// AuthorLookupsTotal counts author resolutions against the identity
// directory.
// Label:
//   - outcome: "ok" (resolved) or "fallback" (degraded to the synthetic summary)
var AuthorLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "author_lookups_total",
		Help:      "Total number of author directory lookups, labelled by outcome (ok/fallback).",
	},
	[]string{"outcome"},
)

// AuthorLookupDuration measures how long a single directory lookup
// takes, including timed-out calls.
var AuthorLookupDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "author_lookup_duration_seconds",
		Help:      "Duration of identity directory lookups.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// AuthorCacheTotal counts author cache decisions.
// Label:
//   - result: "hit" (served from cache) or "miss" (resolved upstream)
var AuthorCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "author_cache_total",
		Help:      "Total number of author cache checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
