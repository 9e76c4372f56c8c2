// Package metrics defines all custom Prometheus metrics for the foodshare
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "foodshare"

// ListingsCreatedTotal counts newly created food listings.
var ListingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of food listings created.",
	},
)

// RequestsFiledTotal counts attempts to file a request against a listing.
// Label:
//   - result: "ok", "not_found", "conflict" (lost the claim race), or "error"
var RequestsFiledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_filed_total",
		Help:      "Total number of food request attempts, labelled by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts rejected guard checks.
// Label:
//   - reason: "missing_token", "invalid_token", or "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication or authorization checks.",
	},
	[]string{"reason"},
)

// FeaturedCacheTotal counts featured-listings cache lookups.
// Label:
//   - result: "hit" or "miss"
var FeaturedCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "featured_cache_total",
		Help:      "Total number of featured cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
