// Package metrics defines and registers all custom Prometheus metrics for
// the bookstore API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookstore"

// AuthRejectionsTotal counts requests rejected by the authentication gate.
// Label:
//   - reason: "missing_token", "invalid_token", "expired_token", or
//     "forbidden_role"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected before reaching a handler.",
	},
	[]string{"reason"},
)

// OrdersPlacedTotal counts successfully placed orders (one per cart item).
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed.",
	},
)

// OrderStatusUpdatesTotal counts order lifecycle transitions.
// Label:
//   - status: the target status applied (e.g. "Out for delivery")
var OrderStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_status_updates_total",
		Help:      "Total number of order status updates, by target status.",
	},
	[]string{"status"},
)

// BookCacheTotal counts catalog cache lookups.
// Label:
//   - result: "hit" or "miss"
var BookCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "book_cache_total",
		Help:      "Total number of catalog cache lookups, labelled by result.",
	},
	[]string{"result"},
)
