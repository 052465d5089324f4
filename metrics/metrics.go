// Package metrics holds the engine's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersAcceptedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_orders_accepted_total",
			Help: "Orders accepted into the shared book",
		},
		[]string{"symbol", "side"},
	)

	OrdersRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_orders_rejected_total",
			Help: "Orders rejected before any book mutation",
		},
		[]string{"reason"},
	)

	ExecutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_executions_total",
			Help: "Executions produced by crossing the book",
		},
		[]string{"symbol"},
	)

	ExecutedQtyTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_executed_quantity_total",
			Help: "Total quantity filled across executions",
		},
		[]string{"symbol"},
	)

	ExecutionsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_executions_dropped_total",
			Help: "Executions that could not be queued for broadcast",
		},
	)

	MatchRounds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "engine_match_executions_per_round",
			Help:    "Executions produced by one MatchOrders pass",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	TickersRegistered = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "engine_tickers_registered",
			Help: "Distinct symbols registered in the ticker table",
		},
	)
)
