package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PostQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodshare_post_queries_total",
			Help: "Total number of dashboard post queries served",
		},
		[]string{"role", "endpoint"},
	)

	PostQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodshare_post_query_duration_seconds",
			Help:    "Time spent filtering and paginating posts",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		},
		[]string{"role"},
	)

	PostQueryMatches = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodshare_post_query_matches",
			Help:    "Number of posts matching a dashboard filter",
			Buckets: []float64{0, 1, 5, 12, 24, 50, 100, 250, 1000},
		},
		[]string{"role"},
	)

	SnapshotRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodshare_snapshot_refreshes_total",
			Help: "Post snapshot refresh attempts by result",
		},
		[]string{"result"},
	)

	SnapshotPosts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "foodshare_snapshot_posts",
			Help: "Number of posts in the current snapshot",
		},
	)

	FilterWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodshare_filter_writes_total",
			Help: "Persisted dashboard filter writes by role, mode and result",
		},
		[]string{"role", "mode", "result"},
	)
)

var HandlerPanics = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "foodshare_handler_panics_total",
		Help: "Panics recovered while serving a route",
	},
	[]string{"route"},
)
