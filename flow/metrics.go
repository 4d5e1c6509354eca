package flow

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "preflow_solves_total",
		Help: "Cumulative number of completed max-flow solves.",
	}, []string{"algorithm"})
	pushTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "preflow_push_total",
		Help: "Cumulative number of push operations, including source saturation.",
	})
	relabelTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "preflow_relabel_total",
		Help: "Cumulative number of relabel operations.",
	})
	augmentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "preflow_augment_total",
		Help: "Cumulative number of augmenting paths applied by Edmonds-Karp and Dinic.",
	})
	invalidInputTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "preflow_invalid_input_total",
		Help: "Cumulative number of solves rejected by input validation.",
	})
	solveDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "preflow_solve_duration_seconds",
		Help: "Duration required to solve for maximum flow.",
	}, []string{"algorithm"})
)

// observeSolve records a completed solve.
func observeSolve(algorithm string, stats Stats, start time.Time) {
	solvesTotal.WithLabelValues(algorithm).Inc()
	pushTotal.Add(float64(stats.Pushes))
	relabelTotal.Add(float64(stats.Relabels))
	augmentTotal.Add(float64(stats.Augmentations))
	solveDurationSeconds.WithLabelValues(algorithm).Observe(time.Since(start).Seconds())
}
