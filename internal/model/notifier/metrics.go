package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	jobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expense_bot",
			Subsystem: "scheduler",
			Name:      "job_runs_total",
		},
		[]string{"job", "status"},
	)
	skippedUsers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expense_bot",
			Subsystem: "scheduler",
			Name:      "skipped_users_total",
		},
		[]string{"job"},
	)
)

func observeRun(job string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	jobRuns.WithLabelValues(job, status).Inc()
}
