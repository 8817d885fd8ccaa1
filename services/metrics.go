package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gbsMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gbs",
		Subsystem: "assignment",
		Name:      "mutations_total",
		Help:      "Total number of committed assignment mutations broken down by operation.",
	}, []string{"operation"})

	gbsWriteConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gbs",
		Name:      "write_conflicts_total",
		Help:      "Total number of rejected writes that would break a history invariant, by kind.",
	}, []string{"kind"})

	gbsReorganizations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gbs",
		Subsystem: "reorganization",
		Name:      "runs_total",
		Help:      "Total number of reorganization runs broken down by mode and result.",
	}, []string{"mode", "result"})

	gbsAttendanceRows = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gbs",
		Subsystem: "attendance",
		Name:      "rows_written_total",
		Help:      "Total number of attendance rows written by weekly submissions.",
	})
)

func recordMutation(operation string) {
	gbsMutations.WithLabelValues(operation).Inc()
}

func recordWriteConflict(kind string) {
	if kind == "" {
		kind = "other"
	}
	gbsWriteConflicts.WithLabelValues(kind).Inc()
}

func recordReorganization(dryRun bool, err error) {
	mode := "apply"
	if dryRun {
		mode = "dry_run"
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	gbsReorganizations.WithLabelValues(mode, result).Inc()
}
