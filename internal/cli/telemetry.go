package cli

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter. Without an SDK installed both are no-ops.
var (
	tracer = otel.Tracer("lvltree.cli")
	meter  = otel.Meter("lvltree.cli")
)

var (
	runTotal    metric.Int64Counter
	stepTotal   metric.Int64Counter
	runDuration metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		runTotal, err = meter.Int64Counter(
			"lvltree_runs_total",
			metric.WithDescription("Search runs by strategy and terminal status"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		stepTotal, err = meter.Int64Counter(
			"lvltree_steps_total",
			metric.WithDescription("Nodes processed across all runs"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		runDuration, err = meter.Float64Histogram(
			"lvltree_run_duration_seconds",
			metric.WithDescription("Wall time of a search run"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
		}
	})

	return metricsErr
}

// recordRun reports one finished run. Instrument errors are not fatal.
func recordRun(ctx context.Context, strategy, status string, steps int, elapsed time.Duration) {
	if initMetrics() != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("strategy", strategy),
		attribute.String("status", status),
	)
	runTotal.Add(ctx, 1, attrs)
	stepTotal.Add(ctx, int64(steps), attrs)
	runDuration.Record(ctx, elapsed.Seconds(), attrs)
}
