// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter. Without an installed SDK both are no-ops.
var (
	tracer = otel.Tracer("socnet.engine")
	meter  = otel.Meter("socnet.engine")
)

var (
	passDuration metric.Float64Histogram
	passTotal    metric.Int64Counter
	cacheHits    metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. Safe to call concurrently.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		passDuration, err = meter.Float64Histogram(
			"socnet_pass_duration_seconds",
			metric.WithDescription("Duration of analytic recomputations"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		passTotal, err = meter.Int64Counter(
			"socnet_passes_total",
			metric.WithDescription("Number of analytic recomputations"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		cacheHits, err = meter.Int64Counter(
			"socnet_cache_hits_total",
			metric.WithDescription("Number of queries served from the version cache"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// recordPass records one recomputation.
func recordPass(ctx context.Context, kind string, relation int, d time.Duration, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.Int("relation", relation),
		attribute.Bool("success", success),
	)
	passDuration.Record(ctx, d.Seconds(), attrs)
	passTotal.Add(ctx, 1, attrs)
}

// recordHit records one cache hit.
func recordHit(ctx context.Context, kind string) {
	if err := initMetrics(); err != nil {
		return
	}
	cacheHits.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// startPassSpan opens the span of one recomputation.
func startPassSpan(ctx context.Context, kind, passID string, relation int, version uint64) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Engine."+kind,
		trace.WithAttributes(
			attribute.String("socnet.pass_id", passID),
			attribute.Int("socnet.relation", relation),
			attribute.Int64("socnet.version", int64(version)),
		),
	)
}

// endPassSpan closes span with the outcome of the pass.
func endPassSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
