package app

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Record outcomes reported on integration_records_total.
const (
	OutcomeProcessed = "processed"
	OutcomeSkipped   = "skipped"
	OutcomeInvalid   = "invalid"
	OutcomeAborted   = "aborted"
)

type Metrics struct {
	records  metric.Int64Counter
	attempts metric.Int64Counter
	duration metric.Float64Histogram
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	records, err := meter.Int64Counter("integration_records_total",
		metric.WithDescription("Intake records by outcome"))
	if err != nil {
		return nil, err
	}
	attempts, err := meter.Int64Counter("integration_remote_attempts_total",
		metric.WithDescription("Attempts of each remote step, retries included"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("integration_batch_duration_seconds",
		metric.WithDescription("Wall time of a batch run"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}
	return &Metrics{records: records, attempts: attempts, duration: duration}, nil
}

func (m *Metrics) recordOutcome(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.records.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *Metrics) stepAttempt(ctx context.Context, step string) {
	if m == nil {
		return
	}
	m.attempts.Add(ctx, 1, metric.WithAttributes(attribute.String("step", step)))
}

func (m *Metrics) batchDone(ctx context.Context, start time.Time, failed bool) {
	if m == nil {
		return
	}
	m.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attribute.Bool("failed", failed)))
}
