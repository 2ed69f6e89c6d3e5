// Package app is the integration service use case: it reads a batch,
// provisions a customer and places an order for every record, correlates the
// order id and writes the correlated triples once the batch is done.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/jcmexdev/ecommerce-integration/internal/coordinator"
	"github.com/jcmexdev/ecommerce-integration/internal/coordinator/runlog"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/config"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/ports"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/interceptors"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/retry"
)

var tracer = otel.Tracer("integration-service/app")

// ErrBatchAborted is returned when an invalid record stops the batch under
// the abort policy. Nothing is written to the sink in that case.
var ErrBatchAborted = errors.New("batch aborted")

var _ ports.BatchRunner = (*Orchestrator)(nil)

type Dependencies struct {
	Source      ports.RecordSource
	Sink        ports.Sink
	Provisioner *CustomerProvisioner
	Placer      *OrderPlacer
	Logger      *slog.Logger

	// Optional.
	Publisher ports.Publisher
	RunLog    runlog.Repository
	Metrics   *Metrics
}

type Settings struct {
	StepPolicy          retry.Policy
	RecordPolicy        retry.Policy
	Concurrency         int
	InvalidRecordPolicy config.InvalidRecordPolicy
}

// SettingsFromConfig derives the orchestrator settings from the service
// configuration. Both retry layers share the configured delay.
func SettingsFromConfig(cfg config.Config) Settings {
	return Settings{
		StepPolicy:          cfg.Retry.Policy(),
		RecordPolicy:        retry.Policy{MaxAttempts: cfg.RecordMaxAttempts, Delay: cfg.Retry.Delay},
		Concurrency:         cfg.BatchConcurrency,
		InvalidRecordPolicy: cfg.InvalidRecordPolicy,
	}
}

// Orchestrator runs batches one at a time.
type Orchestrator struct {
	deps     Dependencies
	settings Settings
	pipeline *coordinator.Orchestrator
	logger   *slog.Logger

	mu         sync.Mutex
	newBatchID func() string
}

func NewOrchestrator(deps Dependencies, settings Settings) *Orchestrator {
	if settings.Concurrency < 1 {
		settings.Concurrency = 1
	}
	if settings.InvalidRecordPolicy == "" {
		settings.InvalidRecordPolicy = config.PolicySkip
	}

	o := &Orchestrator{
		deps:       deps,
		settings:   settings,
		logger:     deps.Logger,
		newBatchID: uuid.NewString,
	}

	opts := []coordinator.Option{
		coordinator.WithRetryable(isRetryable),
		coordinator.WithAttemptHook(deps.Metrics.stepAttempt),
	}
	if deps.RunLog != nil {
		opts = append(opts, coordinator.WithRunLog(deps.RunLog))
	}
	o.pipeline = coordinator.NewOrchestrator(settings.StepPolicy, deps.Logger, opts...)
	return o
}

func isRetryable(err error) bool {
	return !domain.IsPermanent(err)
}

// Run processes the file at path. Per-record failures are logged and
// skipped; only reading the file, an aborting invalid record or the sink can
// fail the run.
func (o *Orchestrator) Run(ctx context.Context, path string) (summary domain.BatchSummary, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	start := time.Now()
	summary.BatchID = o.newBatchID()

	ctx, span := tracer.Start(ctx, "process batch")
	span.SetAttributes(
		attribute.String("batch.id", summary.BatchID),
		attribute.String("batch.file", path),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		o.deps.Metrics.batchDone(ctx, start, err != nil)
	}()

	logger := o.logger.With("batch_id", summary.BatchID)
	logger.InfoContext(ctx, "batch started", "file", path)

	records, err := o.deps.Source.Read(ctx, path)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read batch", "file", path, "error", err)
		return summary, err
	}
	summary.Total = len(records)

	results := make([]*domain.ProcessedRecord, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.settings.Concurrency)
	for i, rec := range records {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			pr, err := o.processRecord(gctx, summary.BatchID, i, rec)
			if err == nil {
				results[i] = &pr
				return nil
			}
			if o.aborts(err) {
				return fmt.Errorf("%w: record %s (line %d): %w", ErrBatchAborted, rec.Key(), rec.Line, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.ErrorContext(ctx, "batch aborted", "error", err)
		return summary, err
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	processed := make([]domain.ProcessedRecord, 0, len(records))
	for _, r := range results {
		if r != nil {
			processed = append(processed, *r)
		}
	}
	summary.Processed = len(processed)
	summary.Skipped = summary.Total - summary.Processed

	if err := o.deps.Sink.Write(ctx, processed); err != nil {
		logger.ErrorContext(ctx, "failed to write processed records", "error", err)
		return summary, fmt.Errorf("%w: %w", domain.ErrSink, err)
	}

	o.publish(ctx, logger, processed)

	logger.InfoContext(ctx, "batch finished",
		"total", summary.Total,
		"processed", summary.Processed,
		"skipped", summary.Skipped,
		"duration", time.Since(start),
	)
	return summary, nil
}

// aborts reports whether a record failure stops the whole batch.
func (o *Orchestrator) aborts(err error) bool {
	return o.settings.InvalidRecordPolicy == config.PolicyAbort && errors.Is(err, domain.ErrValidation)
}

// processRecord runs the record pipeline, retrying the whole pipeline on
// transport failures. Steps are built once so a customer provisioned by an
// earlier attempt is reused. seq is the position of the record in its batch.
func (o *Orchestrator) processRecord(ctx context.Context, batchID string, seq int, rec domain.IntakeRecord) (domain.ProcessedRecord, error) {
	ctx, span := tracer.Start(ctx, "process record")
	defer span.End()
	span.SetAttributes(
		attribute.String("record.id", rec.ID),
		attribute.Int("record.line", rec.Line),
	)

	ctx = interceptors.WithRequestID(ctx, uuid.NewString())

	provision := &provisionStep{
		provisioner: o.deps.Provisioner,
		record:      rec,
		key:         idempotencyKey(batchID, seq, StepProvisionCustomer),
	}
	place := &placeStep{
		placer:   o.deps.Placer,
		record:   rec,
		key:      idempotencyKey(batchID, seq, StepPlaceOrder),
		customer: provision,
	}
	steps := []coordinator.Step{provision, place}

	payload, err := json.Marshal(rec)
	if err != nil {
		o.logger.WarnContext(ctx, "failed to encode record for the run log", "record_id", rec.ID, "line", rec.Line, "error", err)
	}

	err = retry.Do(ctx, o.settings.RecordPolicy, func(ctx context.Context) error {
		return o.pipeline.Run(ctx, batchID, rec.Key(), string(payload), steps)
	}, retry.WithRetryable(isRetryable))
	if err != nil {
		stage := ""
		var stepErr *coordinator.StepError
		if errors.As(err, &stepErr) {
			stage = stepErr.Step
		}

		outcome, status, level, msg := OutcomeSkipped, runlog.StatusSkipped, slog.LevelWarn, "record skipped"
		switch {
		case o.aborts(err):
			outcome, status, level, msg = OutcomeAborted, runlog.StatusAborted, slog.LevelError, "record aborted the batch"
		case errors.Is(err, domain.ErrValidation):
			outcome = OutcomeInvalid
		}
		o.deps.Metrics.recordOutcome(ctx, outcome)

		span.RecordError(err)
		span.SetStatus(codes.Error, stage)
		o.logger.Log(ctx, level, msg,
			"batch_id", batchID,
			"record_id", rec.ID,
			"line", rec.Line,
			"email", rec.Email,
			"stage", stage,
			"error", err,
		)
		o.pipeline.Mark(ctx, batchID, rec.Key(), status, stage, err.Error())
		return domain.ProcessedRecord{}, err
	}

	o.deps.Metrics.recordOutcome(ctx, OutcomeProcessed)
	return place.result(), nil
}

// publish announces every correlated order. Failures are logged only.
func (o *Orchestrator) publish(ctx context.Context, logger *slog.Logger, records []domain.ProcessedRecord) {
	if o.deps.Publisher == nil {
		return
	}
	for _, r := range records {
		if err := o.deps.Publisher.Publish(ctx, r.OrderPID, r); err != nil {
			logger.ErrorContext(ctx, "failed to publish correlated order", "order_id", r.OrderPID, "error", err)
		}
	}
}
