// Package coordinator runs the ordered steps of one record. Each step is
// retried under a fixed policy and every transition is appended to the run
// log. There is no compensation: a failed step leaves earlier side effects in
// place.
package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jcmexdev/ecommerce-integration/internal/coordinator/runlog"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/retry"
)

// Step is a single unit of work in a record pipeline.
type Step interface {
	Name() string
	Execute(ctx context.Context) error
}

// StepError reports which step of a pipeline failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Orchestrator executes pipelines. It is safe for concurrent use.
type Orchestrator struct {
	policy    retry.Policy
	retryable func(error) bool
	repo      runlog.Repository
	logger    *slog.Logger
	onAttempt func(ctx context.Context, step string)
}

type Option func(*Orchestrator)

// WithRunLog persists every transition to repo. A nil repo disables the log.
func WithRunLog(repo runlog.Repository) Option {
	return func(o *Orchestrator) { o.repo = repo }
}

// WithRetryable sets the error classifier used between step attempts.
func WithRetryable(fn func(error) bool) Option {
	return func(o *Orchestrator) { o.retryable = fn }
}

// WithAttemptHook is called before every step attempt.
func WithAttemptHook(fn func(ctx context.Context, step string)) Option {
	return func(o *Orchestrator) { o.onAttempt = fn }
}

func NewOrchestrator(policy retry.Policy, logger *slog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		policy:    policy,
		retryable: func(error) bool { return true },
		logger:    logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes steps in order for one record. The first step that exhausts
// its attempts stops the run and is returned as a *StepError.
func (o *Orchestrator) Run(ctx context.Context, batchID, recordID, payload string, steps []Step) error {
	o.save(ctx, runlog.NewEntry(ctx, batchID, recordID, runlog.StatusStarted, "", payload, nil))

	for _, step := range steps {
		name := step.Name()
		err := retry.Do(ctx, o.policy, func(ctx context.Context) error {
			if o.onAttempt != nil {
				o.onAttempt(ctx, name)
			}
			return step.Execute(ctx)
		},
			retry.WithRetryable(o.retryable),
			retry.WithNotify(func(attempt int, err error, next time.Duration) {
				o.logger.WarnContext(ctx, "step attempt failed, retrying",
					"batch_id", batchID,
					"record_id", recordID,
					"step", name,
					"attempt", attempt,
					"retry_in", next,
					"error", err,
				)
			}),
		)
		if err != nil {
			o.save(ctx, runlog.NewEntry(ctx, batchID, recordID, runlog.StatusFailed, name, "", []string{err.Error()}))
			return &StepError{Step: name, Err: err}
		}
		o.save(ctx, runlog.NewEntry(ctx, batchID, recordID, runlog.StatusStepDone, name, "", nil))
	}

	o.save(ctx, runlog.NewEntry(ctx, batchID, recordID, runlog.StatusCompleted, "", "", nil))
	return nil
}

// Mark appends a terminal entry written outside of Run, such as SKIPPED.
func (o *Orchestrator) Mark(ctx context.Context, batchID, recordID string, status runlog.Status, step string, errs ...string) {
	o.save(ctx, runlog.NewEntry(ctx, batchID, recordID, status, step, "", errs))
}

// save never fails the pipeline; a broken run log only costs observability.
func (o *Orchestrator) save(ctx context.Context, entry *runlog.Entry) {
	if o.repo == nil {
		return
	}
	if err := o.repo.Save(ctx, entry); err != nil {
		o.logger.ErrorContext(ctx, "failed to write run log",
			"batch_id", entry.BatchID,
			"record_id", entry.RecordID,
			"status", entry.Status,
			"error", err,
		)
	}
}
