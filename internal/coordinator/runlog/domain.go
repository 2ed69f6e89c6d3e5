// Package runlog defines the per-record run log: an append-only trail of
// every transition a record goes through while a batch is processed.
//
// Rows carry the batch id, the record id and the OpenTelemetry trace/span
// ids active when they were written, so a skipped record can be followed
// from the log straight into its trace.
package runlog

import (
	"errors"
	"time"
)

// Status is the lifecycle state of one record inside a batch.
type Status string

const (
	StatusStarted   Status = "STARTED"
	StatusStepDone  Status = "STEP_DONE"
	StatusCompleted Status = "COMPLETED"
	StatusSkipped   Status = "SKIPPED"
	StatusFailed    Status = "FAILED"
	StatusAborted   Status = "ABORTED" // the record stopped its batch
)

var ErrNotFound = errors.New("runlog: entry not found")

// Entry is a single row of the run log.
type Entry struct {
	BatchID  string `json:"batch_id"`
	RecordID string `json:"record_id"`
	Status   Status `json:"status"`

	// Step is the name of the step that just finished or failed.
	Step string `json:"step,omitempty"`

	// Payload is the JSON input of the record. Written on STARTED only.
	Payload string `json:"payload,omitempty"`

	// ErrorMessages is a JSON array of failure messages.
	ErrorMessages string `json:"error_messages"`

	TraceID   string    `json:"trace_id,omitempty"`
	SpanID    string    `json:"span_id,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
