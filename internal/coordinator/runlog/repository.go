package runlog

import "context"

// Repository persists run log entries. Each Save appends a row.
type Repository interface {
	Save(ctx context.Context, entry *Entry) error
}

// Reader queries the run log.
type Reader interface {
	// GetLatest returns the newest entry of a record or ErrNotFound.
	GetLatest(ctx context.Context, batchID, recordID string) (*Entry, error)
	// ListBatch returns every entry of a batch in insertion order.
	ListBatch(ctx context.Context, batchID string) ([]Entry, error)
}
