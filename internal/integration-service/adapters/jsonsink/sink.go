// Package jsonsink writes the processed records of a batch as a JSON array.
package jsonsink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/ports"
)

var _ ports.Sink = (*Sink)(nil)

type Sink struct {
	path string
}

func New(path string) *Sink {
	return &Sink{path: path}
}

func (s *Sink) Path() string { return s.path }

// Write replaces the output file atomically. The parent directory is created
// when missing; an empty batch produces "[]".
func (s *Sink) Write(ctx context.Context, records []domain.ProcessedRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []domain.ProcessedRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("json sink: marshal: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("json sink: create %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".processed-*.json")
	if err != nil {
		return fmt.Errorf("json sink: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("json sink: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("json sink: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("json sink: rename to %q: %w", s.path, err)
	}
	return nil
}

// Load reads a document written by Write.
func Load(path string) ([]domain.ProcessedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("json sink: read %q: %w", path, err)
	}
	var records []domain.ProcessedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("json sink: decode %q: %w", path, err)
	}
	return records, nil
}
