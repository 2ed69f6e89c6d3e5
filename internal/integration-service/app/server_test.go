package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	integrationv1 "github.com/jcmexdev/ecommerce-integration/internal/api/integration/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
)

type stubRunner struct {
	path    string
	summary domain.BatchSummary
	err     error
}

func (s *stubRunner) Run(_ context.Context, path string) (domain.BatchSummary, error) {
	s.path = path
	return s.summary, s.err
}

func TestIntegrationServer_ProcessBatch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		runner := &stubRunner{summary: domain.BatchSummary{BatchID: "b1", Total: 3, Processed: 2, Skipped: 1}}
		srv := NewIntegrationServer(runner, "input/orders.csv", discardLogger())

		res, err := srv.ProcessBatch(context.Background(), &integrationv1.ProcessBatchRequest{FilePath: "/data/batch.csv"})
		require.NoError(t, err)
		assert.Equal(t, "/data/batch.csv", runner.path)
		assert.Equal(t, "CSV file processed successfully.", res.GetMessage())
		assert.Equal(t, "b1", res.GetBatchId())
		assert.Equal(t, int32(3), res.GetTotal())
		assert.Equal(t, int32(2), res.GetProcessed())
		assert.Equal(t, int32(1), res.GetSkipped())
	})

	t.Run("failure is reported in the message", func(t *testing.T) {
		runner := &stubRunner{err: errors.New("open orders.csv: no such file or directory")}
		srv := NewIntegrationServer(runner, "input/orders.csv", discardLogger())

		res, err := srv.ProcessBatch(context.Background(), &integrationv1.ProcessBatchRequest{FilePath: "orders.csv"})
		require.NoError(t, err)
		assert.Equal(t, "Error processing CSV file: open orders.csv: no such file or directory", res.GetMessage())
		assert.Zero(t, res.GetProcessed())
	})

	t.Run("empty path uses the default", func(t *testing.T) {
		runner := &stubRunner{}
		srv := NewIntegrationServer(runner, "input/orders.csv", discardLogger())

		_, err := srv.ProcessBatch(context.Background(), &integrationv1.ProcessBatchRequest{})
		require.NoError(t, err)
		assert.Equal(t, "input/orders.csv", runner.path)
	})
}
