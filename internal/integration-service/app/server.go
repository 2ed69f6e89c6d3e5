package app

import (
	"context"
	"log/slog"

	integrationv1 "github.com/jcmexdev/ecommerce-integration/internal/api/integration/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/ports"
)

const (
	MessageProcessed = "CSV file processed successfully."
	MessageFailed    = "Error processing CSV file: "
)

type integrationServer struct {
	integrationv1.UnimplementedIntegrationServer
	runner      ports.BatchRunner
	defaultPath string
	logger      *slog.Logger
}

// NewIntegrationServer exposes runner over gRPC. Requests without a file
// path process defaultPath.
func NewIntegrationServer(runner ports.BatchRunner, defaultPath string, logger *slog.Logger) integrationv1.IntegrationServer {
	return &integrationServer{runner: runner, defaultPath: defaultPath, logger: logger}
}

// ProcessBatch always answers with a response; a failed batch is reported in
// the message rather than as a gRPC error.
func (s *integrationServer) ProcessBatch(ctx context.Context, req *integrationv1.ProcessBatchRequest) (*integrationv1.ProcessBatchResponse, error) {
	path := req.GetFilePath()
	if path == "" {
		path = s.defaultPath
	}

	summary, err := s.runner.Run(ctx, path)
	if err != nil {
		s.logger.ErrorContext(ctx, "batch failed", "file", path, "batch_id", summary.BatchID, "error", err)
		return &integrationv1.ProcessBatchResponse{
			Message: MessageFailed + err.Error(),
			BatchId: summary.BatchID,
		}, nil
	}

	return &integrationv1.ProcessBatchResponse{
		Message:   MessageProcessed,
		BatchId:   summary.BatchID,
		Total:     int32(summary.Total),
		Processed: int32(summary.Processed),
		Skipped:   int32(summary.Skipped),
	}, nil
}
