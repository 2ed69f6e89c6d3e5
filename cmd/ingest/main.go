package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	integrationv1 "github.com/jcmexdev/ecommerce-integration/internal/api/integration/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/app"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/interceptors"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	addr := flag.String("addr", getEnv("INTEGRATION_SERVICE_ADDR", "localhost:6565"), "integration service address")
	timeout := flag.Duration("timeout", 10*time.Minute, "batch deadline")
	flag.Parse()

	if flag.NArg() < 1 {
		logger.Error("usage: ingest [-addr host:port] <file.csv>")
		os.Exit(1)
	}
	// The path is resolved on the server, so send it absolute.
	path, err := filepath.Abs(flag.Arg(0))
	if err != nil {
		logger.Error("invalid path", slog.String("error", err.Error()))
		os.Exit(1)
	}

	conn, err := grpc.NewClient(*addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(interceptors.PropagateClientInterceptor()),
	)
	if err != nil {
		logger.Error("could not connect", slog.String("addr", *addr), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	ctx = interceptors.WithRequestID(ctx, uuid.NewString())

	res, err := integrationv1.NewIntegrationClient(conn).ProcessBatch(ctx, &integrationv1.ProcessBatchRequest{FilePath: path})
	if err != nil {
		logger.Error("process batch failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info(res.GetMessage(),
		slog.String("batch_id", res.GetBatchId()),
		slog.Int("total", int(res.GetTotal())),
		slog.Int("processed", int(res.GetProcessed())),
		slog.Int("skipped", int(res.GetSkipped())),
	)
	if res.GetMessage() != app.MessageProcessed {
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
