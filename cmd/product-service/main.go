package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	productv1 "github.com/jcmexdev/ecommerce-integration/internal/api/product/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/interceptors"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/telemetry"
	"github.com/jcmexdev/ecommerce-integration/internal/product-service/app"
	"github.com/jcmexdev/ecommerce-integration/internal/product-service/domain"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "product-service")
	logger := telemetry.InitLogger(serviceName, getEnv("LOG_LEVEL", "INFO"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.SetupTracer(ctx, serviceName)
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	addr := ":" + getEnv("PORT", "9092")
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		slog.Error("failed to listen", "addr", addr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(interceptors.TraceServerInterceptor(logger)),
	)

	catalogPath := getEnv("CATALOG_FILE_PATH", "input/products.json")
	catalog, err := domain.LoadCatalogFile(catalogPath)
	if err != nil {
		slog.Error("failed to load catalog", "path", catalogPath, "error", err)
		os.Exit(1)
	}
	slog.Info("catalog loaded", "path", catalogPath, "products", catalog.Len())
	productv1.RegisterProductServer(grpcServer, app.NewProductServer(catalog, logger))

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()

	slog.Info("product service gRPC running", "addr", addr)

	if err := grpcServer.Serve(lis); err != nil {
		slog.Error("failed to serve", "error", err)
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
