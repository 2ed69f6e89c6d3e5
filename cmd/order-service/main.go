package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	orderv1 "github.com/jcmexdev/ecommerce-integration/internal/api/order/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/order-service/app"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/cache"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/interceptors"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/telemetry"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "order-service")
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

	addr := ":" + getEnv("PORT", "9090")
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		slog.Error("failed to listen", "addr", addr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(interceptors.TraceServerInterceptor(logger)),
	)

	idempotency := cache.NewMemoryCache("order")
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer client.Close()
		idempotency = cache.NewRedisCache(client, "order")
		slog.Info("idempotency cache backed by redis", "addr", redisAddr)
	}
	orderv1.RegisterOrderServer(grpcServer, app.NewOrderServer(idempotency, logger))

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()

	slog.Info("order service gRPC running", "addr", addr)

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
