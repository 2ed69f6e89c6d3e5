package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	customerv1 "github.com/jcmexdev/ecommerce-integration/internal/api/customer/v1"
	integrationv1 "github.com/jcmexdev/ecommerce-integration/internal/api/integration/v1"
	orderv1 "github.com/jcmexdev/ecommerce-integration/internal/api/order/v1"
	productv1 "github.com/jcmexdev/ecommerce-integration/internal/api/product/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/coordinator/runlog"
	"github.com/jcmexdev/ecommerce-integration/internal/coordinator/runlog/sqlite"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/adapters/csvsource"
	grpcadapter "github.com/jcmexdev/ecommerce-integration/internal/integration-service/adapters/grpc"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/adapters/jsonsink"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/app"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/config"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/httpx"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/interceptors"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/messaging"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := telemetry.InitLogger(cfg.ServiceName, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, cfg.ServiceName)
	if err != nil {
		logger.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer shutdown("tracer", shutdownTracer)

	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider(cfg.ServiceName)
	if err != nil {
		logger.Error("failed to initialise meter provider", "error", err)
		os.Exit(1)
	}
	defer shutdown("meter provider", shutdownMeter)

	metrics, err := app.NewMetrics(otel.Meter("integration-service"))
	if err != nil {
		logger.Error("failed to create instruments", "error", err)
		os.Exit(1)
	}

	customerConn := dial(logger, cfg.CustomerServiceAddr)
	defer customerConn.Close()
	productConn := dial(logger, cfg.ProductServiceAddr)
	defer productConn.Close()
	orderConn := dial(logger, cfg.OrderServiceAddr)
	defer orderConn.Close()

	customers := grpcadapter.NewCustomerClient(customerv1.NewCustomerClient(customerConn))
	products := grpcadapter.NewProductClient(productv1.NewProductClient(productConn))
	orders := grpcadapter.NewOrderClient(orderv1.NewOrderClient(orderConn))

	deps := app.Dependencies{
		Source:      csvsource.New(),
		Sink:        jsonsink.New(cfg.OutputFilePath),
		Provisioner: app.NewCustomerProvisioner(customers, logger),
		Placer: app.NewOrderPlacer(products, orders,
			app.NewCorrelator(orders, cfg.Listing.PageSize, cfg.Listing.MaxPages), logger),
		Logger:  logger,
		Metrics: metrics,
	}

	// The reader stays a nil interface when the run log is disabled.
	var runLogReader runlog.Reader
	if cfg.RunLogPath != "" {
		repo, err := sqlite.Open(cfg.RunLogPath)
		if err != nil {
			logger.Error("failed to open run log", "path", cfg.RunLogPath, "error", err)
			os.Exit(1)
		}
		defer repo.Close()
		deps.RunLog = repo
		runLogReader = repo
		logger.Info("run log enabled", "path", cfg.RunLogPath)
	}

	if len(cfg.Kafka.Brokers) > 0 {
		producer := messaging.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		deps.Publisher = producer
		logger.Info("publishing correlated orders", "topic", cfg.Kafka.Topic, "brokers", cfg.Kafka.Brokers)
	}

	orchestrator := app.NewOrchestrator(deps, app.SettingsFromConfig(cfg))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(interceptors.TraceServerInterceptor(logger)),
	)
	integrationv1.RegisterIntegrationServer(grpcServer, app.NewIntegrationServer(orchestrator, cfg.InputFilePath, logger))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpx.NewRouter(httpx.NewHandler(orchestrator, runLogReader, cfg.InputFilePath), metricsHandler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("integration service gRPC running", "addr", cfg.GRPCAddr)
		errCh <- grpcServer.Serve(lis)
	}()
	go func() {
		logger.Info("integration service HTTP running", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		logger.Error("server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	grpcServer.GracefulStop()
}

func dial(logger *slog.Logger, addr string) *grpc.ClientConn {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithUnaryInterceptor(interceptors.PropagateClientInterceptor()),
	)
	if err != nil {
		logger.Error("could not connect", "addr", addr, "error", err)
		os.Exit(1)
	}
	return conn
}

func shutdown(name string, fn telemetry.ShutdownFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fn(ctx); err != nil {
		slog.Error(name+" shutdown error", "error", err)
	}
}
