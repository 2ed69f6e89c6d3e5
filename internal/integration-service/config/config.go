// Package config loads the integration service configuration: defaults, then
// an optional YAML file named by INTEGRATION_CONFIG, then environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jcmexdev/ecommerce-integration/internal/pkg/retry"
)

// InvalidRecordPolicy decides what a validation failure does to the batch.
type InvalidRecordPolicy string

const (
	PolicySkip  InvalidRecordPolicy = "skip"
	PolicyAbort InvalidRecordPolicy = "abort"
)

type Retry struct {
	MaxAttempts int           `yaml:"max_attempts"`
	Delay       time.Duration `yaml:"delay"`
}

func (r Retry) Policy() retry.Policy {
	return retry.Policy{MaxAttempts: r.MaxAttempts, Delay: r.Delay}
}

type Listing struct {
	PageSize int64 `yaml:"page_size"`
	MaxPages int64 `yaml:"max_pages"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type Config struct {
	ServiceName string `yaml:"service_name"`
	LogLevel    string `yaml:"log_level"`

	GRPCAddr string `yaml:"grpc_addr"`
	HTTPAddr string `yaml:"http_addr"`

	InputFilePath  string `yaml:"input_file_path"`
	OutputFilePath string `yaml:"output_file_path"`

	CustomerServiceAddr string `yaml:"customer_service_addr"`
	ProductServiceAddr  string `yaml:"product_service_addr"`
	OrderServiceAddr    string `yaml:"order_service_addr"`

	Retry               Retry               `yaml:"retry"`
	RecordMaxAttempts   int                 `yaml:"record_max_attempts"`
	Listing             Listing             `yaml:"listing"`
	InvalidRecordPolicy InvalidRecordPolicy `yaml:"invalid_record_policy"`
	BatchConcurrency    int                 `yaml:"batch_concurrency"`

	RunLogPath string `yaml:"runlog_path"`
	Kafka      Kafka  `yaml:"kafka"`
}

func Default() Config {
	return Config{
		ServiceName:         "integration-service",
		LogLevel:            "INFO",
		GRPCAddr:            ":6565",
		HTTPAddr:            ":8080",
		InputFilePath:       "input/orders.csv",
		OutputFilePath:      "output/processed-orders.json",
		CustomerServiceAddr: "localhost:9091",
		ProductServiceAddr:  "localhost:9092",
		OrderServiceAddr:    "localhost:9090",
		Retry:               Retry{MaxAttempts: 3, Delay: 2 * time.Second},
		RecordMaxAttempts:   3,
		Listing:             Listing{PageSize: 100, MaxPages: 1},
		InvalidRecordPolicy: PolicySkip,
		BatchConcurrency:    1,
		Kafka:               Kafka{Topic: "order.correlated"},
	}
}

// Load builds the configuration and validates it.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("INTEGRATION_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.ServiceName = getEnv("OTEL_SERVICE_NAME", c.ServiceName)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.GRPCAddr = getEnv("GRPC_ADDR", c.GRPCAddr)
	c.HTTPAddr = getEnv("HTTP_ADDR", c.HTTPAddr)
	c.InputFilePath = getEnv("INPUT_FILE_PATH", c.InputFilePath)
	c.OutputFilePath = getEnv("OUTPUT_FILE_PATH", c.OutputFilePath)
	c.CustomerServiceAddr = getEnv("CUSTOMER_SERVICE_ADDR", c.CustomerServiceAddr)
	c.ProductServiceAddr = getEnv("PRODUCT_SERVICE_ADDR", c.ProductServiceAddr)
	c.OrderServiceAddr = getEnv("ORDER_SERVICE_ADDR", c.OrderServiceAddr)
	c.InvalidRecordPolicy = InvalidRecordPolicy(strings.ToLower(getEnv("INVALID_RECORD_POLICY", string(c.InvalidRecordPolicy))))
	c.RunLogPath = getEnv("RUNLOG_PATH", c.RunLogPath)
	c.Kafka.Topic = getEnv("KAFKA_TOPIC", c.Kafka.Topic)
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = splitList(v)
	}

	var errs []error
	errs = append(errs,
		envInt("RETRY_MAX_ATTEMPTS", &c.Retry.MaxAttempts),
		envDuration("RETRY_DELAY", &c.Retry.Delay),
		envInt("RECORD_MAX_ATTEMPTS", &c.RecordMaxAttempts),
		envInt64("LISTING_PAGE_SIZE", &c.Listing.PageSize),
		envInt64("LISTING_MAX_PAGES", &c.Listing.MaxPages),
		envInt("BATCH_CONCURRENCY", &c.BatchConcurrency),
	)
	return errors.Join(errs...)
}

// Validate rejects values the service cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.GRPCAddr == "" {
		errs = append(errs, errors.New("grpc_addr is required"))
	}
	if c.OutputFilePath == "" {
		errs = append(errs, errors.New("output_file_path is required"))
	}
	if c.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("retry.max_attempts must be >= 1, got %d", c.Retry.MaxAttempts))
	}
	if c.Retry.Delay < 0 {
		errs = append(errs, fmt.Errorf("retry.delay must not be negative, got %s", c.Retry.Delay))
	}
	if c.RecordMaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("record_max_attempts must be >= 1, got %d", c.RecordMaxAttempts))
	}
	if c.Listing.PageSize < 1 {
		errs = append(errs, fmt.Errorf("listing.page_size must be >= 1, got %d", c.Listing.PageSize))
	}
	if c.Listing.MaxPages < 1 {
		errs = append(errs, fmt.Errorf("listing.max_pages must be >= 1, got %d", c.Listing.MaxPages))
	}
	if c.BatchConcurrency < 1 {
		errs = append(errs, fmt.Errorf("batch_concurrency must be >= 1, got %d", c.BatchConcurrency))
	}
	switch c.InvalidRecordPolicy {
	case PolicySkip, PolicyAbort:
	default:
		errs = append(errs, fmt.Errorf("invalid_record_policy must be %q or %q, got %q", PolicySkip, PolicyAbort, c.InvalidRecordPolicy))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s=%q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func envInt64(key string, dst *int64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("config: %s=%q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func envDuration(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("config: %s=%q: %w", key, v, err)
	}
	*dst = d
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
