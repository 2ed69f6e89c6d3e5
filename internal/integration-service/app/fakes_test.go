package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/config"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/interceptors"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/retry"
)

var errUnavailable = errors.New("rpc error: code = Unavailable")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeCustomers hands out ids c-<email>. Emails listed in existing conflict.
type fakeCustomers struct {
	mu       sync.Mutex
	existing map[string]bool
	failures int
	calls    int
	keys     []string
}

func (f *fakeCustomers) CreateCustomer(ctx context.Context, req domain.NewCustomer) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.keys = append(f.keys, interceptors.IdempotencyKeyFromContext(ctx))
	if f.failures > 0 {
		f.failures--
		return "", errUnavailable
	}
	if f.existing[req.Email] {
		return "", fmt.Errorf("grpc CreateCustomer: %w", domain.ErrCustomerExists)
	}
	if f.existing == nil {
		f.existing = map[string]bool{}
	}
	f.existing[req.Email] = true
	return "c-" + req.Email, nil
}

type fakeCatalog struct {
	prices map[string]string
	err    error
}

func (f *fakeCatalog) GetProductByReference(_ context.Context, ref string) (domain.ProductQuote, error) {
	if f.err != nil {
		return domain.ProductQuote{}, f.err
	}
	price, ok := f.prices[ref]
	if !ok {
		price = "10.00"
	}
	return domain.ProductQuote{ProductID: "id-" + ref, UnitPrice: decimal.RequireFromString(price)}, nil
}

// fakeOrders stores orders in creation order and serves them page by page.
type fakeOrders struct {
	mu          sync.Mutex
	orders      []domain.ListedOrder
	created     []domain.NewOrder
	createFails int
	listFails   int
	hideOwners  map[string]bool
	listCalls   int
	preexisting []domain.ListedOrder
}

func (f *fakeOrders) CreateOrder(_ context.Context, req domain.NewOrder) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createFails > 0 {
		f.createFails--
		return "", errUnavailable
	}
	id := fmt.Sprintf("o-%d", len(f.orders)+1)
	f.created = append(f.created, req)
	if !f.hideOwners[req.CustomerID] {
		f.orders = append(f.orders, domain.ListedOrder{ID: id, CustomerID: req.CustomerID})
	}
	return id, nil
}

func (f *fakeOrders) ListOrders(_ context.Context, pageSize, pageNumber int64) (domain.OrderPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listFails > 0 {
		f.listFails--
		return domain.OrderPage{}, errUnavailable
	}
	all := append(append([]domain.ListedOrder{}, f.preexisting...), f.orders...)
	total := int64(len(all))
	pages := (total + pageSize - 1) / pageSize
	from := pageNumber * pageSize
	if from > total {
		from = total
	}
	to := from + pageSize
	if to > total {
		to = total
	}
	return domain.OrderPage{
		Orders:     append([]domain.ListedOrder{}, all[from:to]...),
		PageNumber: pageNumber,
		TotalPages: pages,
	}, nil
}

type fakeSource struct {
	records []domain.IntakeRecord
	err     error
}

func (f *fakeSource) Read(context.Context, string) ([]domain.IntakeRecord, error) {
	return f.records, f.err
}

type fakeSink struct {
	mu      sync.Mutex
	writes  int
	written []domain.ProcessedRecord
	err     error
}

func (f *fakeSink) Write(_ context.Context, records []domain.ProcessedRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.err != nil {
		return f.err
	}
	f.written = append([]domain.ProcessedRecord{}, records...)
	return nil
}

type fakePublisher struct {
	keys []string
	err  error
}

func (f *fakePublisher) Publish(_ context.Context, key string, _ any) error {
	f.keys = append(f.keys, key)
	return f.err
}

func record(id string, status string) domain.IntakeRecord {
	return domain.IntakeRecord{
		ID:               id,
		FirstName:        "First" + id,
		LastName:         "Last" + id,
		Email:            "user" + id + "@example.com",
		SupplierPID:      "sup-" + id,
		CreditCardNumber: "4111",
		CreditCardType:   "visa",
		ProductPID:       "prod-" + id,
		ShippingAddress:  id + " Main St",
		Country:          "US",
		DateCreated:      "2024-03-01T10:00:00Z",
		Quantity:         "2",
		OrderStatus:      status,
	}
}

type harness struct {
	customers *fakeCustomers
	catalog   *fakeCatalog
	orders    *fakeOrders
	source    *fakeSource
	sink      *fakeSink
	publisher *fakePublisher
	settings  Settings
	listing   [2]int64
}

func newHarness(records ...domain.IntakeRecord) *harness {
	return &harness{
		customers: &fakeCustomers{},
		catalog:   &fakeCatalog{},
		orders:    &fakeOrders{},
		source:    &fakeSource{records: records},
		sink:      &fakeSink{},
		settings: Settings{
			StepPolicy:          retry.Policy{MaxAttempts: 3, Delay: time.Millisecond},
			RecordPolicy:        retry.Policy{MaxAttempts: 3, Delay: time.Millisecond},
			Concurrency:         1,
			InvalidRecordPolicy: config.PolicySkip,
		},
		listing: [2]int64{100, 1},
	}
}

func (h *harness) build() *Orchestrator {
	logger := discardLogger()
	deps := Dependencies{
		Source:      h.source,
		Sink:        h.sink,
		Provisioner: NewCustomerProvisioner(h.customers, logger),
		Placer:      NewOrderPlacer(h.catalog, h.orders, NewCorrelator(h.orders, h.listing[0], h.listing[1]), logger),
		Logger:      logger,
	}
	if h.publisher != nil {
		deps.Publisher = h.publisher
	}
	return NewOrchestrator(deps, h.settings)
}
