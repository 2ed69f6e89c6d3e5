// Package ports declares the boundaries of the integration service: where
// records come from, who it calls and where results go.
package ports

import (
	"context"

	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
)

// RecordSource loads a whole batch eagerly.
type RecordSource interface {
	Read(ctx context.Context, path string) ([]domain.IntakeRecord, error)
}

// Sink persists the processed records of one batch. It is called exactly
// once per batch, also when the batch produced no records.
type Sink interface {
	Write(ctx context.Context, records []domain.ProcessedRecord) error
}

// Publisher announces correlated orders to other systems.
type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// CustomerService creates customers remotely.
type CustomerService interface {
	CreateCustomer(ctx context.Context, req domain.NewCustomer) (string, error)
}

// ProductCatalog looks up products by their reference.
type ProductCatalog interface {
	GetProductByReference(ctx context.Context, reference string) (domain.ProductQuote, error)
}

// OrderService places orders and lists them page by page.
type OrderService interface {
	CreateOrder(ctx context.Context, req domain.NewOrder) (string, error)
	ListOrders(ctx context.Context, pageSize, pageNumber int64) (domain.OrderPage, error)
}

// BatchRunner processes one intake file end to end.
type BatchRunner interface {
	Run(ctx context.Context, path string) (domain.BatchSummary, error)
}
