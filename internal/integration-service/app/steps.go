package app

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/interceptors"
)

const (
	StepProvisionCustomer = "provision_customer"
	StepPlaceOrder        = "place_order"
)

// idempotencyNamespace scopes the name-based UUIDs used as idempotency keys.
var idempotencyNamespace = uuid.MustParse("6f1c2a34-8d0e-4b7a-9c55-2e7d3f9a1b40")

// idempotencyKey is stable for a batch, record position and stage, so every
// retry of the same call carries the same key. The position is used instead
// of the id column, which is not unique within a file.
func idempotencyKey(batchID string, seq int, stage string) string {
	name := batchID + ":" + strconv.Itoa(seq) + ":" + stage
	return uuid.NewSHA1(idempotencyNamespace, []byte(name)).String()
}

// provisionStep keeps the customer id across record attempts; once a customer
// exists the step is a no-op.
type provisionStep struct {
	provisioner *CustomerProvisioner
	record      domain.IntakeRecord
	key         string
	customerID  string
}

func (s *provisionStep) Name() string { return StepProvisionCustomer }

func (s *provisionStep) Execute(ctx context.Context) error {
	if s.customerID != "" {
		return nil
	}
	id, err := s.provisioner.Provision(interceptors.WithIdempotencyKey(ctx, s.key), s.record)
	if err != nil {
		return err
	}
	s.customerID = id
	return nil
}

type placeStep struct {
	placer      *OrderPlacer
	record      domain.IntakeRecord
	key         string
	customer    *provisionStep
	correlation domain.OrderCorrelation
}

func (s *placeStep) Name() string { return StepPlaceOrder }

func (s *placeStep) Execute(ctx context.Context) error {
	c, err := s.placer.Place(interceptors.WithIdempotencyKey(ctx, s.key), s.record, s.customer.customerID)
	if err != nil {
		return err
	}
	s.correlation = c
	return nil
}

func (s *placeStep) result() domain.ProcessedRecord {
	return domain.ProcessedRecord{
		UserPID:     s.customer.customerID,
		OrderPID:    s.correlation.OrderID,
		SupplierPID: s.correlation.SupplierRef,
	}
}
