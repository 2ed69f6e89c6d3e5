package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/ports"
)

const dateLayout = "2006-01-02"

// OrderPlacer creates the order of a record and recovers its id.
type OrderPlacer struct {
	catalog    ports.ProductCatalog
	orders     ports.OrderService
	correlator *Correlator
	logger     *slog.Logger
	now        func() time.Time
}

func NewOrderPlacer(catalog ports.ProductCatalog, orders ports.OrderService, correlator *Correlator, logger *slog.Logger) *OrderPlacer {
	return &OrderPlacer{
		catalog:    catalog,
		orders:     orders,
		correlator: correlator,
		logger:     logger,
		now:        time.Now,
	}
}

// Place validates the record, quotes its product, submits the order and
// resolves the order id through the listing. The id returned by CreateOrder
// is ignored.
func (p *OrderPlacer) Place(ctx context.Context, rec domain.IntakeRecord, customerID string) (domain.OrderCorrelation, error) {
	fields, err := parseOrderFields(rec)
	if err != nil {
		return domain.OrderCorrelation{}, err
	}

	quote, err := p.catalog.GetProductByReference(ctx, rec.ProductPID)
	if err != nil {
		return domain.OrderCorrelation{}, err
	}

	_, err = p.orders.CreateOrder(ctx, domain.NewOrder{
		CustomerID:    customerID,
		ProductID:     quote.ProductID,
		UnitPrice:     quote.UnitPrice,
		Quantity:      fields.quantity,
		Status:        fields.status,
		DateCreated:   fields.dateCreated,
		DateDelivered: p.now().Format(dateLayout),
	})
	if err != nil {
		return domain.OrderCorrelation{}, err
	}

	orderID, err := p.correlator.Resolve(ctx, customerID)
	if err != nil {
		return domain.OrderCorrelation{}, err
	}

	p.logger.DebugContext(ctx, "order correlated", "record_id", rec.ID, "customer_id", customerID, "order_id", orderID)
	return domain.OrderCorrelation{OrderID: orderID, SupplierRef: rec.SupplierPID}, nil
}

type orderFields struct {
	dateCreated string
	quantity    int32
	status      domain.OrderStatus
}

// parseOrderFields maps the string columns of a record onto order values.
// The creation date keeps the calendar day of its own offset.
func parseOrderFields(rec domain.IntakeRecord) (orderFields, error) {
	created, err := parseOffsetDateTime(rec.DateCreated)
	if err != nil {
		return orderFields{}, &domain.ValidationError{Field: "date_created", Value: rec.DateCreated, Err: err}
	}

	qty, err := strconv.ParseInt(rec.Quantity, 10, 32)
	if err != nil {
		return orderFields{}, &domain.ValidationError{Field: "quantity", Value: rec.Quantity, Err: err}
	}
	if qty < 1 {
		return orderFields{}, &domain.ValidationError{Field: "quantity", Value: rec.Quantity, Err: fmt.Errorf("must be positive")}
	}

	status, err := domain.ParseOrderStatus(rec.OrderStatus)
	if err != nil {
		return orderFields{}, err
	}

	return orderFields{
		dateCreated: created.Format(dateLayout),
		quantity:    int32(qty),
		status:      status,
	}, nil
}

// offsetDateTimeLayouts accept an ISO offset date-time with optional seconds
// and fraction.
var offsetDateTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04Z07:00"}

func parseOffsetDateTime(value string) (time.Time, error) {
	t, err := time.Parse(offsetDateTimeLayouts[0], value)
	for _, layout := range offsetDateTimeLayouts[1:] {
		if err == nil {
			break
		}
		t, err = time.Parse(layout, value)
	}
	return t, err
}
