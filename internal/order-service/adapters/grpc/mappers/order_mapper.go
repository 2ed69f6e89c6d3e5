package mappers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	orderv1 "github.com/jcmexdev/ecommerce-integration/internal/api/order/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/order-service/domain"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/interceptors"
)

// OrderFromProto builds a new order with a fresh id. A request without items
// becomes a single item from its top-level price and quantity.
func OrderFromProto(ctx context.Context, req *orderv1.CreateOrderRequest) (*domain.Order, error) {
	pbItems := req.GetItems()
	if len(pbItems) == 0 {
		pbItems = []*orderv1.OrderItem{{PricePerUnit: req.GetPricePerUnit(), Quantity: req.GetQuantity()}}
	}
	items, err := mapItemsFromProto(pbItems)
	if err != nil {
		return nil, err
	}

	return &domain.Order{
		ID:             uuid.NewString(),
		CustomerID:     req.GetCustomerId(),
		Items:          items,
		TotalAmount:    domain.Total(items),
		Status:         mapStatusFromProto(req.GetStatus()),
		DateCreated:    req.GetDateCreated(),
		DateDelivered:  req.GetDateDelivered(),
		IdempotencyKey: interceptors.IdempotencyKeyFromContext(ctx),
		RequestID:      interceptors.RequestIDFromContext(ctx),
		CreatedAt:      time.Now(),
	}, nil
}

func OrderToProto(o *domain.Order) *orderv1.OrderInfo {
	if o == nil {
		return nil
	}

	return &orderv1.OrderInfo{
		Id:            o.ID,
		CustomerId:    o.CustomerID,
		Items:         mapItemsToProto(o.Items),
		TotalAmount:   o.TotalAmount.StringFixed(2),
		Status:        mapStatusToProto(o.Status),
		DateCreated:   o.DateCreated,
		DateDelivered: o.DateDelivered,
	}
}

func mapItemsFromProto(pbItems []*orderv1.OrderItem) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, len(pbItems))
	for i, item := range pbItems {
		price, err := decimal.NewFromString(item.GetPricePerUnit())
		if err != nil {
			return nil, fmt.Errorf("item %d: price %q: %w", i, item.GetPricePerUnit(), err)
		}
		if item.GetQuantity() < 1 {
			return nil, fmt.Errorf("item %d: quantity must be positive, got %d", i, item.GetQuantity())
		}
		items[i] = domain.OrderItem{
			ProductID: item.GetProductId(),
			Quantity:  int(item.GetQuantity()),
			UnitPrice: price,
		}
	}
	return items, nil
}

func mapItemsToProto(domainItems []domain.OrderItem) []*orderv1.OrderItem {
	pbItems := make([]*orderv1.OrderItem, len(domainItems))
	for i, item := range domainItems {
		pbItems[i] = &orderv1.OrderItem{
			ProductId:    item.ProductID,
			Quantity:     int32(item.Quantity),
			PricePerUnit: item.UnitPrice.String(),
		}
	}
	return pbItems
}

func mapStatusFromProto(s orderv1.Status) domain.OrderStatus {
	if name, ok := orderv1.Status_name[int32(s)]; ok {
		return domain.OrderStatus(name)
	}
	return domain.StatusCreated
}

func mapStatusToProto(s domain.OrderStatus) orderv1.Status {
	if val, ok := orderv1.Status_value[string(s)]; ok {
		return orderv1.Status(val)
	}
	return orderv1.Status_CREATED
}
