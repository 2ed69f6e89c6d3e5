package grpc

import (
	"context"
	"fmt"

	orderv1 "github.com/jcmexdev/ecommerce-integration/internal/api/order/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/adapters/grpc/mappers"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/ports"
)

var _ ports.OrderService = (*OrderClient)(nil)

type OrderClient struct {
	client orderv1.OrderClient
}

func NewOrderClient(client orderv1.OrderClient) *OrderClient {
	return &OrderClient{client: client}
}

// CreateOrder submits the order. The returned id may be empty; callers
// recover the id through the listing.
func (c *OrderClient) CreateOrder(ctx context.Context, req domain.NewOrder) (string, error) {
	res, err := c.client.CreateOrder(ctx, mappers.OrderToProto(req))
	if err != nil {
		return "", fmt.Errorf("grpc CreateOrder: %w", err)
	}
	return res.GetOrder().GetId(), nil
}

func (c *OrderClient) ListOrders(ctx context.Context, pageSize, pageNumber int64) (domain.OrderPage, error) {
	res, err := c.client.ListOrders(ctx, &orderv1.ListOrdersRequest{
		PageSize:   pageSize,
		PageNumber: pageNumber,
	})
	if err != nil {
		return domain.OrderPage{}, fmt.Errorf("grpc ListOrders page %d: %w", pageNumber, err)
	}
	return mappers.OrderPageFromProto(res), nil
}
