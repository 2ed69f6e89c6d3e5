package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	orderv1 "github.com/jcmexdev/ecommerce-integration/internal/api/order/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/cache"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/interceptors"
)

func newServer() orderv1.OrderServer {
	return NewOrderServer(cache.NewMemoryCache("order"), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func createReq(customer string) *orderv1.CreateOrderRequest {
	return &orderv1.CreateOrderRequest{
		CustomerId: customer,
		Items:      []*orderv1.OrderItem{{ProductId: "p-1", PricePerUnit: "12.50", Quantity: 2}},
		Status:     orderv1.Status_SHIPPED,
	}
}

func TestOrderServer_CreateOrder(t *testing.T) {
	srv := newServer()

	res, err := srv.CreateOrder(context.Background(), createReq("c-1"))
	require.NoError(t, err)
	assert.NotEmpty(t, res.GetOrder().GetId())
	assert.Equal(t, "25.00", res.GetOrder().GetTotalAmount())
	assert.Equal(t, orderv1.Status_SHIPPED, res.GetOrder().GetStatus())
}

func TestOrderServer_CreateOrderInvalid(t *testing.T) {
	srv := newServer()

	_, err := srv.CreateOrder(context.Background(), &orderv1.CreateOrderRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	req := createReq("c-1")
	req.Items[0].PricePerUnit = "$$"
	_, err = srv.CreateOrder(context.Background(), req)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestOrderServer_IdempotentReplay(t *testing.T) {
	srv := newServer()
	ctx := interceptors.WithIdempotencyKey(context.Background(), "key-1")

	first, err := srv.CreateOrder(ctx, createReq("c-1"))
	require.NoError(t, err)
	second, err := srv.CreateOrder(ctx, createReq("c-1"))
	require.NoError(t, err)
	assert.Equal(t, first.GetOrder().GetId(), second.GetOrder().GetId())

	other, err := srv.CreateOrder(interceptors.WithIdempotencyKey(context.Background(), "key-2"), createReq("c-1"))
	require.NoError(t, err)
	assert.NotEqual(t, first.GetOrder().GetId(), other.GetOrder().GetId())

	list, err := srv.ListOrders(context.Background(), &orderv1.ListOrdersRequest{PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, list.GetOrders(), 2)
}

func TestOrderServer_ListOrders(t *testing.T) {
	srv := newServer()
	for i := 0; i < 5; i++ {
		_, err := srv.CreateOrder(context.Background(), createReq(fmt.Sprintf("c-%d", i)))
		require.NoError(t, err)
	}

	page0, err := srv.ListOrders(context.Background(), &orderv1.ListOrdersRequest{PageSize: 2, PageNumber: 0})
	require.NoError(t, err)
	require.Len(t, page0.GetOrders(), 2)
	assert.Equal(t, "c-0", page0.GetOrders()[0].GetCustomerId())
	assert.Equal(t, int64(3), page0.GetTotalPages())
	assert.Equal(t, int64(5), page0.GetTotalElements())

	page2, err := srv.ListOrders(context.Background(), &orderv1.ListOrdersRequest{PageSize: 2, PageNumber: 2})
	require.NoError(t, err)
	require.Len(t, page2.GetOrders(), 1)
	assert.Equal(t, "c-4", page2.GetOrders()[0].GetCustomerId())

	beyond, err := srv.ListOrders(context.Background(), &orderv1.ListOrdersRequest{PageSize: 2, PageNumber: 9})
	require.NoError(t, err)
	assert.Empty(t, beyond.GetOrders())

	_, err = srv.ListOrders(context.Background(), &orderv1.ListOrdersRequest{PageNumber: -1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
