package mappers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderv1 "github.com/jcmexdev/ecommerce-integration/internal/api/order/v1"
	productv1 "github.com/jcmexdev/ecommerce-integration/internal/api/product/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
)

func TestCustomerToProto(t *testing.T) {
	req := CustomerToProto(domain.NewCustomer{
		FullName:         "Ada Lovelace",
		Email:            "ada@example.com",
		Password:         " ",
		Address:          "1 Main St",
		Country:          "UK",
		CreditCardNumber: "4111",
		CreditCardType:   "visa",
	})

	assert.Equal(t, "Ada Lovelace", req.GetFullName())
	assert.Equal(t, " ", req.GetPassword())
	assert.Equal(t, "UK", req.GetAddress().GetCountry())
	require.Len(t, req.GetPaymentMethods(), 1)
	assert.Equal(t, "4111", req.GetPaymentMethods()[0].GetCreditCardNumber())
}

func TestQuoteFromProto(t *testing.T) {
	t.Run("valid price", func(t *testing.T) {
		q, err := QuoteFromProto(&productv1.ProductResponse{Id: "p-1", PricePerUnit: "12.50"})
		require.NoError(t, err)
		assert.Equal(t, "p-1", q.ProductID)
		assert.True(t, q.UnitPrice.Equal(decimal.RequireFromString("12.5")))
	})

	t.Run("garbage price", func(t *testing.T) {
		_, err := QuoteFromProto(&productv1.ProductResponse{Id: "p-1", PricePerUnit: "$12.50"})
		require.ErrorIs(t, err, domain.ErrInvalidQuote)
	})

	t.Run("nil response", func(t *testing.T) {
		_, err := QuoteFromProto(nil)
		require.ErrorIs(t, err, domain.ErrInvalidQuote)
	})
}

func TestOrderToProto(t *testing.T) {
	req := OrderToProto(domain.NewOrder{
		CustomerID:    "c-1",
		ProductID:     "p-1",
		UnitPrice:     decimal.RequireFromString("3.25"),
		Quantity:      4,
		Status:        domain.OrderStatusShipped,
		DateCreated:   "2024-03-01",
		DateDelivered: "2024-03-05",
	})

	assert.Equal(t, "c-1", req.GetCustomerId())
	assert.Equal(t, orderv1.Status_SHIPPED, req.GetStatus())
	assert.Equal(t, "3.25", req.GetPricePerUnit())
	assert.Equal(t, int32(4), req.GetQuantity())
	require.Len(t, req.GetItems(), 1)
	assert.Equal(t, "p-1", req.GetItems()[0].GetProductId())
	assert.Equal(t, "2024-03-01", req.GetDateCreated())
}

func TestOrderPageFromProto(t *testing.T) {
	page := OrderPageFromProto(&orderv1.ListOrdersResponse{
		Orders: []*orderv1.OrderInfo{
			{Id: "o-1", CustomerId: "c-1"},
			{Id: "o-2", CustomerId: "c-2"},
		},
		PageNumber: 0,
		TotalPages: 3,
	})

	assert.Equal(t, []domain.ListedOrder{{ID: "o-1", CustomerID: "c-1"}, {ID: "o-2", CustomerID: "c-2"}}, page.Orders)
	assert.Equal(t, int64(3), page.TotalPages)

	empty := OrderPageFromProto(nil)
	assert.Empty(t, empty.Orders)
}
