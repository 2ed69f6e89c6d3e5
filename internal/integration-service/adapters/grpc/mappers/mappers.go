// Package mappers converts between the wire contracts and the integration
// domain.
package mappers

import (
	"fmt"

	"github.com/shopspring/decimal"

	customerv1 "github.com/jcmexdev/ecommerce-integration/internal/api/customer/v1"
	orderv1 "github.com/jcmexdev/ecommerce-integration/internal/api/order/v1"
	productv1 "github.com/jcmexdev/ecommerce-integration/internal/api/product/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
)

func CustomerToProto(c domain.NewCustomer) *customerv1.CreateCustomerRequest {
	return &customerv1.CreateCustomerRequest{
		FullName: c.FullName,
		Email:    c.Email,
		Password: c.Password,
		Address: &customerv1.ShippingAddress{
			Address: c.Address,
			Country: c.Country,
		},
		PaymentMethods: []*customerv1.PaymentMethod{
			{
				CreditCardNumber: c.CreditCardNumber,
				CreditCardType:   c.CreditCardType,
			},
		},
	}
}

// QuoteFromProto parses the product price. A price that is not a plain
// decimal is reported as domain.ErrInvalidQuote.
func QuoteFromProto(p *productv1.ProductResponse) (domain.ProductQuote, error) {
	if p.GetId() == "" {
		return domain.ProductQuote{}, fmt.Errorf("%w: empty product id", domain.ErrInvalidQuote)
	}
	price, err := decimal.NewFromString(p.GetPricePerUnit())
	if err != nil {
		return domain.ProductQuote{}, fmt.Errorf("%w: price %q of %s: %v", domain.ErrInvalidQuote, p.GetPricePerUnit(), p.GetId(), err)
	}
	return domain.ProductQuote{ProductID: p.GetId(), UnitPrice: price}, nil
}

func OrderToProto(o domain.NewOrder) *orderv1.CreateOrderRequest {
	price := o.UnitPrice.String()
	return &orderv1.CreateOrderRequest{
		CustomerId: o.CustomerID,
		Items: []*orderv1.OrderItem{
			{
				ProductId:    o.ProductID,
				PricePerUnit: price,
				Quantity:     o.Quantity,
			},
		},
		PricePerUnit:  price,
		Quantity:      o.Quantity,
		Status:        StatusToProto(o.Status),
		DateCreated:   o.DateCreated,
		DateDelivered: o.DateDelivered,
	}
}

func StatusToProto(s domain.OrderStatus) orderv1.Status {
	return orderv1.Status(int32(s))
}

func OrderPageFromProto(res *orderv1.ListOrdersResponse) domain.OrderPage {
	orders := make([]domain.ListedOrder, 0, len(res.GetOrders()))
	for _, o := range res.GetOrders() {
		orders = append(orders, domain.ListedOrder{
			ID:         o.GetId(),
			CustomerID: o.GetCustomerId(),
		})
	}
	return domain.OrderPage{
		Orders:     orders,
		PageNumber: res.GetPageNumber(),
		TotalPages: res.GetTotalPages(),
	}
}
