package domain

import "fmt"

// OrderStatus is the lifecycle state of an order as the order service knows it.
type OrderStatus int32

const (
	OrderStatusCreated   OrderStatus = 0
	OrderStatusShipped   OrderStatus = 1
	OrderStatusDelivered OrderStatus = 2
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusCreated:
		return "CREATED"
	case OrderStatusShipped:
		return "SHIPPED"
	case OrderStatusDelivered:
		return "DELIVERED"
	default:
		return fmt.Sprintf("OrderStatus(%d)", int32(s))
	}
}

// ParseOrderStatus maps the intake codes "0", "1" and "2". Anything else,
// including surrounding whitespace, is a validation failure.
func ParseOrderStatus(code string) (OrderStatus, error) {
	switch code {
	case "0":
		return OrderStatusCreated, nil
	case "1":
		return OrderStatusShipped, nil
	case "2":
		return OrderStatusDelivered, nil
	default:
		return 0, &ValidationError{Field: "order_status", Value: code, Err: fmt.Errorf("unknown order status %q", code)}
	}
}
