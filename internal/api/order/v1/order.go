// Package orderv1 holds the order.v1 service contract. The types mirror
// order.proto field for field and travel over the json codec.
package orderv1

import "strconv"

type Status int32

const (
	Status_CREATED   Status = 0
	Status_SHIPPED   Status = 1
	Status_DELIVERED Status = 2
)

var (
	Status_name = map[int32]string{
		0: "CREATED",
		1: "SHIPPED",
		2: "DELIVERED",
	}
	Status_value = map[string]int32{
		"CREATED":   0,
		"SHIPPED":   1,
		"DELIVERED": 2,
	}
)

func (x Status) String() string {
	if name, ok := Status_name[int32(x)]; ok {
		return name
	}
	return strconv.Itoa(int(x))
}

type OrderItem struct {
	ProductId    string `json:"product_id,omitempty"`
	PricePerUnit string `json:"price_per_unit,omitempty"`
	Quantity     int32  `json:"quantity,omitempty"`
}

func (x *OrderItem) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *OrderItem) GetPricePerUnit() string {
	if x != nil {
		return x.PricePerUnit
	}
	return ""
}

func (x *OrderItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

type CreateOrderRequest struct {
	CustomerId    string       `json:"customer_id,omitempty"`
	Items         []*OrderItem `json:"items,omitempty"`
	PricePerUnit  string       `json:"price_per_unit,omitempty"`
	Quantity      int32        `json:"quantity,omitempty"`
	Status        Status       `json:"status"`
	DateCreated   string       `json:"date_created,omitempty"`
	DateDelivered string       `json:"date_delivered,omitempty"`
}

func (x *CreateOrderRequest) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *CreateOrderRequest) GetItems() []*OrderItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *CreateOrderRequest) GetPricePerUnit() string {
	if x != nil {
		return x.PricePerUnit
	}
	return ""
}

func (x *CreateOrderRequest) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *CreateOrderRequest) GetStatus() Status {
	if x != nil {
		return x.Status
	}
	return Status_CREATED
}

func (x *CreateOrderRequest) GetDateCreated() string {
	if x != nil {
		return x.DateCreated
	}
	return ""
}

func (x *CreateOrderRequest) GetDateDelivered() string {
	if x != nil {
		return x.DateDelivered
	}
	return ""
}

type OrderInfo struct {
	Id            string       `json:"id,omitempty"`
	CustomerId    string       `json:"customer_id,omitempty"`
	Items         []*OrderItem `json:"items,omitempty"`
	Status        Status       `json:"status"`
	TotalAmount   string       `json:"total_amount,omitempty"`
	DateCreated   string       `json:"date_created,omitempty"`
	DateDelivered string       `json:"date_delivered,omitempty"`
}

func (x *OrderInfo) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *OrderInfo) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *OrderInfo) GetItems() []*OrderItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *OrderInfo) GetStatus() Status {
	if x != nil {
		return x.Status
	}
	return Status_CREATED
}

func (x *OrderInfo) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

func (x *OrderInfo) GetDateCreated() string {
	if x != nil {
		return x.DateCreated
	}
	return ""
}

func (x *OrderInfo) GetDateDelivered() string {
	if x != nil {
		return x.DateDelivered
	}
	return ""
}

type CreateOrderResponse struct {
	Order *OrderInfo `json:"order,omitempty"`
}

func (x *CreateOrderResponse) GetOrder() *OrderInfo {
	if x != nil {
		return x.Order
	}
	return nil
}

// ListOrdersRequest asks for one page of orders. Pages are 0-based.
type ListOrdersRequest struct {
	PageSize   int64 `json:"page_size,omitempty"`
	PageNumber int64 `json:"page_number,omitempty"`
}

func (x *ListOrdersRequest) GetPageSize() int64 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListOrdersRequest) GetPageNumber() int64 {
	if x != nil {
		return x.PageNumber
	}
	return 0
}

type ListOrdersResponse struct {
	Orders        []*OrderInfo `json:"orders,omitempty"`
	PageNumber    int64        `json:"page_number,omitempty"`
	TotalPages    int64        `json:"total_pages,omitempty"`
	TotalElements int64        `json:"total_elements,omitempty"`
}

func (x *ListOrdersResponse) GetOrders() []*OrderInfo {
	if x != nil {
		return x.Orders
	}
	return nil
}

func (x *ListOrdersResponse) GetPageNumber() int64 {
	if x != nil {
		return x.PageNumber
	}
	return 0
}

func (x *ListOrdersResponse) GetTotalPages() int64 {
	if x != nil {
		return x.TotalPages
	}
	return 0
}

func (x *ListOrdersResponse) GetTotalElements() int64 {
	if x != nil {
		return x.TotalElements
	}
	return 0
}
