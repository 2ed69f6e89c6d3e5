// Package domain holds the integration service's value types and the error
// taxonomy used to decide whether a failed record is retried or skipped.
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// IntakeRecord is one row of an intake batch. Fields are kept as read; no
// validation happens at parse time.
type IntakeRecord struct {
	ID               string `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	SupplierPID      string `json:"supplier_pid"`
	CreditCardNumber string `json:"-"`
	CreditCardType   string `json:"credit_card_type"`
	// OrderID is carried but never used; remote ids come from the order service.
	OrderID         string `json:"order_id"`
	ProductPID      string `json:"product_pid"`
	ShippingAddress string `json:"shipping_address"`
	Country         string `json:"country"`
	DateCreated     string `json:"date_created"`
	Quantity        string `json:"quantity"`
	FullName        string `json:"full_name"`
	OrderStatus     string `json:"order_status"`

	// Line is the 1-based line of the row in the source file.
	Line int `json:"line"`
}

// CustomerFullName is the name sent to the customer service. The FullName
// column is ignored in favour of first + last.
func (r IntakeRecord) CustomerFullName() string {
	return r.FirstName + " " + r.LastName
}

// ProductQuote is the catalog price of a product at the time of placement.
type ProductQuote struct {
	ProductID string
	UnitPrice decimal.Decimal
}

// OrderCorrelation pairs the order id recovered from the listing with the
// supplier reference of the record that produced it.
type OrderCorrelation struct {
	OrderID     string
	SupplierRef string
}

// ProcessedRecord is one entry of the output document.
type ProcessedRecord struct {
	UserPID     string `json:"userPid"`
	OrderPID    string `json:"orderPid"`
	SupplierPID string `json:"supplierPid"`
}

// BatchSummary describes a finished batch.
type BatchSummary struct {
	BatchID   string
	Total     int
	Processed int
	Skipped   int
}

// NewCustomer is the provisioning request built from an intake record.
type NewCustomer struct {
	FullName         string
	Email            string
	Password         string
	Address          string
	Country          string
	CreditCardNumber string
	CreditCardType   string
}

// NewOrder is the placement request built from an intake record and a quote.
type NewOrder struct {
	CustomerID    string
	ProductID     string
	UnitPrice     decimal.Decimal
	Quantity      int32
	Status        OrderStatus
	DateCreated   string
	DateDelivered string
}

// ListedOrder is one entry of an order listing page.
type ListedOrder struct {
	ID         string
	CustomerID string
}

// OrderPage is one page of the order listing.
type OrderPage struct {
	Orders     []ListedOrder
	PageNumber int64
	TotalPages int64
}

// Key identifies the record inside its batch: the id column, or the line
// when the id is blank.
func (r IntakeRecord) Key() string {
	if r.ID != "" {
		return r.ID
	}
	return fmt.Sprintf("line-%d", r.Line)
}
