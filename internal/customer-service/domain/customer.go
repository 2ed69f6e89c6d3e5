package domain

import (
	"errors"
	"strings"
)

type PaymentMethod struct {
	CreditCardNumber string
	CreditCardType   string
}

type Customer struct {
	ID             string
	FullName       string
	Email          string
	Address        string
	Country        string
	PaymentMethods []PaymentMethod
}

var ErrEmailRequired = errors.New("email is required")

// NormalizeEmail is the uniqueness key of a customer.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
