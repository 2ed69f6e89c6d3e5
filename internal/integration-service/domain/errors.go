package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCustomerExists is returned when the customer service reports a
	// conflict for the record's email.
	ErrCustomerExists = errors.New("customer already exists")

	// ErrCorrelationMiss is returned when no listed order belongs to the customer.
	ErrCorrelationMiss = errors.New("order not found in listing")

	// ErrValidation marks a record whose fields cannot be mapped to a request.
	ErrValidation = errors.New("invalid record")

	// ErrInvalidQuote is returned when the product service answers with a
	// price that is not a decimal number.
	ErrInvalidQuote = errors.New("invalid product quote")

	// ErrSink wraps output failures. It is the only run-level error besides
	// an aborting validation failure.
	ErrSink = errors.New("output sink failure")
)

// ValidationError names the offending field. It matches ErrValidation.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

// IsPermanent reports whether err must not be retried.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrCustomerExists) ||
		errors.Is(err, ErrCorrelationMiss) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidQuote)
}
