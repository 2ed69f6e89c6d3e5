package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	valid := map[string]OrderStatus{
		"0": OrderStatusCreated,
		"1": OrderStatusShipped,
		"2": OrderStatusDelivered,
	}
	for code, want := range valid {
		got, err := ParseOrderStatus(code)
		require.NoError(t, err, code)
		assert.Equal(t, want, got)
	}

	for _, code := range []string{"9", "", " 1", "CREATED", "-1"} {
		_, err := ParseOrderStatus(code)
		require.ErrorIs(t, err, ErrValidation, code)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "order_status", vErr.Field)
		assert.Equal(t, code, vErr.Value)
	}
}

func TestOrderStatus_String(t *testing.T) {
	assert.Equal(t, "CREATED", OrderStatusCreated.String())
	assert.Equal(t, "SHIPPED", OrderStatusShipped.String())
	assert.Equal(t, "DELIVERED", OrderStatusDelivered.String())
	assert.Equal(t, "OrderStatus(7)", OrderStatus(7).String())
}

func TestIsPermanent(t *testing.T) {
	assert.True(t, IsPermanent(ErrCustomerExists))
	assert.True(t, IsPermanent(fmt.Errorf("provision: %w", ErrCorrelationMiss)))
	assert.True(t, IsPermanent(&ValidationError{Field: "quantity", Value: "x", Err: errors.New("nan")}))
	assert.True(t, IsPermanent(ErrInvalidQuote))
	assert.False(t, IsPermanent(errors.New("connection refused")))
	assert.False(t, IsPermanent(ErrSink))
}

func TestIntakeRecord_CustomerFullName(t *testing.T) {
	r := IntakeRecord{FirstName: "Ada", LastName: "Lovelace", FullName: "ignored"}
	assert.Equal(t, "Ada Lovelace", r.CustomerFullName())
}

func TestIntakeRecord_Key(t *testing.T) {
	assert.Equal(t, "42", IntakeRecord{ID: "42", Line: 3}.Key())
	assert.Equal(t, "line-3", IntakeRecord{Line: 3}.Key())
}
