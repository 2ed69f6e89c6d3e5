package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
)

type capturingCustomers struct {
	req domain.NewCustomer
}

func (c *capturingCustomers) CreateCustomer(_ context.Context, req domain.NewCustomer) (string, error) {
	c.req = req
	return "cust-1", nil
}

func TestCustomerProvisioner_BuildsRequest(t *testing.T) {
	customers := &capturingCustomers{}
	rec := record("1", "0")
	rec.FullName = "Some Other Name"

	id, err := NewCustomerProvisioner(customers, discardLogger()).Provision(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, "cust-1", id)

	assert.Equal(t, domain.NewCustomer{
		FullName:         "First1 Last1",
		Email:            "user1@example.com",
		Password:         " ",
		Address:          "1 Main St",
		Country:          "US",
		CreditCardNumber: "4111",
		CreditCardType:   "visa",
	}, customers.req)
}

func TestCustomerProvisioner_Conflict(t *testing.T) {
	customers := &fakeCustomers{existing: map[string]bool{"user1@example.com": true}}

	_, err := NewCustomerProvisioner(customers, discardLogger()).Provision(context.Background(), record("1", "0"))
	require.ErrorIs(t, err, domain.ErrCustomerExists)
	assert.True(t, domain.IsPermanent(err))
}

func TestCustomerProvisioner_TransportFailure(t *testing.T) {
	customers := &fakeCustomers{failures: 1}

	_, err := NewCustomerProvisioner(customers, discardLogger()).Provision(context.Background(), record("1", "0"))
	require.ErrorIs(t, err, errUnavailable)
	assert.False(t, domain.IsPermanent(err))
}
