package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/ports"
)

// placeholderPassword is sent for every provisioned customer; intake files
// carry no credentials.
const placeholderPassword = " "

// CustomerProvisioner creates the customer that owns a record's order.
type CustomerProvisioner struct {
	customers ports.CustomerService
	logger    *slog.Logger
}

func NewCustomerProvisioner(customers ports.CustomerService, logger *slog.Logger) *CustomerProvisioner {
	return &CustomerProvisioner{customers: customers, logger: logger}
}

// Provision returns the remote id of the new customer. A conflict on the
// email comes back as domain.ErrCustomerExists.
func (p *CustomerProvisioner) Provision(ctx context.Context, rec domain.IntakeRecord) (string, error) {
	id, err := p.customers.CreateCustomer(ctx, domain.NewCustomer{
		FullName:         rec.CustomerFullName(),
		Email:            rec.Email,
		Password:         placeholderPassword,
		Address:          rec.ShippingAddress,
		Country:          rec.Country,
		CreditCardNumber: rec.CreditCardNumber,
		CreditCardType:   rec.CreditCardType,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCustomerExists) {
			p.logger.WarnContext(ctx, "customer already exists", "record_id", rec.ID, "email", rec.Email, "error", err)
		}
		return "", err
	}

	p.logger.DebugContext(ctx, "customer provisioned", "record_id", rec.ID, "customer_id", id)
	return id, nil
}
