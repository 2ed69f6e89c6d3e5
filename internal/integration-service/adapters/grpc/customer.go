// Package grpc holds the outbound adapters of the integration service: one
// client per downstream service, each implementing a port.
package grpc

import (
	"context"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	customerv1 "github.com/jcmexdev/ecommerce-integration/internal/api/customer/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/adapters/grpc/mappers"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/ports"
)

var _ ports.CustomerService = (*CustomerClient)(nil)

type CustomerClient struct {
	client customerv1.CustomerClient
}

func NewCustomerClient(client customerv1.CustomerClient) *CustomerClient {
	return &CustomerClient{client: client}
}

// CreateCustomer returns the new customer id. AlreadyExists is translated to
// domain.ErrCustomerExists; every other failure is returned wrapped as is.
func (c *CustomerClient) CreateCustomer(ctx context.Context, req domain.NewCustomer) (string, error) {
	res, err := c.client.CreateCustomer(ctx, mappers.CustomerToProto(req))
	if err != nil {
		if st, ok := status.FromError(err); ok && st.Code() == codes.AlreadyExists {
			return "", fmt.Errorf("grpc CreateCustomer: %w (%s)", domain.ErrCustomerExists, conflictReason(st))
		}
		return "", fmt.Errorf("grpc CreateCustomer: %w", err)
	}
	if res.GetId() == "" {
		return "", fmt.Errorf("grpc CreateCustomer: empty customer id in response")
	}
	return res.GetId(), nil
}

// conflictReason reads the ErrorInfo detail attached by the customer service.
func conflictReason(st *status.Status) string {
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return fmt.Sprintf("%s %s=%s", info.GetReason(), customerv1.ErrorMetadataEmailKey, info.GetMetadata()[customerv1.ErrorMetadataEmailKey])
		}
	}
	return st.Message()
}
