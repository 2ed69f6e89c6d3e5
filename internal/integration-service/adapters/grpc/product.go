package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	productv1 "github.com/jcmexdev/ecommerce-integration/internal/api/product/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/adapters/grpc/mappers"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/ports"
)

var _ ports.ProductCatalog = (*ProductClient)(nil)

type ProductClient struct {
	client productv1.ProductClient
}

func NewProductClient(client productv1.ProductClient) *ProductClient {
	return &ProductClient{client: client}
}

// GetProductByReference fetches a fresh quote. An unknown reference is
// domain.ErrInvalidQuote so the record is skipped instead of retried.
func (c *ProductClient) GetProductByReference(ctx context.Context, reference string) (domain.ProductQuote, error) {
	res, err := c.client.GetProductByReference(ctx, wrapperspb.String(reference))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ProductQuote{}, fmt.Errorf("grpc GetProductByReference %q: %w: %v", reference, domain.ErrInvalidQuote, err)
		}
		return domain.ProductQuote{}, fmt.Errorf("grpc GetProductByReference %q: %w", reference, err)
	}
	return mappers.QuoteFromProto(res)
}
