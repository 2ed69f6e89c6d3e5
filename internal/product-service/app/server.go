package app

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	productv1 "github.com/jcmexdev/ecommerce-integration/internal/api/product/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/product-service/domain"
)

type productServer struct {
	productv1.UnimplementedProductServer
	catalog *domain.Catalog
	logger  *slog.Logger
}

func NewProductServer(catalog *domain.Catalog, logger *slog.Logger) productv1.ProductServer {
	return &productServer{catalog: catalog, logger: logger}
}

func (s *productServer) GetProductByReference(ctx context.Context, req *wrapperspb.StringValue) (*productv1.ProductResponse, error) {
	ref := req.GetValue()
	if ref == "" {
		return nil, status.Error(codes.InvalidArgument, "product reference is required")
	}

	p, err := s.catalog.Lookup(ref)
	if errors.Is(err, domain.ErrProductNotFound) {
		s.logger.WarnContext(ctx, "product not found", "reference", ref)
		return nil, status.Error(codes.NotFound, err.Error())
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &productv1.ProductResponse{
		Id:           p.ID,
		Reference:    p.Reference,
		Name:         p.Name,
		PricePerUnit: p.PricePerUnit.String(),
	}, nil
}
