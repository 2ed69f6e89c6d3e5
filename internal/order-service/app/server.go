// Package app is an in-memory order service. Orders are listed in creation
// order; a repeated idempotency key replays the order created first.
package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	orderv1 "github.com/jcmexdev/ecommerce-integration/internal/api/order/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/order-service/adapters/grpc/mappers"
	"github.com/jcmexdev/ecommerce-integration/internal/order-service/domain"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/cache"
)

const (
	idempotencyTTL  = 24 * time.Hour
	defaultPageSize = 20
)

type orderServer struct {
	orderv1.UnimplementedOrderServer
	mu     sync.RWMutex
	orders []*domain.Order
	byID   map[string]*domain.Order
	cache  cache.Cache
	logger *slog.Logger
}

func NewOrderServer(c cache.Cache, logger *slog.Logger) orderv1.OrderServer {
	return &orderServer{
		byID:   make(map[string]*domain.Order),
		cache:  c,
		logger: logger,
	}
}

func (s *orderServer) CreateOrder(ctx context.Context, req *orderv1.CreateOrderRequest) (*orderv1.CreateOrderResponse, error) {
	if req.GetCustomerId() == "" {
		return nil, status.Error(codes.InvalidArgument, "customer_id is required")
	}

	order, err := mappers.OrderFromProto(ctx, req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid order: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if order.IdempotencyKey != "" {
		if prev, ok := s.replay(ctx, order.IdempotencyKey); ok {
			s.logger.InfoContext(ctx, "order replayed", "order_id", prev.ID, "idempotency_key", order.IdempotencyKey)
			return &orderv1.CreateOrderResponse{Order: mappers.OrderToProto(prev)}, nil
		}
	}

	s.orders = append(s.orders, order)
	s.byID[order.ID] = order

	if order.IdempotencyKey != "" {
		key := s.cache.GenerateKey("create", order.IdempotencyKey)
		if err := s.cache.Set(ctx, key, order.ID, idempotencyTTL); err != nil {
			s.logger.WarnContext(ctx, "failed to cache idempotency key", "key", key, "error", err)
		}
	}

	s.logger.InfoContext(ctx, "order created",
		"order_id", order.ID,
		"customer_id", order.CustomerID,
		"total", order.TotalAmount.String(),
		"request_id", order.RequestID,
	)
	return &orderv1.CreateOrderResponse{Order: mappers.OrderToProto(order)}, nil
}

// replay must be called with s.mu held.
func (s *orderServer) replay(ctx context.Context, idempotencyKey string) (*domain.Order, bool) {
	id, err := s.cache.Get(ctx, s.cache.GenerateKey("create", idempotencyKey))
	if err != nil {
		s.logger.WarnContext(ctx, "idempotency lookup failed", "error", err)
		return nil, false
	}
	if id == "" {
		return nil, false
	}
	prev, ok := s.byID[id]
	return prev, ok
}

// ListOrders serves 0-based pages in creation order.
func (s *orderServer) ListOrders(ctx context.Context, req *orderv1.ListOrdersRequest) (*orderv1.ListOrdersResponse, error) {
	size := req.GetPageSize()
	if size <= 0 {
		size = defaultPageSize
	}
	page := req.GetPageNumber()
	if page < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "page_number must not be negative, got %d", page)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	total := int64(len(s.orders))
	from := min(page*size, total)
	to := min(from+size, total)

	out := make([]*orderv1.OrderInfo, 0, to-from)
	for _, o := range s.orders[from:to] {
		out = append(out, mappers.OrderToProto(o))
	}

	return &orderv1.ListOrdersResponse{
		Orders:        out,
		PageNumber:    page,
		TotalPages:    (total + size - 1) / size,
		TotalElements: total,
	}, nil
}
