// Package app is an in-memory customer service. Emails are unique; a second
// create for a known email fails with AlreadyExists unless it repeats the
// idempotency key of the first.
package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	customerv1 "github.com/jcmexdev/ecommerce-integration/internal/api/customer/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/customer-service/domain"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/interceptors"
)

type customerServer struct {
	customerv1.UnimplementedCustomerServer
	mu      sync.Mutex
	byEmail map[string]*domain.Customer
	byKey   map[string]string
	logger  *slog.Logger
}

func NewCustomerServer(logger *slog.Logger) customerv1.CustomerServer {
	return &customerServer{
		byEmail: make(map[string]*domain.Customer),
		byKey:   make(map[string]string),
		logger:  logger,
	}
}

func (s *customerServer) CreateCustomer(ctx context.Context, req *customerv1.CreateCustomerRequest) (*customerv1.CustomerResponse, error) {
	email := domain.NormalizeEmail(req.GetEmail())
	if email == "" {
		return nil, status.Error(codes.InvalidArgument, domain.ErrEmailRequired.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := interceptors.IdempotencyKeyFromContext(ctx)
	if existing, ok := s.byEmail[email]; ok {
		if key != "" && s.byKey[key] == existing.ID {
			return toProto(existing), nil
		}
		s.logger.WarnContext(ctx, "customer already exists", "email", email)
		return nil, alreadyExists(email)
	}

	c := &domain.Customer{
		ID:       uuid.NewString(),
		FullName: req.GetFullName(),
		Email:    email,
		Address:  req.GetAddress().GetAddress(),
		Country:  req.GetAddress().GetCountry(),
	}
	for _, pm := range req.GetPaymentMethods() {
		c.PaymentMethods = append(c.PaymentMethods, domain.PaymentMethod{
			CreditCardNumber: pm.GetCreditCardNumber(),
			CreditCardType:   pm.GetCreditCardType(),
		})
	}
	s.byEmail[email] = c
	if key != "" {
		s.byKey[key] = c.ID
	}

	s.logger.InfoContext(ctx, "customer created", "customer_id", c.ID, "request_id", interceptors.RequestIDFromContext(ctx))
	return toProto(c), nil
}

func alreadyExists(email string) error {
	st := status.Newf(codes.AlreadyExists, "customer with email %s already exists", email)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   customerv1.ReasonCustomerExists,
		Domain:   customerv1.ErrorDomain,
		Metadata: map[string]string{customerv1.ErrorMetadataEmailKey: email},
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

func toProto(c *domain.Customer) *customerv1.CustomerResponse {
	return &customerv1.CustomerResponse{
		Id:       c.ID,
		FullName: c.FullName,
		Email:    c.Email,
	}
}
