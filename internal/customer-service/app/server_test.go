package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	customerv1 "github.com/jcmexdev/ecommerce-integration/internal/api/customer/v1"
	"github.com/jcmexdev/ecommerce-integration/internal/pkg/interceptors"
)

func newServer() customerv1.CustomerServer {
	return NewCustomerServer(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func req(email string) *customerv1.CreateCustomerRequest {
	return &customerv1.CreateCustomerRequest{
		FullName: "Ada Lovelace",
		Email:    email,
		Password: " ",
		Address:  &customerv1.ShippingAddress{Address: "1 Main St", Country: "UK"},
		PaymentMethods: []*customerv1.PaymentMethod{
			{CreditCardNumber: "4111", CreditCardType: "visa"},
		},
	}
}

func TestCustomerServer_Create(t *testing.T) {
	res, err := newServer().CreateCustomer(context.Background(), req("Ada@Example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, res.GetId())
	assert.Equal(t, "ada@example.com", res.GetEmail())
	assert.Equal(t, "Ada Lovelace", res.GetFullName())
}

func TestCustomerServer_Conflict(t *testing.T) {
	srv := newServer()
	_, err := srv.CreateCustomer(context.Background(), req("ada@example.com"))
	require.NoError(t, err)

	_, err = srv.CreateCustomer(context.Background(), req(" ADA@example.com"))
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.AlreadyExists, st.Code())

	require.Len(t, st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	require.True(t, ok)
	assert.Equal(t, customerv1.ReasonCustomerExists, info.GetReason())
	assert.Equal(t, "ada@example.com", info.GetMetadata()[customerv1.ErrorMetadataEmailKey])
}

func TestCustomerServer_IdempotentReplay(t *testing.T) {
	srv := newServer()
	ctx := interceptors.WithIdempotencyKey(context.Background(), "key-1")

	first, err := srv.CreateCustomer(ctx, req("ada@example.com"))
	require.NoError(t, err)
	again, err := srv.CreateCustomer(ctx, req("ada@example.com"))
	require.NoError(t, err)
	assert.Equal(t, first.GetId(), again.GetId())

	_, err = srv.CreateCustomer(interceptors.WithIdempotencyKey(context.Background(), "key-2"), req("ada@example.com"))
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestCustomerServer_MissingEmail(t *testing.T) {
	_, err := newServer().CreateCustomer(context.Background(), req("  "))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
