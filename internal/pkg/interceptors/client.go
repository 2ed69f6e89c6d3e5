package interceptors

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/jcmexdev/ecommerce-integration/internal/pkg/interceptors/constants"
)

// PropagateClientInterceptor appends the request id and idempotency key held
// in ctx to the outgoing metadata. Keys already present are left untouched.
func PropagateClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		return invoker(propagate(ctx), method, req, reply, cc, opts...)
	}
}

func propagate(ctx context.Context) context.Context {
	out, _ := metadata.FromOutgoingContext(ctx)
	var kv []string
	if id := RequestIDFromContext(ctx); id != "" && len(out.Get(constants.HeaderXRequestId)) == 0 {
		kv = append(kv, constants.HeaderXRequestId, id)
	}
	if key := IdempotencyKeyFromContext(ctx); key != "" && len(out.Get(constants.HeaderXIdempotencyKey)) == 0 {
		kv = append(kv, constants.HeaderXIdempotencyKey, key)
	}
	if len(kv) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, kv...)
}
