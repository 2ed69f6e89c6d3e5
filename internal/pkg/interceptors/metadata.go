// Package interceptors carries the request id and idempotency key across
// gRPC hops: servers lift them from incoming metadata into the context and
// clients push them from the context into outgoing metadata.
package interceptors

import (
	"context"

	"google.golang.org/grpc/metadata"

	"github.com/jcmexdev/ecommerce-integration/internal/pkg/interceptors/constants"
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, constants.ContextKeyRequestID, id)
}

func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, constants.ContextKeyIdempotencyKey, key)
}

// RequestIDFromContext returns the request id stored by WithRequestID or the
// server interceptor, falling back to incoming metadata.
func RequestIDFromContext(ctx context.Context) string {
	return valueOrMetadata(ctx, constants.ContextKeyRequestID, constants.HeaderXRequestId)
}

// IdempotencyKeyFromContext is RequestIDFromContext for the idempotency key.
func IdempotencyKeyFromContext(ctx context.Context) string {
	return valueOrMetadata(ctx, constants.ContextKeyIdempotencyKey, constants.HeaderXIdempotencyKey)
}

func valueOrMetadata(ctx context.Context, key any, header string) string {
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(header); len(vals) > 0 {
			return vals[0]
		}
	}
	return ""
}
