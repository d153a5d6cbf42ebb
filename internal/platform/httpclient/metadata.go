package httpclient

import (
	"context"
	"net/http"
)

// Outbound headers set from context metadata.
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderCorrelationID  = "X-Correlation-ID"
	HeaderIdempotencyKey = "Idempotency-Key"
)

type metadataKey struct{}

// metadata is the per-request identity forwarded to the CRM.
type metadata struct {
	requestID      string
	correlationID  string
	idempotencyKey string
}

func metadataFrom(ctx context.Context) metadata {
	md, _ := ctx.Value(metadataKey{}).(metadata)
	return md
}

func withMetadata(ctx context.Context, set func(*metadata)) context.Context {
	md := metadataFrom(ctx)
	set(&md)
	return context.WithValue(ctx, metadataKey{}, md)
}

// WithRequestID stores the inbound request ID for forwarding.
func WithRequestID(ctx context.Context, id string) context.Context {
	return withMetadata(ctx, func(md *metadata) { md.requestID = id })
}

// WithCorrelationID stores the inbound correlation ID for forwarding.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return withMetadata(ctx, func(md *metadata) { md.correlationID = id })
}

// WithIdempotencyKey attaches a key sent as Idempotency-Key. A request that
// carries one is retried whatever its method.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return withMetadata(ctx, func(md *metadata) { md.idempotencyKey = key })
}

func (md metadata) apply(h http.Header) {
	for name, v := range map[string]string{
		HeaderRequestID:      md.requestID,
		HeaderCorrelationID:  md.correlationID,
		HeaderIdempotencyKey: md.idempotencyKey,
	} {
		if v != "" {
			h.Set(name, v)
		}
	}
}
