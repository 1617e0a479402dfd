package api

import "context"

type requestIDContextKey struct{}

// WithRequestID attaches a caller-chosen request identifier to ctx. It is
// propagated as the X-Request-ID header instead of the generated one,
// letting embedders correlate client and server logs.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(requestIDContextKey{}).(string)
	return requestID
}
