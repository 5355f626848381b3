// Package requestctx carries the per-request correlation id through
// context so log lines and response envelopes can reference it without
// threading it as a parameter.
package requestctx

import "context"

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID attaches the id to the context. A blank id is a no-op so
// callers never have to guard against clobbering an existing one.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDKey).(string); ok {
		return value
	}
	return ""
}
