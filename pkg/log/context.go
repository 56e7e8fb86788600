package log

import "context"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	sessionIDKey
)

// WithRequestID stores the request id so every log line of the request carries it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithSessionID stores the conversation session id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

// SessionID returns the session id stored in ctx, or "".
func SessionID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(sessionIDKey).(string)
	return v
}

func fieldsFromContext(ctx context.Context) []any {
	var fields []any
	if id := RequestID(ctx); id != "" {
		fields = append(fields, "request_id", id)
	}
	if id := SessionID(ctx); id != "" {
		fields = append(fields, "session_id", id)
	}
	return fields
}
