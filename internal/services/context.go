package services

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	fileNameKey  contextKey = "file_name"
)

// WithRequestID annotates context with a submission correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithFileName annotates context with the name of the file being summarized.
func WithFileName(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, fileNameKey, name)
}

// FileNameFromContext returns the file name if present.
func FileNameFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(fileNameKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}
