package log

import "context"

// loggerCtxKey is the key used to store the logger in the context.
type loggerCtxKey struct{}

// WithContextLogger adds a logger to the context that can be retrieved later.
func WithContextLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

// GetContextLogger retrieves the logger from the context.
// If no logger is stored in the context, nil is returned.
func GetContextLogger(ctx context.Context) Logger {
	logger, ok := ctx.Value(loggerCtxKey{}).(Logger)
	if !ok {
		return nil
	}

	return logger
}

// FromContextOr returns the context logger, or fallback when none is set.
func FromContextOr(ctx context.Context, fallback Logger) Logger {
	if logger := GetContextLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
