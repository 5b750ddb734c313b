package retry

import "context"

// retrierKey is the key for the retrier in the context.
type retrierKey struct{}

// ToContext sets the retrier used by Do for operations performed with ctx.
func ToContext(ctx context.Context, retrier Retrier) context.Context {
	return context.WithValue(ctx, retrierKey{}, retrier)
}

// FromContext gets the retrier from the context.
func FromContext(ctx context.Context) Retrier {
	retrier, ok := ctx.Value(retrierKey{}).(Retrier)
	if !ok {
		return nil
	}

	return retrier
}

// FromContextOrNoop returns the retrier from the context, or a NoopRetrier if none is set.
func FromContextOrNoop(ctx context.Context) Retrier {
	retrier := FromContext(ctx)
	if retrier != nil {
		return retrier
	}

	return &NoopRetrier{}
}
