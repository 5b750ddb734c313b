package storage

import "context"

// objectStoreKey is the key for the object store in the context.
type objectStoreKey struct{}

// ToContext sets the object store to use for operations performed with ctx.
func ToContext(ctx context.Context, store ObjectStore) context.Context {
	return context.WithValue(ctx, objectStoreKey{}, store)
}

// FromContext gets the object store from the context, or nil if none is set.
func FromContext(ctx context.Context) ObjectStore {
	store, ok := ctx.Value(objectStoreKey{}).(ObjectStore)
	if !ok {
		return nil
	}

	return store
}
