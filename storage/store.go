package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrObjectNotFound is returned when a key does not exist in the store.
var ErrObjectNotFound = errors.New("object not found")

// ObjectNotFoundError provides the key that could not be found.
// It supports errors.Is for the underlying ErrObjectNotFound.
type ObjectNotFoundError struct {
	Key Key
	Err error
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return e.Err
}

// NewObjectNotFoundError creates a new ObjectNotFoundError for the given key.
func NewObjectNotFoundError(key Key) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		Key: key,
		Err: ErrObjectNotFound,
	}
}

// Object describes an entry returned by a listing.
type Object struct {
	Key          Key
	LastModified time.Time
	Size         int64
}

// ObjectStore is the minimal set of operations the remote needs from a bucket.
// Implementations must be safe to call sequentially from a single goroutine;
// there is no locking across processes.
//
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ../mocks/object_store.go . ObjectStore
type ObjectStore interface {
	// Get returns the full contents of the object.
	// A missing key yields an error wrapping ErrObjectNotFound.
	Get(ctx context.Context, key Key) ([]byte, error)
	// Put writes data to key, replacing any existing object.
	Put(ctx context.Context, key Key, data []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key Key) error
	// List returns every object in prefix.Bucket whose path starts with
	// prefix.Path, in lexical key order. The prefix is matched as a plain string.
	List(ctx context.Context, prefix Key) ([]Object, error)
	// Rename copies from to to and then deletes from.
	// It is not atomic: a failure after the copy leaves both keys in place.
	Rename(ctx context.Context, from, to Key) error
}
