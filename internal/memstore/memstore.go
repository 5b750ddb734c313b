// Package memstore provides an in-memory storage.ObjectStore used by tests
// and by the end-to-end suite.
package memstore

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/grafana/s3remote/storage"
)

type entry struct {
	data     []byte
	modified time.Time
}

// Store keeps objects in a map guarded by a mutex.
// Every write stamps the object with the current time of the store clock.
type Store struct {
	mu      sync.Mutex
	objects map[storage.Key]entry
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp written objects.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty in-memory store.
func New(opts ...Option) *Store {
	s := &Store{
		objects: make(map[storage.Key]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SteppingClock returns a clock that starts at start and advances by step on
// every call, so consecutive writes never share a timestamp.
func SteppingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(step)
		return t
	}
}

func (s *Store) Get(ctx context.Context, key storage.Key) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.objects[key]
	if !ok {
		return nil, storage.NewObjectNotFoundError(key)
	}

	return slices.Clone(e.data), nil
}

func (s *Store) Put(ctx context.Context, key storage.Key, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[key] = entry{data: slices.Clone(data), modified: s.now()}
	return nil
}

func (s *Store) Delete(ctx context.Context, key storage.Key) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.objects, key)
	return nil
}

func (s *Store) List(ctx context.Context, prefix storage.Key) ([]storage.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	objects := make([]storage.Object, 0, len(s.objects))
	for key, e := range s.objects {
		if key.Bucket != prefix.Bucket || !strings.HasPrefix(key.Path, prefix.Path) {
			continue
		}
		objects = append(objects, storage.Object{
			Key:          key,
			LastModified: e.modified,
			Size:         int64(len(e.data)),
		})
	}

	slices.SortFunc(objects, func(a, b storage.Object) int {
		return strings.Compare(a.Key.Path, b.Key.Path)
	})

	return objects, nil
}

// Rename copies the object to a new key, stamping it with a fresh
// modification time the way a server-side copy does, and removes the source.
func (s *Store) Rename(ctx context.Context, from, to storage.Key) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.objects[from]
	if !ok {
		return storage.NewObjectNotFoundError(from)
	}

	s.objects[to] = entry{data: e.data, modified: s.now()}
	delete(s.objects, from)
	return nil
}

// Keys returns the paths of all stored objects in lexical order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.objects))
	for key := range s.objects {
		keys = append(keys, key.Path)
	}
	slices.Sort(keys)

	return keys
}

// Touch overrides the modification time of an existing object.
func (s *Store) Touch(key storage.Key, modified time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.objects[key]
	if !ok {
		return false
	}
	e.modified = modified
	s.objects[key] = e

	return true
}
