package s3remote

import (
	"errors"
	"fmt"
)

var (
	// ErrRefNotFound is returned when a local ref cannot be resolved to a revision.
	ErrRefNotFound = errors.New("ref not found")

	// ErrNoRecipients is returned when encryption is enabled but neither
	// remote.<alias>.gpgRecipients nor user.email is configured.
	ErrNoRecipients = errors.New("no encryption recipients configured")

	// ErrRefMismatch is returned when a push asks to store a local ref under a
	// different remote name. Bundles carry the source ref name, so it must
	// match the destination.
	ErrRefMismatch = errors.New("source and destination refs must match")

	// ErrRefDeletion is returned for pushes with an empty source.
	ErrRefDeletion = errors.New("deleting remote refs is not supported")

	// ErrNoObjectStore is returned when an operation runs without a configured object store.
	ErrNoObjectStore = errors.New("no object store configured")

	// ErrInvalidRevision is returned when a fetch names an empty or malformed revision.
	ErrInvalidRevision = errors.New("invalid revision")
)

// RefNotFoundError provides structured information about a ref that could not be resolved.
// It supports errors.Is for the underlying ErrRefNotFound.
type RefNotFoundError struct {
	Ref string
	Err error
}

func (e *RefNotFoundError) Error() string {
	return fmt.Sprintf("ref %s not found: %v", e.Ref, e.Err)
}

func (e *RefNotFoundError) Unwrap() error {
	return e.Err
}

// NewRefNotFoundError creates a new RefNotFoundError for the given ref. cause
// is kept in the chain so that callers can inspect the adapter failure.
func NewRefNotFoundError(ref string, cause error) *RefNotFoundError {
	err := ErrRefNotFound
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrRefNotFound, cause)
	}

	return &RefNotFoundError{
		Ref: ref,
		Err: err,
	}
}
