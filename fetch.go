package s3remote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/grafana/s3remote/protocol"
	"github.com/grafana/s3remote/storage"
)

func (c *clientImpl) Fetch(ctx context.Context, revision, ref string) error {
	logger := c.loggerFor(ctx)

	if ref == protocol.HEAD.FullName {
		return nil
	}
	if revision == "" || strings.ContainsAny(revision, "/ ") {
		return fmt.Errorf("%w: %q", ErrInvalidRevision, revision)
	}
	if _, err := protocol.ParseRefName(ref); err != nil {
		return err
	}

	store, err := c.objectStore(ctx)
	if err != nil {
		return err
	}

	data, key, err := c.download(ctx, store, ref, revision)
	if err != nil {
		return err
	}

	bundle, err := c.crypter.Decrypt(ctx, data)
	if err != nil {
		return fmt.Errorf("decrypt %s: %w", key, err)
	}

	if err := c.vcs.ApplyBundle(ctx, bundle, bundleRef(ref, revision)); err != nil {
		return fmt.Errorf("apply bundle %s: %w", key, err)
	}

	logger.Info("Fetched bundle", "ref", ref, "revision", revision, "key", key.String())
	return nil
}

// download fetches the bundle for ref at revision. Stale refs are advertised
// as <ref>__<short>; their bundle lives either under that name, once
// preserved by a forced push, or still under the original ref.
func (c *clientImpl) download(ctx context.Context, store storage.ObjectStore, ref, revision string) ([]byte, storage.Key, error) {
	candidates := []storage.Key{BundleKey(c.root, ref, revision)}
	if base, short, ok := SplitStaleRefName(ref); ok && strings.HasPrefix(revision, short) {
		candidates = append(candidates, BundleKey(c.root, base, revision))
	}

	var lastErr error
	for _, key := range candidates {
		data, err := store.Get(ctx, key)
		if err == nil {
			return data, key, nil
		}
		if !errors.Is(err, storage.ErrObjectNotFound) {
			return nil, key, fmt.Errorf("download %s: %w", key, err)
		}
		lastErr = err
	}

	return nil, candidates[0], fmt.Errorf("download %s: %w", candidates[0], lastErr)
}

// bundleRef returns the ref name recorded inside the bundle for ref.
func bundleRef(ref, revision string) string {
	if base, short, ok := SplitStaleRefName(ref); ok && strings.HasPrefix(revision, short) {
		return base
	}
	return ref
}
