package s3remote

import (
	"context"
	"fmt"

	"github.com/grafana/s3remote/storage"
)

func (c *clientImpl) ListRefs(ctx context.Context) (*RefDirectory, error) {
	store, err := c.objectStore(ctx)
	if err != nil {
		return nil, err
	}

	return c.listRefs(ctx, store)
}

// listRefs takes one listing of the root prefix and builds a directory from it.
func (c *clientImpl) listRefs(ctx context.Context, store storage.ObjectStore) (*RefDirectory, error) {
	logger := c.loggerFor(ctx)

	prefix := c.root
	if prefix.Path != "" {
		prefix.Path += "/"
	}

	objects, err := store.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", prefix, err)
	}

	dir, skipped := buildRefDirectory(c.root, objects)
	for _, key := range skipped {
		logger.Debug("Skip object that is not a bundle", "key", key.String())
	}
	dir.selectHead(c.headCandidates)

	logger.Debug("Listed remote refs", "root", c.root.String(), "objects", len(objects), "refs", dir.Len())
	return dir, nil
}
