package client

import (
	"context"
	"fmt"

	"github.com/grafana/s3remote"
	"github.com/grafana/s3remote/cli/internal/config"
	"github.com/grafana/s3remote/log"
	"github.com/grafana/s3remote/retry"
	"github.com/grafana/s3remote/storage"
	"github.com/grafana/s3remote/storage/s3store"
)

// New creates an s3remote client for cfg backed by S3 and the given
// version control adapter.
func New(ctx context.Context, cfg *config.Config, vcs s3remote.VCS, logger log.Logger) (s3remote.Client, error) {
	retrier := retry.NewExponentialBackoffRetrier().WithMaxAttempts(cfg.MaxAttempts)

	store, err := s3store.NewFromConfig(ctx, s3store.Config{
		Region:   cfg.Region,
		Endpoint: cfg.Endpoint,
		Profile:  cfg.Profile,
	},
		s3store.WithTimeout(cfg.Timeout),
		s3store.WithRetrier(s3store.NewRetrier(retrier)),
		s3store.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("create s3 store: %w", err)
	}

	return s3remote.NewClient(cfg.Root, Options(cfg, store, vcs, logger)...)
}

// Options returns the client options derived from cfg.
func Options(cfg *config.Config, store storage.ObjectStore, vcs s3remote.VCS, logger log.Logger) []s3remote.Option {
	opts := []s3remote.Option{
		s3remote.WithObjectStore(store),
		s3remote.WithVCS(vcs),
		s3remote.WithRemoteAlias(cfg.Alias),
		s3remote.WithLogger(logger),
	}
	if cfg.NoEncrypt {
		opts = append(opts, s3remote.WithoutEncryption())
	}

	return opts
}
