// Package s3remote stores git refs as encrypted bundles in an S3 bucket.
//
// Every push uploads a full bundle of the pushed ref under
// <root>/<ref>/<revision>.bundle. The current value of a ref is its most
// recently modified bundle; older bundles that have not been cleaned up yet
// are advertised as stale refs so that no history is lost when two writers
// race. There is no lock: each decision is taken against a fresh listing.
package s3remote

import (
	"context"
	"errors"

	"github.com/grafana/s3remote/git"
	"github.com/grafana/s3remote/gpg"
	"github.com/grafana/s3remote/log"
	"github.com/grafana/s3remote/storage"
)

// Client implements the remote operations a git remote helper needs.
//
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o mocks/client.go . Client
type Client interface {
	// ListRefs builds a ref directory from a fresh listing of the remote.
	ListRefs(ctx context.Context) (*RefDirectory, error)
	// Push uploads the local ref as a new version of the remote ref.
	// A non-fast-forward push without Force is reported through
	// PushResult.Rejected rather than an error.
	Push(ctx context.Context, req PushRequest) (PushResult, error)
	// Fetch downloads the version of ref at revision and applies it to the
	// local repository.
	Fetch(ctx context.Context, revision, ref string) error
}

// VCS is the set of version control operations the client relies on.
//
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o mocks/vcs.go . VCS
type VCS interface {
	// CreateBundle returns a bundle containing ref and its full history.
	CreateBundle(ctx context.Context, ref string) ([]byte, error)
	// ApplyBundle stores the objects of bundle in the local repository.
	ApplyBundle(ctx context.Context, bundle []byte, ref string) error
	// ResolveRef returns the revision ref points at.
	ResolveRef(ctx context.Context, ref string) (string, error)
	// IsAncestor reports whether ancestor is reachable from descendant.
	IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error)
	// Config returns the value of a configuration key, or an error wrapping
	// git.ErrConfigNotFound when it is unset.
	Config(ctx context.Context, key string) (string, error)
}

// Crypter encrypts bundles before upload and decrypts them after download.
//
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o mocks/crypter.go . Crypter
type Crypter interface {
	// Encrypt encrypts data for recipients. No recipients means data is
	// returned unchanged.
	Encrypt(ctx context.Context, recipients []string, data []byte) ([]byte, error)
	// Decrypt decrypts data. Data that is not encrypted is returned unchanged.
	Decrypt(ctx context.Context, data []byte) ([]byte, error)
}

// DefaultHeadCandidates are the refs HEAD may point at, in order of preference.
var DefaultHeadCandidates = []string{"refs/heads/master", "refs/heads/main"}

// clientImpl is the private implementation of the Client interface.
type clientImpl struct {
	root    storage.Key
	alias   string
	store   storage.ObjectStore
	vcs     VCS
	crypter Crypter
	logger  log.Logger

	noEncrypt      bool
	headCandidates []string
}

// NewClient returns a Client for the bundles stored under root.
//
// Without options the client shells out to git in the current directory and
// to gpg, and expects an object store either from WithObjectStore or from
// the context of each call (see storage.ToContext).
func NewClient(root storage.Key, options ...Option) (Client, error) {
	if root.Bucket == "" {
		return nil, errors.New("bucket cannot be empty")
	}

	c := &clientImpl{
		root:           root,
		vcs:            git.New(""),
		crypter:        gpg.New(),
		logger:         log.Noop(),
		headCandidates: DefaultHeadCandidates,
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *clientImpl) objectStore(ctx context.Context) (storage.ObjectStore, error) {
	if store := storage.FromContext(ctx); store != nil {
		return store, nil
	}
	if c.store != nil {
		return c.store, nil
	}

	return nil, ErrNoObjectStore
}

func (c *clientImpl) loggerFor(ctx context.Context) log.Logger {
	return log.FromContextOr(ctx, c.logger)
}
