package s3remote_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/grafana/s3remote"
	"github.com/grafana/s3remote/git"
	"github.com/grafana/s3remote/internal/memstore"
	"github.com/grafana/s3remote/mocks"
	"github.com/grafana/s3remote/storage"
)

const (
	revA = "aaaaaaa111111111111111111111111111111111"
	revB = "bbbbbbb222222222222222222222222222222222"
	revC = "ccccccc333333333333333333333333333333333"
	revD = "ddddddd444444444444444444444444444444444"
)

var root = storage.NewKey("bucket", "repos/project")

// repo is an in-memory commit graph exposed through a FakeVCS.
type repo struct {
	mu      sync.Mutex
	parents map[string][]string
	refs    map[string]string
	config  map[string]string
	applied map[string][]byte
}

func newRepo() *repo {
	return &repo{
		parents: make(map[string][]string),
		refs:    make(map[string]string),
		config:  map[string]string{"user.email": "dev@example.com"},
		applied: make(map[string][]byte),
	}
}

func (r *repo) commit(rev string, parents ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parents[rev] = parents
}

func (r *repo) setRef(ref, rev string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refs[ref] = rev
}

func (r *repo) isAncestor(ancestor, descendant string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.parents[ancestor]; !ok {
		return false
	}

	seen := map[string]bool{}
	queue := []string{descendant}
	for len(queue) > 0 {
		rev := queue[0]
		queue = queue[1:]
		if rev == ancestor {
			return true
		}
		if seen[rev] {
			continue
		}
		seen[rev] = true
		queue = append(queue, r.parents[rev]...)
	}

	return false
}

func (r *repo) fake() *mocks.FakeVCS {
	vcs := &mocks.FakeVCS{}
	vcs.ResolveRefStub = func(_ context.Context, ref string) (string, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		rev, ok := r.refs[ref]
		if !ok {
			return "", fmt.Errorf("rev-parse %s: %w", ref, git.ErrUnknownRevision)
		}
		return rev, nil
	}
	vcs.IsAncestorStub = func(_ context.Context, ancestor, descendant string) (bool, error) {
		return r.isAncestor(ancestor, descendant), nil
	}
	vcs.CreateBundleStub = func(_ context.Context, ref string) ([]byte, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		return []byte("bundle " + ref + " " + r.refs[ref]), nil
	}
	vcs.ApplyBundleStub = func(_ context.Context, bundle []byte, ref string) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		fields := strings.Fields(string(bundle))
		if len(fields) != 3 || fields[0] != "bundle" {
			return fmt.Errorf("not a bundle: %q", bundle)
		}
		r.applied[ref] = bundle
		r.refs[ref] = fields[2]
		return nil
	}
	vcs.ConfigStub = func(_ context.Context, key string) (string, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		value, ok := r.config[key]
		if !ok {
			return "", fmt.Errorf("config %s: %w", key, git.ErrConfigNotFound)
		}
		return value, nil
	}

	return vcs
}

// sealer is a reversible stand-in for gpg.
func sealer() *mocks.FakeCrypter {
	crypter := &mocks.FakeCrypter{}
	crypter.EncryptStub = func(_ context.Context, recipients []string, data []byte) ([]byte, error) {
		if len(recipients) == 0 {
			return data, nil
		}
		return append([]byte("sealed:"), data...), nil
	}
	crypter.DecryptStub = func(_ context.Context, data []byte) ([]byte, error) {
		return []byte(strings.TrimPrefix(string(data), "sealed:")), nil
	}

	return crypter
}

func newStore() *memstore.Store {
	return memstore.New(memstore.WithClock(memstore.SteppingClock(time.Unix(1700000000, 0), time.Second)))
}

func newClient(t *testing.T, store storage.ObjectStore, vcs s3remote.VCS, opts ...s3remote.Option) s3remote.Client {
	t.Helper()

	all := append([]s3remote.Option{
		s3remote.WithObjectStore(store),
		s3remote.WithVCS(vcs),
		s3remote.WithCrypter(sealer()),
		s3remote.WithRemoteAlias("origin"),
	}, opts...)

	client, err := s3remote.NewClient(root, all...)
	require.NoError(t, err)

	return client
}

// listing renders a directory the way the helper advertises it.
func listing(dir *s3remote.RefDirectory) []string {
	var lines []string
	for _, name := range dir.Names() {
		latest, _ := dir.Latest(name)
		lines = append(lines, latest.Revision+" "+name)
		for v := range dir.Stale(name) {
			lines = append(lines, v.Revision+" "+s3remote.StaleRefName(name, v.Revision))
		}
	}

	return lines
}

func push(t *testing.T, client s3remote.Client, ref string, force bool) s3remote.PushResult {
	t.Helper()

	result, err := client.Push(context.Background(), s3remote.PushRequest{Src: ref, Dst: ref, Force: force})
	require.NoError(t, err)

	return result
}

func list(t *testing.T, client s3remote.Client) []string {
	t.Helper()

	dir, err := client.ListRefs(context.Background())
	require.NoError(t, err)

	return listing(dir)
}

func bundlePath(ref, rev string) string {
	return s3remote.BundleKey(root, ref, rev).Path
}
