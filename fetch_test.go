package s3remote_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/s3remote"
	"github.com/grafana/s3remote/protocol"
	"github.com/grafana/s3remote/storage"
)

func seed(t *testing.T, store storage.ObjectStore, ref, rev string) {
	t.Helper()
	data := []byte("sealed:bundle " + ref + " " + rev)
	require.NoError(t, store.Put(context.Background(), s3remote.BundleKey(root, ref, rev), data))
}

func TestFetch_AppliesBundle(t *testing.T) {
	store := newStore()
	seed(t, store, mainRef, revA)

	r := newRepo()
	vcs := r.fake()
	client := newClient(t, store, vcs)

	require.NoError(t, client.Fetch(context.Background(), revA, mainRef))

	require.Equal(t, 1, vcs.ApplyBundleCallCount())
	_, bundle, ref := vcs.ApplyBundleArgsForCall(0)
	assert.Equal(t, "bundle "+mainRef+" "+revA, string(bundle))
	assert.Equal(t, mainRef, ref)
	assert.Equal(t, revA, r.refs[mainRef])
}

func TestFetch_HEADIsNoop(t *testing.T) {
	store := newStore()
	vcs := newRepo().fake()
	client := newClient(t, store, vcs)

	require.NoError(t, client.Fetch(context.Background(), revA, "HEAD"))
	assert.Zero(t, vcs.ApplyBundleCallCount())
}

func TestFetch_StaleVersionUnderOriginalRef(t *testing.T) {
	store := newStore()
	seed(t, store, mainRef, revA)
	seed(t, store, mainRef, revB)

	r := newRepo()
	client := newClient(t, store, r.fake())

	dir, err := client.ListRefs(context.Background())
	require.NoError(t, err)
	var stale []s3remote.RefVersion
	for v := range dir.Stale(mainRef) {
		stale = append(stale, v)
	}
	require.Len(t, stale, 1)

	alias := s3remote.StaleRefName(mainRef, stale[0].Revision)
	require.NoError(t, client.Fetch(context.Background(), stale[0].Revision, alias))
	assert.Equal(t, revA, r.refs[mainRef], "the bundle is applied under the original ref name")
}

func TestFetch_RecoveryVersion(t *testing.T) {
	store := newStore()
	recovery := s3remote.StaleRefName(mainRef, revB)
	require.NoError(t, store.Put(context.Background(), s3remote.BundleKey(root, recovery, revB), []byte("sealed:bundle "+mainRef+" "+revB)))

	r := newRepo()
	vcs := r.fake()
	client := newClient(t, store, vcs)

	require.NoError(t, client.Fetch(context.Background(), revB, recovery))
	_, _, ref := vcs.ApplyBundleArgsForCall(0)
	assert.Equal(t, mainRef, ref)
}

func TestFetch_Errors(t *testing.T) {
	store := newStore()
	seed(t, store, mainRef, revA)

	tests := []struct {
		name     string
		revision string
		ref      string
		want     error
	}{
		{name: "missing version", revision: revB, ref: mainRef, want: storage.ErrObjectNotFound},
		{name: "stale alias of another revision", revision: revB, ref: mainRef + "__aaaaaaa", want: storage.ErrObjectNotFound},
		{name: "empty revision", revision: "", ref: mainRef, want: s3remote.ErrInvalidRevision},
		{name: "revision with slash", revision: "../x", ref: mainRef, want: s3remote.ErrInvalidRevision},
		{name: "invalid ref", revision: revA, ref: "refs/heads/bad..name", want: protocol.ErrInvalidRefName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vcs := newRepo().fake()
			client := newClient(t, store, vcs)

			err := client.Fetch(context.Background(), tt.revision, tt.ref)
			require.ErrorIs(t, err, tt.want)
			assert.Zero(t, vcs.ApplyBundleCallCount())
		})
	}
}

func TestFetch_DecryptFailure(t *testing.T) {
	store := newStore()
	seed(t, store, mainRef, revA)

	crypter := sealer()
	crypter.DecryptReturns(nil, errors.New("no secret key"))
	vcs := newRepo().fake()
	client := newClient(t, store, vcs, s3remote.WithCrypter(crypter))

	err := client.Fetch(context.Background(), revA, mainRef)
	require.ErrorContains(t, err, "no secret key")
	assert.Zero(t, vcs.ApplyBundleCallCount())
}

func TestFetch_ApplyFailure(t *testing.T) {
	store := newStore()
	require.NoError(t, store.Put(context.Background(), s3remote.BundleKey(root, mainRef, revA), []byte("garbage")))

	client := newClient(t, store, newRepo().fake())

	err := client.Fetch(context.Background(), revA, mainRef)
	require.ErrorContains(t, err, "apply bundle")
}

func TestPushFetch_RoundTrip(t *testing.T) {
	store := newStore()

	src := newRepo()
	src.commit(revA)
	src.setRef(mainRef, revA)
	push(t, newClient(t, store, src.fake()), mainRef, false)

	dst := newRepo()
	client := newClient(t, store, dst.fake())
	dir, err := client.ListRefs(context.Background())
	require.NoError(t, err)
	latest, ok := dir.Latest(mainRef)
	require.True(t, ok)

	require.NoError(t, client.Fetch(context.Background(), latest.Revision, mainRef))
	assert.Equal(t, src.refs[mainRef], dst.refs[mainRef])
}
