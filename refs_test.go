package s3remote_test

import (
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/s3remote"
	"github.com/grafana/s3remote/storage"
)

func object(ref, rev string, modified int64) storage.Object {
	return storage.Object{
		Key:          s3remote.BundleKey(root, ref, rev),
		LastModified: time.Unix(modified, 0),
	}
}

func TestRefDirectory_OrdersVersionsNewestFirst(t *testing.T) {
	dir := s3remote.NewRefDirectory(root, []storage.Object{
		object(mainRef, revA, 10),
		object(mainRef, revC, 30),
		object(mainRef, revB, 20),
		object("refs/tags/v1.0", revA, 5),
	})

	assert.Equal(t, []string{mainRef, "refs/tags/v1.0"}, dir.Names())
	assert.Equal(t, 2, dir.Len())

	latest, ok := dir.Latest(mainRef)
	require.True(t, ok)
	assert.Equal(t, revC, latest.Revision)
	assert.Equal(t, mainRef, latest.Ref)

	var stale []string
	for v := range dir.Stale(mainRef) {
		stale = append(stale, v.Revision)
	}
	assert.Equal(t, []string{revB, revA}, stale)
	assert.Equal(t, stale, revisions(slices.Collect(dir.Stale(mainRef))), "stale versions can be iterated again")
}

func revisions(versions []s3remote.RefVersion) []string {
	out := make([]string, 0, len(versions))
	for _, v := range versions {
		out = append(out, v.Revision)
	}
	return out
}

func TestRefDirectory_OneLatestLinePerRef(t *testing.T) {
	var objects []storage.Object
	revs := []string{revA, revB, revC, revD}
	for i, rev := range revs {
		objects = append(objects, object(mainRef, rev, int64(i)))
		objects = append(objects, object("refs/heads/dev", rev, int64(10-i)))
	}

	lines := listing(s3remote.NewRefDirectory(root, objects))

	plain := 0
	for _, line := range lines {
		_, name, _ := strings.Cut(line, " ")
		if _, _, stale := s3remote.SplitStaleRefName(name); !stale {
			plain++
		}
	}
	assert.Equal(t, 2, plain)
	assert.Len(t, lines, 8)
	assert.Equal(t, revD+" "+mainRef, lines[1*4])
	assert.Equal(t, revA+" refs/heads/dev", lines[0])
}

func TestRefDirectory_IgnoresForeignObjects(t *testing.T) {
	dir := s3remote.NewRefDirectory(root, []storage.Object{
		object(mainRef, revA, 1),
		{Key: root.Join("README"), LastModified: time.Unix(2, 0)},
		{Key: root.Join(mainRef, "notes.txt"), LastModified: time.Unix(3, 0)},
		{Key: root.Join(revB + ".bundle"), LastModified: time.Unix(4, 0)},
		{Key: storage.NewKey(root.Bucket, "elsewhere/refs/heads/main/"+revC+".bundle"), LastModified: time.Unix(5, 0)},
		{Key: root.Join("notes", "readme.bundle"), LastModified: time.Unix(6, 0)},
		{Key: root.Join("refs/heads/x", "not-a-sha.bundle"), LastModified: time.Unix(7, 0)},
	})

	assert.Equal(t, []string{mainRef}, dir.Names())
	assert.Len(t, dir.Versions(mainRef), 1)
}

func TestRefDirectory_Empty(t *testing.T) {
	dir := s3remote.NewRefDirectory(root, nil)

	assert.Zero(t, dir.Len())
	assert.Empty(t, dir.Names())
	_, ok := dir.Latest(mainRef)
	assert.False(t, ok)
	assert.Nil(t, dir.Versions(mainRef))
	for range dir.Stale(mainRef) {
		t.Fatal("unknown refs have no stale versions")
	}
	_, ok = dir.Head()
	assert.False(t, ok)
	assert.Equal(t, root, dir.Root())
}

func TestBundleKey(t *testing.T) {
	key := s3remote.BundleKey(root, mainRef, revA)
	assert.Equal(t, "repos/project/refs/heads/main/"+revA+".bundle", key.Path)
	assert.Equal(t, root.Bucket, key.Bucket)

	ref, rev, ok := s3remote.ParseBundleKey(root, key)
	require.True(t, ok)
	assert.Equal(t, mainRef, ref)
	assert.Equal(t, revA, rev)

	bare := storage.NewKey("bucket", "")
	ref, rev, ok = s3remote.ParseBundleKey(bare, s3remote.BundleKey(bare, mainRef, revB))
	require.True(t, ok)
	assert.Equal(t, mainRef, ref)
	assert.Equal(t, revB, rev)
}

func TestParseBundleKey_Rejects(t *testing.T) {
	for _, path := range []string{
		"repos/project/refs/heads/main/" + revA,
		"repos/project/" + revA + ".bundle",
		"repos/project/refs/heads/main/.bundle",
		"repos/projectx/refs/heads/main/" + revA + ".bundle",
		"other/refs/heads/main/" + revA + ".bundle",
		"repos/project/notes/readme.bundle",
		"repos/project/refs/heads/x/not-a-sha.bundle",
		"repos/project/refs/heads/main/" + revA[:7] + ".bundle",
		"repos/project/HEAD/" + revA + ".bundle",
		"repos/project/refs/heads/a..b/" + revA + ".bundle",
	} {
		_, _, ok := s3remote.ParseBundleKey(root, storage.NewKey(root.Bucket, path))
		assert.False(t, ok, path)
	}
}

func TestStaleRefName(t *testing.T) {
	name := s3remote.StaleRefName(mainRef, revB)
	assert.Equal(t, mainRef+"__bbbbbbb", name)

	ref, short, ok := s3remote.SplitStaleRefName(name)
	require.True(t, ok)
	assert.Equal(t, mainRef, ref)
	assert.Equal(t, "bbbbbbb", short)

	assert.Equal(t, "abc", s3remote.ShortRevision("abc"))

	for _, name := range []string{mainRef, "refs/heads/feature__wip", "refs/heads/x__0123456789", "__abc"} {
		_, _, ok := s3remote.SplitStaleRefName(name)
		assert.False(t, ok, name)
	}
}

func TestListRefs_Head(t *testing.T) {
	tests := []struct {
		name     string
		refs     []string
		opts     []s3remote.Option
		expected string
	}{
		{name: "master preferred", refs: []string{"refs/heads/main", "refs/heads/master"}, expected: "refs/heads/master"},
		{name: "main fallback", refs: []string{"refs/heads/main", "refs/heads/dev"}, expected: "refs/heads/main"},
		{name: "none", refs: []string{"refs/heads/dev"}},
		{name: "custom candidates", refs: []string{"refs/heads/main", "refs/heads/trunk"}, opts: []s3remote.Option{s3remote.WithHeadCandidates("refs/heads/trunk")}, expected: "refs/heads/trunk"},
		{name: "disabled", refs: []string{"refs/heads/master"}, opts: []s3remote.Option{s3remote.WithHeadCandidates()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			for _, ref := range tt.refs {
				seed(t, store, ref, revA)
			}
			client := newClient(t, store, newRepo().fake(), tt.opts...)

			dir, err := client.ListRefs(context.Background())
			require.NoError(t, err)

			head, ok := dir.Head()
			assert.Equal(t, tt.expected != "", ok)
			assert.Equal(t, tt.expected, head)
		})
	}
}

func TestListRefs_IgnoresSiblingPrefixes(t *testing.T) {
	store := newStore()
	seed(t, store, mainRef, revA)
	require.NoError(t, store.Put(context.Background(),
		storage.NewKey(root.Bucket, root.Path+"-fork/refs/heads/main/"+revB+".bundle"), []byte("x")))

	client := newClient(t, store, newRepo().fake())
	assert.Equal(t, []string{revA + " " + mainRef}, list(t, client))
}

func TestListRefs_SkipsMalformedBundleKeys(t *testing.T) {
	store := newStore()
	seed(t, store, mainRef, revA)
	for _, key := range []storage.Key{
		root.Join("notes", "readme.bundle"),
		root.Join("refs/heads/x", "not-a-sha.bundle"),
	} {
		require.NoError(t, store.Put(context.Background(), key, []byte("x")))
	}

	client := newClient(t, store, newRepo().fake())
	assert.Equal(t, []string{revA + " " + mainRef}, list(t, client))
}
