package s3remote

import (
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/grafana/s3remote/protocol"
	"github.com/grafana/s3remote/storage"
)

const (
	bundleExt = ".bundle"

	// ShortRevisionLen is the length of the abbreviated revision used in
	// stale and recovery ref names.
	ShortRevisionLen = 7

	// StaleSeparator joins a ref name and an abbreviated revision.
	StaleSeparator = "__"
)

// RefVersion is one stored snapshot of a ref.
type RefVersion struct {
	Ref          string
	Revision     string
	Key          storage.Key
	LastModified time.Time
}

// Short returns the abbreviated revision.
func (v RefVersion) Short() string {
	return ShortRevision(v.Revision)
}

// RefVersions holds every stored version of one ref, newest first.
// A RefVersions built by NewRefDirectory is never empty.
type RefVersions []RefVersion

// Latest returns the newest version.
func (v RefVersions) Latest() RefVersion {
	return v[0]
}

// Stale yields every version except the newest, newest first.
// The sequence can be ranged over any number of times.
func (v RefVersions) Stale() iter.Seq[RefVersion] {
	return func(yield func(RefVersion) bool) {
		for i := 1; i < len(v); i++ {
			if !yield(v[i]) {
				return
			}
		}
	}
}

// RefDirectory maps ref names to their stored versions.
// It reflects exactly one listing of the bucket and is never updated; build a
// new one whenever fresh state is needed.
type RefDirectory struct {
	root storage.Key
	refs map[string]RefVersions
	head string
}

// NewRefDirectory groups a listing of bundle objects under root by ref name.
// Objects whose key does not look like <root>/<ref>/<revision>.bundle, with a
// valid ref name and a full object id, are ignored.
func NewRefDirectory(root storage.Key, objects []storage.Object) *RefDirectory {
	d, _ := buildRefDirectory(root, objects)
	return d
}

func buildRefDirectory(root storage.Key, objects []storage.Object) (*RefDirectory, []storage.Key) {
	d := &RefDirectory{
		root: root,
		refs: make(map[string]RefVersions),
	}

	var skipped []storage.Key
	for _, obj := range objects {
		ref, revision, ok := ParseBundleKey(root, obj.Key)
		if !ok {
			skipped = append(skipped, obj.Key)
			continue
		}

		d.refs[ref] = append(d.refs[ref], RefVersion{
			Ref:          ref,
			Revision:     revision,
			Key:          obj.Key,
			LastModified: obj.LastModified,
		})
	}

	// Equal timestamps keep listing order; which one wins is not meaningful.
	for _, versions := range d.refs {
		slices.SortStableFunc(versions, func(a, b RefVersion) int {
			return b.LastModified.Compare(a.LastModified)
		})
	}

	return d, skipped
}

// Root returns the key prefix the directory was built from.
func (d *RefDirectory) Root() storage.Key {
	return d.root
}

// Names returns all ref names in lexical order.
func (d *RefDirectory) Names() []string {
	names := make([]string, 0, len(d.refs))
	for name := range d.refs {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Len returns the number of distinct refs.
func (d *RefDirectory) Len() int {
	return len(d.refs)
}

// Versions returns every version of ref, newest first, or nil when the ref
// has never been pushed.
func (d *RefDirectory) Versions(ref string) RefVersions {
	return d.refs[ref]
}

// Latest returns the newest version of ref.
func (d *RefDirectory) Latest(ref string) (RefVersion, bool) {
	versions, ok := d.refs[ref]
	if !ok {
		return RefVersion{}, false
	}

	return versions.Latest(), true
}

// Stale yields the versions of ref that have been superseded.
// It yields nothing for unknown refs.
func (d *RefDirectory) Stale(ref string) iter.Seq[RefVersion] {
	return d.refs[ref].Stale()
}

// Head returns the ref the remote HEAD should point at, if any.
func (d *RefDirectory) Head() (string, bool) {
	return d.head, d.head != ""
}

func (d *RefDirectory) selectHead(candidates []string) {
	for _, candidate := range candidates {
		if _, ok := d.refs[candidate]; ok {
			d.head = candidate
			return
		}
	}
}

// BundleKey returns the key a version of ref at revision is stored under.
func BundleKey(root storage.Key, ref, revision string) storage.Key {
	return root.Join(ref, revision+bundleExt)
}

// ParseBundleKey splits a key of the form <root>/<ref>/<revision>.bundle.
// ok is false unless ref is a valid ref name and revision a full SHA-1 or
// SHA-256 object id.
func ParseBundleKey(root storage.Key, key storage.Key) (ref, revision string, ok bool) {
	rest, ok := key.TrimPrefix(root)
	if !ok {
		return "", "", false
	}

	rest, ok = strings.CutSuffix(rest, bundleExt)
	if !ok {
		return "", "", false
	}

	idx := strings.LastIndexByte(rest, '/')
	if idx <= 0 || idx == len(rest)-1 {
		return "", "", false
	}

	ref, revision = rest[:idx], rest[idx+1:]
	if _, err := protocol.ParseRefName(ref); err != nil || ref == protocol.HEAD.FullName {
		return "", "", false
	}
	if !isObjectID(revision) {
		return "", "", false
	}

	return ref, revision, true
}

func isObjectID(s string) bool {
	return (len(s) == 40 || len(s) == 64) && isHex(s)
}

// ShortRevision abbreviates a revision to ShortRevisionLen characters.
func ShortRevision(revision string) string {
	if len(revision) <= ShortRevisionLen {
		return revision
	}
	return revision[:ShortRevisionLen]
}

// StaleRefName returns the name a superseded or recovered version of ref is
// advertised under: <ref>__<short revision>.
func StaleRefName(ref, revision string) string {
	return ref + StaleSeparator + ShortRevision(revision)
}

// SplitStaleRefName reverses StaleRefName when name ends in a separator
// followed by an abbreviated revision.
func SplitStaleRefName(name string) (ref, short string, ok bool) {
	idx := strings.LastIndex(name, StaleSeparator)
	if idx <= 0 {
		return "", "", false
	}

	short = name[idx+len(StaleSeparator):]
	if len(short) == 0 || len(short) > ShortRevisionLen || !isHex(short) {
		return "", "", false
	}

	return name[:idx], short, true
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
