package storage

import (
	"path"
	"strings"
)

// Key identifies an object in a bucket.
// Two keys are equal when both the bucket and the path are equal, so Key can
// be compared with == and used as a map key.
type Key struct {
	Bucket string
	Path   string
}

// NewKey returns a key for the given bucket and path.
// Leading and trailing slashes are removed from the path.
func NewKey(bucket, p string) Key {
	return Key{Bucket: bucket, Path: strings.Trim(p, "/")}
}

// Join returns a key in the same bucket with elem appended to the path.
// Empty elements are ignored, so joining onto an empty root path does not
// produce a leading slash.
func (k Key) Join(elem ...string) Key {
	parts := make([]string, 0, len(elem)+1)
	if k.Path != "" {
		parts = append(parts, k.Path)
	}
	for _, e := range elem {
		if e != "" {
			parts = append(parts, e)
		}
	}

	return Key{Bucket: k.Bucket, Path: strings.Join(parts, "/")}
}

// Base returns the last element of the path.
func (k Key) Base() string {
	if k.Path == "" {
		return ""
	}
	return path.Base(k.Path)
}

// TrimPrefix returns the path relative to prefix and whether prefix is a
// directory-style prefix of k. Keys in another bucket never match.
func (k Key) TrimPrefix(prefix Key) (string, bool) {
	if k.Bucket != prefix.Bucket {
		return "", false
	}
	if prefix.Path == "" {
		return k.Path, true
	}

	rest, ok := strings.CutPrefix(k.Path, prefix.Path+"/")
	return rest, ok
}

// String formats the key as an s3 URL.
func (k Key) String() string {
	if k.Path == "" {
		return "s3://" + k.Bucket
	}
	return "s3://" + k.Bucket + "/" + k.Path
}
