package s3remote

import (
	"errors"

	"github.com/grafana/s3remote/storage"
)

// Option is a function that configures a Client.
type Option func(*clientImpl) error

// WithObjectStore sets the store bundles are read from and written to.
// A store injected into the context of a call takes precedence.
func WithObjectStore(store storage.ObjectStore) Option {
	return func(c *clientImpl) error {
		if store == nil {
			return errors.New("object store cannot be nil")
		}
		c.store = store
		return nil
	}
}

// WithVCS overrides the version control adapter.
func WithVCS(vcs VCS) Option {
	return func(c *clientImpl) error {
		if vcs == nil {
			return errors.New("vcs cannot be nil")
		}
		c.vcs = vcs
		return nil
	}
}

// WithCrypter overrides the encryption adapter.
func WithCrypter(crypter Crypter) Option {
	return func(c *clientImpl) error {
		if crypter == nil {
			return errors.New("crypter cannot be nil")
		}
		c.crypter = crypter
		return nil
	}
}

// WithRemoteAlias sets the remote name used to look up
// remote.<alias>.gpgRecipients.
func WithRemoteAlias(alias string) Option {
	return func(c *clientImpl) error {
		c.alias = alias
		return nil
	}
}

// WithoutEncryption stores bundles in cleartext regardless of configured recipients.
func WithoutEncryption() Option {
	return func(c *clientImpl) error {
		c.noEncrypt = true
		return nil
	}
}

// WithHeadCandidates sets the refs the remote HEAD may point at, most preferred first.
// An empty list disables the HEAD advertisement.
func WithHeadCandidates(refs ...string) Option {
	return func(c *clientImpl) error {
		c.headCandidates = refs
		return nil
	}
}
