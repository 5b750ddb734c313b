package s3remote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/grafana/s3remote/git"
	"github.com/grafana/s3remote/protocol"
	"github.com/grafana/s3remote/storage"
)

// RejectReason is reported for pushes that would discard remote history.
const RejectReason = "remote changed: force push to replace it, the previous version will be kept as a recovery ref"

// PushRequest describes one ref update.
type PushRequest struct {
	Src   string
	Dst   string
	Force bool
}

// PushResult is the outcome of a push that did not fail.
type PushResult struct {
	Ref      string
	Revision string
	// Rejected is set when the remote ref is not an ancestor of the pushed
	// revision and Force was not requested. Nothing is written in that case.
	Rejected bool
	Reason   string
	// UpToDate is set when the remote already holds the pushed revision.
	UpToDate bool
}

func (c *clientImpl) Push(ctx context.Context, req PushRequest) (PushResult, error) {
	logger := c.loggerFor(ctx)
	result := PushResult{Ref: req.Dst}

	if err := validatePush(req); err != nil {
		return result, err
	}

	store, err := c.objectStore(ctx)
	if err != nil {
		return result, err
	}

	local, err := c.vcs.ResolveRef(ctx, req.Src)
	switch {
	case errors.Is(err, git.ErrUnknownRevision):
		return result, NewRefNotFoundError(req.Src, err)
	case err != nil:
		return result, fmt.Errorf("resolve %s: %w", req.Src, err)
	}
	result.Revision = local

	dir, err := c.listRefs(ctx, store)
	if err != nil {
		return result, err
	}

	prior, hasPrior := dir.Latest(req.Dst)
	if hasPrior && prior.Revision == local {
		logger.Info("Remote ref already up to date", "ref", req.Dst, "revision", local)
		result.UpToDate = true
		return result, nil
	}

	if hasPrior && !req.Force {
		ok, err := c.vcs.IsAncestor(ctx, prior.Revision, local)
		if err != nil {
			return result, fmt.Errorf("check ancestry of %s: %w", prior.Short(), err)
		}
		if !ok {
			logger.Info("Reject non-fast-forward push", "ref", req.Dst, "remote", prior.Revision, "local", local)
			result.Rejected = true
			result.Reason = RejectReason
			return result, nil
		}
	}

	recipients, err := c.recipients(ctx)
	if err != nil {
		return result, err
	}

	bundle, err := c.vcs.CreateBundle(ctx, req.Src)
	if err != nil {
		return result, fmt.Errorf("create bundle: %w", err)
	}

	payload, err := c.crypter.Encrypt(ctx, recipients, bundle)
	if err != nil {
		return result, fmt.Errorf("encrypt bundle: %w", err)
	}

	key := BundleKey(c.root, req.Dst, local)
	if err := store.Put(ctx, key, payload); err != nil {
		return result, fmt.Errorf("upload %s: %w", key, err)
	}
	logger.Info("Uploaded bundle", "ref", req.Dst, "revision", local, "key", key.String(), "size", len(payload), "encrypted", len(recipients) > 0)

	c.cleanup(ctx, store, dir.Versions(req.Dst), key, local, req.Force)

	return result, nil
}

func validatePush(req PushRequest) error {
	if req.Src == "" {
		return ErrRefDeletion
	}
	if req.Src != req.Dst {
		return ErrRefMismatch
	}
	if _, err := protocol.ParseRefName(req.Dst); err != nil {
		return err
	}

	return nil
}

// cleanup removes the versions made redundant by a successful upload of
// revision at current. Versions already contained in revision are deleted.
// After a forced push, versions that are not are renamed to a stale ref
// name so that they remain fetchable without shadowing the ref.
// Failures are logged: the new version is already in place.
func (c *clientImpl) cleanup(ctx context.Context, store storage.ObjectStore, prior RefVersions, current storage.Key, revision string, force bool) {
	logger := c.loggerFor(ctx)

	for _, v := range prior {
		if v.Key == current {
			continue
		}

		contained, err := c.vcs.IsAncestor(ctx, v.Revision, revision)
		if err != nil {
			logger.Warn("Keep previous version, ancestry check failed", "key", v.Key.String(), "error", err)
			continue
		}

		switch {
		case contained:
			if err := store.Delete(ctx, v.Key); err != nil {
				logger.Warn("Failed to delete previous version", "key", v.Key.String(), "error", err)
				continue
			}
			logger.Debug("Deleted previous version", "key", v.Key.String())
		case force:
			recovery := BundleKey(c.root, StaleRefName(v.Ref, v.Revision), v.Revision)
			if err := store.Rename(ctx, v.Key, recovery); err != nil {
				logger.Warn("Failed to preserve overwritten version", "key", v.Key.String(), "error", err)
				continue
			}
			logger.Info("Preserved overwritten version", "ref", StaleRefName(v.Ref, v.Revision), "key", recovery.String())
		}
	}
}

// recipients returns the keys bundles are encrypted for. An empty result
// means bundles are stored in cleartext.
func (c *clientImpl) recipients(ctx context.Context) ([]string, error) {
	if c.noEncrypt {
		return nil, nil
	}

	key := "remote." + c.alias + ".gpgRecipients"
	value, err := c.vcs.Config(ctx, key)
	switch {
	case err == nil:
		return strings.Fields(value), nil
	case !errors.Is(err, git.ErrConfigNotFound):
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	email, err := c.vcs.Config(ctx, "user.email")
	switch {
	case errors.Is(err, git.ErrConfigNotFound):
		return nil, ErrNoRecipients
	case err != nil:
		return nil, fmt.Errorf("read user.email: %w", err)
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrNoRecipients
	}

	return []string{email}, nil
}
