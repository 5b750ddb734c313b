// Package git runs the git command line tool on behalf of the remote helper.
// Every operation is a single subprocess invocation.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	// ErrConfigNotFound is returned by Config when the key is not set.
	ErrConfigNotFound = errors.New("config key not found")

	// ErrUnknownRevision is returned when a ref or revision cannot be resolved.
	ErrUnknownRevision = errors.New("unknown revision")
)

// CommandError describes a git invocation that exited unsuccessfully.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s: exit status %d", strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Repo runs git against one repository.
type Repo struct {
	dir    string
	binary string
	env    []string
}

// Option configures a Repo.
type Option func(*Repo)

// WithBinary overrides the git executable.
func WithBinary(path string) Option {
	return func(r *Repo) {
		r.binary = path
	}
}

// WithEnv appends KEY=VALUE pairs to the environment of every invocation.
func WithEnv(env ...string) Option {
	return func(r *Repo) {
		r.env = append(r.env, env...)
	}
}

// New returns a Repo for dir. An empty dir runs git in the current working
// directory, which is how git invokes remote helpers.
func New(dir string, opts ...Option) *Repo {
	r := &Repo{dir: dir, binary: "git"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// run executes git and returns its standard output.
func (r *Repo) run(ctx context.Context, args ...string) ([]byte, error) {
	fullArgs := args
	if r.dir != "" {
		fullArgs = append([]string{"-C", r.dir}, args...)
	}

	cmd := exec.CommandContext(ctx, r.binary, fullArgs...)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	cmd.Env = append(cmd.Env, r.env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cmdErr := &CommandError{
			Args:     args,
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}
		return stdout.Bytes(), cmdErr
	}

	return stdout.Bytes(), nil
}

func exitCode(err error) int {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return -1
}

// ResolveRef returns the object name ref points at.
func (r *Repo) ResolveRef(ctx context.Context, ref string) (string, error) {
	out, err := r.run(ctx, "rev-parse", "--verify", "--quiet", ref)
	if err != nil {
		if exitCode(err) == 1 {
			return "", fmt.Errorf("%w: %s", ErrUnknownRevision, ref)
		}
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}

// IsAncestor reports whether ancestor is reachable from descendant.
// An ancestor that does not exist in the local object database cannot be
// reachable, so it is reported as false rather than as an error.
func (r *Repo) IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	_, err := r.run(ctx, "merge-base", "--is-ancestor", ancestor, descendant)
	if err == nil {
		return true, nil
	}
	if exitCode(err) == 1 {
		return false, nil
	}

	if !r.hasCommit(ctx, ancestor) {
		return false, nil
	}

	return false, err
}

func (r *Repo) hasCommit(ctx context.Context, revision string) bool {
	_, err := r.run(ctx, "cat-file", "-e", revision+"^{commit}")
	return err == nil
}

// Config returns the value of key. Unset keys yield ErrConfigNotFound.
func (r *Repo) Config(ctx context.Context, key string) (string, error) {
	out, err := r.run(ctx, "config", "--get", key)
	if err != nil {
		if exitCode(err) == 1 {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, key)
		}
		return "", err
	}

	return strings.TrimRight(string(out), "\r\n"), nil
}

// CreateBundle returns a bundle of ref with its full history.
func (r *Repo) CreateBundle(ctx context.Context, ref string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "git-remote-s3-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "out.bundle")
	if _, err := r.run(ctx, "bundle", "create", path, ref); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}

	return data, nil
}

// ApplyBundle stores the objects of bundle in the repository. ref names the
// bundle head git is interested in; refs themselves are not updated.
func (r *Repo) ApplyBundle(ctx context.Context, bundle []byte, ref string) error {
	dir, err := os.MkdirTemp("", "git-remote-s3-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "in.bundle")
	if err := os.WriteFile(path, bundle, 0o600); err != nil {
		return fmt.Errorf("write bundle: %w", err)
	}

	if _, err := r.run(ctx, "bundle", "unbundle", path, ref); err != nil {
		return err
	}

	return nil
}
