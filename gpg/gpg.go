// Package gpg encrypts and decrypts bundles with the gpg command line tool.
// Data is streamed through the subprocess' stdin and stdout; nothing is
// written to disk.
package gpg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

const armorHeader = "-----BEGIN PGP MESSAGE-----"

// CommandError describes a gpg invocation that exited unsuccessfully.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("gpg %s: exit status %d: %s", strings.Join(e.Args, " "), e.ExitCode, e.Stderr)
}

// Crypter runs gpg.
type Crypter struct {
	binary  string
	homedir string
}

// Option configures a Crypter.
type Option func(*Crypter)

// WithBinary overrides the gpg executable.
func WithBinary(path string) Option {
	return func(c *Crypter) {
		c.binary = path
	}
}

// WithHomedir runs gpg with --homedir dir instead of the default keyring.
func WithHomedir(dir string) Option {
	return func(c *Crypter) {
		c.homedir = dir
	}
}

// New returns a Crypter using the gpg found on PATH.
func New(opts ...Option) *Crypter {
	c := &Crypter{binary: "gpg"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encrypt encrypts data for every recipient. Without recipients data is
// returned unchanged.
func (c *Crypter) Encrypt(ctx context.Context, recipients []string, data []byte) ([]byte, error) {
	if len(recipients) == 0 {
		return bytes.Clone(data), nil
	}

	args := []string{"--batch", "--yes", "--encrypt"}
	for _, r := range recipients {
		args = append(args, "--recipient", r)
	}

	return c.run(ctx, data, args...)
}

// Decrypt decrypts an OpenPGP message. Anything else is returned unchanged,
// which is how bundles stored without recipients are read back.
func (c *Crypter) Decrypt(ctx context.Context, data []byte) ([]byte, error) {
	if !IsEncrypted(data) {
		return bytes.Clone(data), nil
	}

	return c.run(ctx, data, "--batch", "--yes", "--decrypt")
}

// IsEncrypted reports whether data looks like an OpenPGP message: either
// ASCII armored or starting with a binary packet header, whose high bit is
// always set.
func IsEncrypted(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if bytes.HasPrefix(data, []byte(armorHeader)) {
		return true
	}
	return data[0]&0x80 != 0
}

func (c *Crypter) run(ctx context.Context, input []byte, args ...string) ([]byte, error) {
	if c.homedir != "" {
		args = append([]string{"--homedir", c.homedir}, args...)
	}

	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Env = os.Environ()

	stdIn, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("get stdin for gpg: %w", err)
	}
	stdOut, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("get stdout for gpg: %w", err)
	}
	stdErr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("get stderr for gpg: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start gpg: %w", err)
	}

	var outBuf, errBuf bytes.Buffer
	var eg errgroup.Group
	eg.Go(func() error {
		_, err := io.Copy(&outBuf, stdOut)
		return err
	})
	eg.Go(func() error {
		_, err := io.Copy(&errBuf, stdErr)
		return err
	})
	eg.Go(func() error {
		defer stdIn.Close()
		// gpg may exit before reading all input, e.g. for an unknown
		// recipient; its exit status carries the real error.
		_, _ = io.Copy(stdIn, bytes.NewReader(input))
		return nil
	})

	pumpErr := eg.Wait()
	waitErr := cmd.Wait()

	if waitErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		cmdErr := &CommandError{Args: args, ExitCode: -1, Stderr: strings.TrimSpace(errBuf.String())}
		if cmd.ProcessState != nil {
			cmdErr.ExitCode = cmd.ProcessState.ExitCode()
		}
		return nil, cmdErr
	}
	if pumpErr != nil {
		return nil, fmt.Errorf("read gpg output: %w", pumpErr)
	}

	return outBuf.Bytes(), nil
}
