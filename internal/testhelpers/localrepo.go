package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// LocalRepo is a git repository in a temporary directory.
type LocalRepo struct {
	Path   string
	logger *TestLogger
}

// NewLocalRepo initialises a repository under dir with main as its default
// branch and a fixed identity.
func NewLocalRepo(dir string, logger *TestLogger) (*LocalRepo, error) {
	path := filepath.Join(dir, "repo")
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, err
	}

	r := &LocalRepo{Path: path, logger: logger}
	for _, args := range [][]string{
		{"init", "-q"},
		{"symbolic-ref", "HEAD", "refs/heads/main"},
		{"config", "user.email", "dev@example.com"},
		{"config", "user.name", "Dev"},
		{"config", "commit.gpgsign", "false"},
	} {
		if _, err := r.Git(args...); err != nil {
			return nil, err
		}
	}
	logger.Logf("%s[LOCAL] initialized repository at %s%s", ColorBlue, path, ColorReset)

	return r, nil
}

// Git runs git in the repository and returns its trimmed output.
func (r *LocalRepo) Git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Path
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	r.logger.Logf("%s[LOCAL] $ git %s%s", ColorPurple, strings.Join(args, " "), ColorReset)
	out, err := cmd.CombinedOutput()
	if err != nil {
		r.logger.Logf("%s[LOCAL] %s%s", ColorRed, out, ColorReset)
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, out)
	}

	return strings.TrimSpace(string(out)), nil
}

// Commit writes content to file, commits it and returns the new revision.
func (r *LocalRepo) Commit(file, content string) (string, error) {
	if err := os.WriteFile(filepath.Join(r.Path, file), []byte(content), 0o600); err != nil {
		return "", err
	}
	if _, err := r.Git("add", file); err != nil {
		return "", err
	}
	if _, err := r.Git("commit", "-q", "-m", "update "+file); err != nil {
		return "", err
	}

	return r.Git("rev-parse", "HEAD")
}

// HasCommit reports whether revision is in the object database.
func (r *LocalRepo) HasCommit(revision string) bool {
	_, err := r.Git("cat-file", "-e", revision+"^{commit}")
	return err == nil
}
