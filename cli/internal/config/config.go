// Package config assembles the remote helper configuration from its
// arguments, the environment and git configuration.
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/grafana/s3remote/git"
	"github.com/grafana/s3remote/storage"
)

const (
	// DefaultRegion is used when neither AWS_REGION nor git configuration
	// name a region.
	DefaultRegion = "us-east-1"
	// DefaultTimeout bounds every object store request.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxAttempts is the number of tries for a retryable request.
	DefaultMaxAttempts = 3

	// Scheme is the URL scheme of remotes served by the helper.
	Scheme = "s3"
)

// ErrInvalidURL is returned for remote URLs that do not name a bucket.
var ErrInvalidURL = errors.New("invalid remote url")

// Config holds everything needed to serve one remote.
type Config struct {
	Alias string
	URL   string
	Root  storage.Key

	Endpoint string
	Region   string
	Profile  string

	NoEncrypt bool
	LogLevel  string

	Timeout     time.Duration
	MaxAttempts int
}

// GitConfig reads git configuration values.
type GitConfig interface {
	Config(ctx context.Context, key string) (string, error)
}

// FromEnvironment builds a Config from the helper arguments and environment
// variables. Git passes `<alias> <url>`; when the remote is used by URL
// only, git passes the URL twice or alone, and the alias is the URL.
func FromEnvironment(args []string) (*Config, error) {
	if len(args) == 0 || len(args) > 2 {
		return nil, fmt.Errorf("expected <alias> [<url>], got %d arguments", len(args))
	}

	alias, rawURL := args[0], args[0]
	if len(args) == 2 {
		rawURL = args[1]
	}

	root, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	noEncrypt := false
	if v := os.Getenv("GIT_S3_NO_ENCRYPT"); v != "" {
		noEncrypt, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parse GIT_S3_NO_ENCRYPT: %w", err)
		}
	}

	return &Config{
		Alias:       alias,
		URL:         rawURL,
		Root:        root,
		Endpoint:    os.Getenv("S3_ENDPOINT"),
		Region:      os.Getenv("AWS_REGION"),
		Profile:     os.Getenv("AWS_PROFILE"),
		NoEncrypt:   noEncrypt,
		LogLevel:    os.Getenv("GIT_S3_LOG_LEVEL"),
		Timeout:     DefaultTimeout,
		MaxAttempts: DefaultMaxAttempts,
	}, nil
}

// ParseURL parses s3://bucket[/prefix] into the root key of a remote.
func ParseURL(raw string) (storage.Key, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return storage.Key{}, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != Scheme {
		return storage.Key{}, fmt.Errorf("%w: scheme must be %s://, got %q", ErrInvalidURL, Scheme, raw)
	}
	if u.Host == "" {
		return storage.Key{}, fmt.Errorf("%w: missing bucket in %q", ErrInvalidURL, raw)
	}
	if u.User != nil || u.RawQuery != "" || u.Fragment != "" {
		return storage.Key{}, fmt.Errorf("%w: unexpected user, query or fragment in %q", ErrInvalidURL, raw)
	}

	return storage.NewKey(u.Host, u.Path), nil
}

// Merge fills settings left unset by the environment from the
// remote.<alias>.* git configuration, then applies defaults.
// The environment always takes precedence.
func (c *Config) Merge(ctx context.Context, gitConfig GitConfig) error {
	lookup := func(name string) (string, error) {
		value, err := gitConfig.Config(ctx, "remote."+c.Alias+"."+name)
		if errors.Is(err, git.ErrConfigNotFound) {
			return "", nil
		}
		return strings.TrimSpace(value), err
	}

	if c.Endpoint == "" {
		endpoint, err := lookup("s3endpoint")
		if err != nil {
			return fmt.Errorf("read endpoint: %w", err)
		}
		c.Endpoint = endpoint
	}

	if c.Region == "" {
		region, err := lookup("s3region")
		if err != nil {
			return fmt.Errorf("read region: %w", err)
		}
		c.Region = region
	}
	if c.Region == "" {
		c.Region = DefaultRegion
	}

	return nil
}

// ApplyFlags overrides settings with command-line flags that were set.
func (c *Config) ApplyFlags(logLevel string) {
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}
