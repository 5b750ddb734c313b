package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/grafana/s3remote/cli/internal/client"
	"github.com/grafana/s3remote/cli/internal/config"
	"github.com/grafana/s3remote/git"
	"github.com/grafana/s3remote/helper"
	"github.com/grafana/s3remote/log"
)

// NewRootCommand returns the git-remote-s3 command. Protocol responses go to
// stdout; logs go to the command's error stream.
func NewRootCommand() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "git-remote-s3 <alias> [<url>]",
		Short: "Git remote helper storing encrypted bundles in S3",
		Long: `git-remote-s3 is a git remote helper. Git runs it for remotes with an
s3:// URL; it is not meant to be run by hand.

  git remote add origin s3://my-bucket/path/to/repo
  git push origin main

Every push uploads a gpg-encrypted bundle of the pushed ref. Recipients are
read from remote.<alias>.gpgRecipients, falling back to user.email.

Environment:
  S3_ENDPOINT        S3-compatible endpoint (or remote.<alias>.s3endpoint)
  AWS_REGION         bucket region (or remote.<alias>.s3region, default us-east-1)
  AWS_PROFILE        shared config profile
  GIT_S3_NO_ENCRYPT  store bundles in cleartext when true
  GIT_S3_LOG_LEVEL   debug, info, warn or error (default warn)`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnvironment(args)
			if err != nil {
				return err
			}
			cfg.ApplyFlags(logLevel)

			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	logger, err := log.NewZapLogger(cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	ctx = log.WithContextLogger(ctx, logger)

	repo := git.New("")
	if err := cfg.Merge(ctx, repo); err != nil {
		return fmt.Errorf("read git configuration: %w", err)
	}
	logger.Debug("starting remote helper",
		"alias", cfg.Alias,
		"root", cfg.Root.String(),
		"region", cfg.Region,
		"endpoint", cfg.Endpoint,
		"encrypt", !cfg.NoEncrypt)

	c, err := client.New(ctx, cfg, repo, logger)
	if err != nil {
		return err
	}

	return helper.New(c, helper.WithLogger(logger)).Run(ctx, stdin, stdout)
}
