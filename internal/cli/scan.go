package cli

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/repodeps/pkg/errors"
	"github.com/matzehuels/repodeps/pkg/integrations/github"
	"github.com/matzehuels/repodeps/pkg/pipeline"
)

// scanOptions holds the flags of the scan (root) command.
type scanOptions struct {
	user    string
	token   string
	apiURL  string
	rawURL  string
	timeout time.Duration
}

// scanCommand creates the command that scans a user's repositories.
func (c *CLI) scanCommand() *cobra.Command {
	var opts scanOptions

	cmd := &cobra.Command{
		Args: cobra.MaximumNArgs(1),
		Example: `  repodeps octocat
  repodeps --user octocat --token "$(gh auth token)"
  repodeps octocat --api-url https://github.example.com/api/v3 --raw-url https://github.example.com/raw`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.user = args[0]
			}
			return c.runScan(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.user, "user", "u", "", "GitHub user whose repositories are scanned")
	_ = cmd.RegisterFlagCompletionFunc("user", cobra.NoFileCompletions)
	cmd.Flags().StringVar(&opts.token, "token", "", "access token sent to the API (default $"+tokenEnv+")")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "GitHub API base URL (default "+github.DefaultAPIURL+")")
	cmd.Flags().StringVar(&opts.rawURL, "raw-url", "", "raw content base URL (default "+github.DefaultRawURL+")")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "overall deadline for the scan (0 for none)")

	return cmd
}

func (c *CLI) runScan(cmd *cobra.Command, opts scanOptions) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	user := firstNonEmpty(opts.user, cfg.User)
	if user == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "a GitHub user is required (argument, --user or config)")
	}
	token := opts.token
	if !cmd.Flags().Changed("token") {
		token = firstNonEmpty(cfg.Token, os.Getenv(tokenEnv))
	}
	apiURL := firstNonEmpty(opts.apiURL, cfg.APIURL)
	rawURL := firstNonEmpty(opts.rawURL, cfg.RawURL)
	for _, u := range []string{apiURL, rawURL} {
		if u == "" {
			continue
		}
		if err := apperrors.ValidateURL(u); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	logger := c.Logger.With("run", uuid.NewString()[:8])

	client := github.NewContentClient(github.Options{Token: token, APIURL: apiURL, RawURL: rawURL})
	runner := pipeline.NewRunner(client, c.Out, logger)
	runner.Registry = cfg.Registry
	runner.Exclusions = cfg.Exclusions
	runner.Report = pipeline.NewReport(c.Out, reportStyles(c.Out))

	logger.Debug("starting scan", "user", user, "authenticated", token != "", "languages", len(cfg.Registry))

	summary, err := runner.Run(ctx, user)
	if err != nil {
		return err
	}

	if summary.Repositories == 0 {
		logger.Warn("no repositories found", "user", user)
	}
	if summary.Unavailable > 0 || summary.ParseFailures > 0 {
		logger.Warn("some manifests could not be read",
			"unavailable", summary.Unavailable,
			"parse_failures", summary.ParseFailures)
	}
	logger.Infof("Scanned %d repositories, %d manifests, %d dependencies (%s)",
		summary.Repositories, summary.Manifests, summary.Dependencies,
		summary.Duration.Round(time.Millisecond))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
