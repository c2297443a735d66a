// Package cli implements the repodeps command-line interface.
//
// The root command inventories the dependency manifests of every repository
// owned by a GitHub user and prints a plain-text report to stdout. Logs go to
// stderr through charmbracelet/log; --verbose (-v) enables debug logging,
// which includes every provider request.
//
// # Commands
//
//   - repodeps [user]: scan a user's repositories (the default command)
//   - manifests: print the effective manifest registry and exclusions
//   - completion: generate shell completion scripts
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/repodeps/pkg/buildinfo"
	"github.com/matzehuels/repodeps/pkg/config"
	"github.com/matzehuels/repodeps/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "repodeps"

	// tokenEnv is the environment variable read when no token is configured.
	tokenEnv = "GITHUB_TOKEN"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // report output, stdout by default

	verbose    bool
	configPath string
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.scanCommand()
	root.Use = appName + " [user]"
	root.Short = "repodeps lists the declared dependencies of a GitHub user's repositories"
	root.Long = `repodeps walks every repository of a GitHub user, detects dependency
manifest files (requirements.txt, pyproject.toml, package.json, pom.xml,
composer.json) and prints the dependencies each one declares.`
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	_ = root.MarkPersistentFlagFilename("config", "yaml", "yml")
	root.ValidArgsFunction = cobra.NoFileCompletions

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if c.verbose {
			c.SetLogLevel(LogDebug)
		}
		hooks := &logHooks{logger: c.Logger}
		observability.SetScanHooks(hooks)
		observability.SetHTTPHooks(hooks)
		return nil
	}

	root.AddCommand(c.manifestsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the --config file or the default config file.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}
	return cfg, nil
}
