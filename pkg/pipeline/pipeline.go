// Package pipeline runs a dependency inventory of one GitHub user.
//
// A run walks the user's repositories in provider order. For each repository
// it resolves the default branch, lists the file tree, detects manifest files
// by base filename and, per detected manifest, fetches the raw content and
// parses the dependencies. Every step writes plain lines to a [Report].
//
// Provider and parse failures never abort a run: they degrade to a report
// line and a debug log entry. Only context cancellation stops a run early.
//
// # Usage
//
//	client := github.NewContentClient(github.Options{Token: token})
//	runner := pipeline.NewRunner(client, os.Stdout, logger)
//	summary, err := runner.Run(ctx, "octocat")
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/matzehuels/repodeps/pkg/integrations/github"
)

// Source provides repository listings and content. It is satisfied by
// *github.ContentClient.
type Source interface {
	ListUserRepos(ctx context.Context, user string) ([]github.Repo, error)
	DefaultBranch(ctx context.Context, owner, repo string) string
	ListFiles(ctx context.Context, owner, repo, branch string) ([]string, error)
	FetchRaw(ctx context.Context, owner, repo, branch, path string) (string, error)
}

// Summary counts the outcomes of a run.
type Summary struct {
	Repositories  int // Repositories analyzed
	Manifests     int // Manifest files detected
	Dependencies  int // Dependency lines reported
	Unavailable   int // Manifests whose content could not be fetched
	ParseFailures int // Manifests that failed to parse
	Duration      time.Duration
}

var errEmptyContent = errors.New("empty content")
