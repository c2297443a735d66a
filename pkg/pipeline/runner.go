package pipeline

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/repodeps/pkg/deps"
	"github.com/matzehuels/repodeps/pkg/deps/languages"
	apperrors "github.com/matzehuels/repodeps/pkg/errors"
	"github.com/matzehuels/repodeps/pkg/integrations/github"
	"github.com/matzehuels/repodeps/pkg/manifest"
	"github.com/matzehuels/repodeps/pkg/observability"
)

// Runner executes inventory runs. Registry, exclusions and parsers are fixed
// at construction and only read during a run.
type Runner struct {
	Source     Source
	Registry   manifest.Registry
	Exclusions manifest.ExclusionSet
	Parsers    []deps.ManifestParser
	Report     *Report
	Logger     *log.Logger
}

// NewRunner creates a runner with the default registry, exclusions and
// parsers, writing an unstyled report to out.
// If logger is nil, log.Default() is used.
func NewRunner(src Source, out io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Source:     src,
		Registry:   manifest.DefaultRegistry.Clone(),
		Exclusions: manifest.DefaultExclusions,
		Parsers:    languages.Parsers(),
		Report:     NewReport(out, Styles{}),
		Logger:     logger,
	}
}

// Run inventories every repository of user. The returned error is non-nil
// only for an invalid user, a cancelled context or a failed report write;
// the summary covers everything processed up to that point.
func (r *Runner) Run(ctx context.Context, user string) (summary Summary, err error) {
	if err := github.ValidateOwner(user); err != nil {
		return summary, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "user %q", user)
	}

	start := time.Now()
	defer func() { summary.Duration = time.Since(start) }()

	repos, err := r.Source.ListUserRepos(ctx, user)
	if err != nil {
		r.Logger.Debug("list repositories failed", "user", user, "err", err)
		repos = nil
	}
	r.Logger.Debug("listed repositories", "user", user, "count", len(repos))

	for _, repo := range repos {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		r.scanRepo(ctx, user, repo.Name, &summary)
		if err := r.Report.Err(); err != nil {
			return summary, fmt.Errorf("write report: %w", err)
		}
	}
	return summary, ctx.Err()
}

func (r *Runner) scanRepo(ctx context.Context, owner, repo string, summary *Summary) {
	hooks := observability.Scan()
	hooks.OnRepoStart(ctx, repo)
	start := time.Now()

	summary.Repositories++
	r.Report.Repository(repo)

	branch := r.Source.DefaultBranch(ctx, owner, repo)
	files, err := r.Source.ListFiles(ctx, owner, repo, branch)
	if err != nil {
		r.Logger.Debug("list files failed", "repo", repo, "branch", branch, "err", err)
		files = nil
	}

	detected := r.Registry.Detect(files, r.Exclusions)
	r.Logger.Debug("detected manifests", "repo", repo, "branch", branch, "files", len(files), "manifests", detected.Count())
	if len(detected) == 0 {
		r.Report.NoManifests()
		hooks.OnRepoComplete(ctx, repo, 0, time.Since(start))
		return
	}

	for _, group := range detected {
		r.Report.Language(group.Language)
		for _, p := range group.Paths {
			if ctx.Err() != nil {
				return
			}
			r.scanManifest(ctx, owner, repo, branch, p, summary)
		}
	}
	hooks.OnRepoComplete(ctx, repo, detected.Count(), time.Since(start))
}

func (r *Runner) scanManifest(ctx context.Context, owner, repo, branch, p string, summary *Summary) {
	summary.Manifests++
	r.Report.ConfigFile(p)

	content, err := r.Source.FetchRaw(ctx, owner, repo, branch, p)
	if err == nil && content == "" {
		err = errEmptyContent
	}
	if err != nil {
		r.Logger.Debug("fetch failed", "repo", repo, "path", p, "err", err)
		summary.Unavailable++
		r.Report.Unavailable()
		observability.Scan().OnManifest(ctx, repo, p, 0, err, nil)
		return
	}

	res := deps.Parse(path.Base(p), []byte(content), r.Parsers...)
	if res.Failed() {
		r.Logger.Debug("parse failed", "repo", repo, "path", p, "err", res.Err)
		summary.ParseFailures++
		r.Report.ParseError(res.Filename, res.Reason())
	}
	summary.Dependencies += res.Dependencies.Len()
	r.Report.Dependencies(res.Dependencies)
	observability.Scan().OnManifest(ctx, repo, p, res.Dependencies.Len(), nil, res.Err)
}
