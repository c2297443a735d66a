package github

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/matzehuels/repodeps/pkg/errors"
	"github.com/matzehuels/repodeps/pkg/integrations"
)

const (
	// DefaultAPIURL is the GitHub REST API base URL.
	DefaultAPIURL = "https://api.github.com"

	// DefaultRawURL is the raw file content host.
	DefaultRawURL = "https://raw.githubusercontent.com"

	// FallbackBranch is used whenever the default branch cannot be resolved.
	FallbackBranch = "main"
)

// Options configures a ContentClient. Zero values select the public GitHub
// endpoints and anonymous access.
type Options struct {
	Token  string // Static access token; empty means anonymous (rate-limited)
	APIURL string // REST API base URL (default: DefaultAPIURL)
	RawURL string // Raw content base URL (default: DefaultRawURL)
}

// ContentClient provides access to GitHub repository listings and content.
type ContentClient struct {
	api     *integrations.Client
	raw     *integrations.Client
	baseURL string
	rawURL  string
}

// NewContentClient creates a content client. The token, when set, is only
// sent to the REST API.
func NewContentClient(opts Options) *ContentClient {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if opts.Token != "" {
		headers["Authorization"] = "Bearer " + opts.Token
	}
	if opts.APIURL == "" {
		opts.APIURL = DefaultAPIURL
	}
	if opts.RawURL == "" {
		opts.RawURL = DefaultRawURL
	}
	return &ContentClient{
		api:     integrations.NewClient(headers),
		raw:     integrations.NewClient(nil),
		baseURL: strings.TrimSuffix(opts.APIURL, "/"),
		rawURL:  strings.TrimSuffix(opts.RawURL, "/"),
	}
}

// ListUserRepos retrieves the repositories owned by user, in the order the
// API returns them. Only the first page is requested.
func (c *ContentClient) ListUserRepos(ctx context.Context, user string) ([]Repo, error) {
	url := fmt.Sprintf("%s/users/%s/repos", c.baseURL, escapePath(user))

	var repos []Repo
	if err := c.api.Get(ctx, url, &repos); err != nil {
		return nil, wrap(err, "list repos for %s", user)
	}
	return repos, nil
}

// GetRepoInfo retrieves repository metadata.
func (c *ContentClient) GetRepoInfo(ctx context.Context, owner, repo string) (*RepoInfo, error) {
	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, escapePath(owner), escapePath(repo))

	var repoResp apiRepoResponse
	if err := c.api.Get(ctx, url, &repoResp); err != nil {
		return nil, wrap(err, "get repo %s/%s", owner, repo)
	}

	return &RepoInfo{
		Name:          repoResp.Name,
		FullName:      repoResp.FullName,
		DefaultBranch: repoResp.DefaultBranch,
		Archived:      repoResp.Archived,
	}, nil
}

// DefaultBranch resolves the default branch of owner/repo. It never fails:
// any lookup error or an empty default_branch field yields FallbackBranch,
// in which case the tree listing may come back empty.
func (c *ContentClient) DefaultBranch(ctx context.Context, owner, repo string) string {
	info, err := c.GetRepoInfo(ctx, owner, repo)
	if err != nil || info.DefaultBranch == "" {
		return FallbackBranch
	}
	return info.DefaultBranch
}

// GetTree retrieves the full recursive file tree of a repository at branch.
// A truncated response is returned as-is.
func (c *ContentClient) GetTree(ctx context.Context, owner, repo, branch string) ([]TreeEntry, error) {
	if branch == "" {
		branch = "HEAD"
	}
	url := fmt.Sprintf("%s/repos/%s/%s/git/trees/%s?recursive=1",
		c.baseURL, escapePath(owner), escapePath(repo), escapePath(branch))

	var treeResp treeResponse
	if err := c.api.Get(ctx, url, &treeResp); err != nil {
		return nil, wrap(err, "get tree %s/%s@%s", owner, repo, branch)
	}

	entries := make([]TreeEntry, 0, len(treeResp.Tree))
	for _, item := range treeResp.Tree {
		entries = append(entries, TreeEntry{
			Path: item.Path,
			Type: item.Type,
			Size: item.Size,
		})
	}

	return entries, nil
}

// ListFiles returns the paths of all regular files (blobs) in the tree,
// in tree order. Directories and submodules are dropped.
func (c *ContentClient) ListFiles(ctx context.Context, owner, repo, branch string) ([]string, error) {
	entries, err := c.GetTree(ctx, owner, repo, branch)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsFile() {
			paths = append(paths, e.Path)
		}
	}
	return paths, nil
}

// FetchRaw retrieves the raw text of path at branch from the raw content host.
// Any non-200 status is an error; 404 is reported as ErrCodeFileNotFound.
func (c *ContentClient) FetchRaw(ctx context.Context, owner, repo, branch, path string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s/%s/%s",
		c.rawURL, escapePath(owner), escapePath(repo), escapePath(branch), escapePath(path))

	content, err := c.raw.GetText(ctx, url)
	if err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return "", apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "fetch %s", path)
		}
		return "", apperrors.Wrap(apperrors.ErrCodeNetwork, err, "fetch %s", path)
	}
	return content, nil
}

func wrap(err error, format string, args ...any) error {
	if errors.Is(err, integrations.ErrNotFound) {
		return apperrors.Wrap(apperrors.ErrCodeNotFound, err, format, args...)
	}
	return apperrors.Wrap(apperrors.ErrCodeNetwork, err, format, args...)
}
