// Package github provides an HTTP client for the GitHub REST API and the raw
// content host.
//
// # Overview
//
// [ContentClient] covers the four read-only calls the inventory needs:
//
//   - [ContentClient.ListUserRepos]: GET /users/{user}/repos
//   - [ContentClient.GetRepoInfo]: GET /repos/{owner}/{repo}
//   - [ContentClient.GetTree]: GET /repos/{owner}/{repo}/git/trees/{branch}?recursive=1
//   - [ContentClient.FetchRaw]: GET {raw}/{owner}/{repo}/{branch}/{path}
//
// The static authorization value is attached to API calls only. Raw-content
// requests are always sent without it.
//
// # Usage
//
//	client := github.NewContentClient(github.Options{Token: os.Getenv("GITHUB_TOKEN")})
//
//	repos, err := client.ListUserRepos(ctx, "octocat")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range repos {
//	    branch := client.DefaultBranch(ctx, "octocat", r.Name)
//	    files, _ := client.ListFiles(ctx, "octocat", r.Name, branch)
//	    fmt.Println(r.Name, len(files))
//	}
//
// Only the first page of the repository listing is read.
package github
