// Package integrations provides the HTTP plumbing shared by provider clients.
//
// # Overview
//
// The [Client] type issues GET requests with a fixed header set and maps
// response statuses onto two sentinel errors:
//
//   - [ErrNotFound]: the provider answered 404
//   - [ErrNetwork]: transport failure or any other non-200 status
//
// Provider-specific clients live in subpackages:
//
//   - [github]: repository listing, tree listing and raw file content
//
// # Client Pattern
//
//	api := integrations.NewClient(map[string]string{"Accept": "application/json"})
//	var repos []Repo
//	err := api.Get(ctx, "https://api.github.com/users/octocat/repos", &repos)
//
// Requests are not cached, retried or paginated. Each call is a single
// request whose failure is returned to the caller unchanged.
package integrations
