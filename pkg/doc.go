// Package pkg provides the libraries behind the repodeps command.
//
// # Overview
//
// repodeps inventories the dependency manifests of a GitHub user's
// repositories. The pkg directory is organized into these areas:
//
//  1. [integrations] - HTTP client and the GitHub content client
//  2. [manifest] - Manifest registry, exclusion set and detection
//  3. [deps] - Ordered dependency maps and per-language manifest parsers
//  4. [pipeline] - Orchestration (list → detect → fetch → parse → report)
//  5. [config] - YAML configuration file
//
// # Architecture
//
// The data flow of one run:
//
//	GitHub user
//	     ↓
//	[integrations/github] repositories, default branch, file tree
//	     ↓
//	[manifest] excluded paths dropped, manifests grouped by language
//	     ↓
//	[integrations/github] raw manifest content
//	     ↓
//	[deps] name → version, in document order
//	     ↓
//	[pipeline] text report
//
// # Quick Start
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/matzehuels/repodeps/pkg/integrations/github"
//	    "github.com/matzehuels/repodeps/pkg/pipeline"
//	)
//
//	client := github.NewContentClient(github.Options{Token: os.Getenv("GITHUB_TOKEN")})
//	runner := pipeline.NewRunner(client, os.Stdout, nil)
//	summary, err := runner.Run(context.Background(), "octocat")
//
// Parse a single manifest:
//
//	res := deps.Parse("package.json", content, languages.Parsers()...)
//	for name, version := range res.Dependencies.All() {
//	    fmt.Printf("%s: %s\n", name, version)
//	}
//
// [integrations]: https://pkg.go.dev/github.com/matzehuels/repodeps/pkg/integrations
// [manifest]: https://pkg.go.dev/github.com/matzehuels/repodeps/pkg/manifest
// [deps]: https://pkg.go.dev/github.com/matzehuels/repodeps/pkg/deps
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/repodeps/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/repodeps/pkg/config
// [integrations/github]: https://pkg.go.dev/github.com/matzehuels/repodeps/pkg/integrations/github
package pkg
