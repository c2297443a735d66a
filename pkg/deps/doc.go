// Package deps extracts direct dependencies from manifest file content.
//
// # Overview
//
// A [ManifestParser] turns the raw text of one manifest format into a flat,
// insertion-ordered [Dependencies] mapping of name to version string.
// Versions are kept exactly as written: constraints are not normalized and
// not parsed as semver.
//
// Parsers live in language subpackages:
//
//   - [python]: requirements.txt, pyproject.toml
//   - [javascript]: package.json
//   - [php]: composer.json
//
// The [languages] subpackage lists them all.
//
// # Parsing
//
// [Parse] selects a parser by base filename and never fails outright:
//
//	res := deps.Parse("package.json", content, languages.Parsers()...)
//	if res.Failed() {
//	    fmt.Printf("Error parsing %s: %s\n", res.Filename, res.Reason())
//	}
//	for name, version := range res.Dependencies.All() {
//	    fmt.Printf("%s: %s\n", name, version)
//	}
//
// A filename without a parser (pom.xml, for example) yields an empty result
// with no error. A malformed manifest yields an empty result and an error
// coded [errors.ErrCodeInvalidManifest].
//
// [python]: https://pkg.go.dev/github.com/matzehuels/repodeps/pkg/deps/python
// [javascript]: https://pkg.go.dev/github.com/matzehuels/repodeps/pkg/deps/javascript
// [php]: https://pkg.go.dev/github.com/matzehuels/repodeps/pkg/deps/php
// [languages]: https://pkg.go.dev/github.com/matzehuels/repodeps/pkg/deps/languages
// [errors.ErrCodeInvalidManifest]: https://pkg.go.dev/github.com/matzehuels/repodeps/pkg/errors#ErrCodeInvalidManifest
package deps
