// Package python parses Python dependency manifests.
//
// # requirements.txt
//
// Each line is one entry. A line containing "==" is split on the first
// occurrence into name and version; any other line is recorded whole with
// version [deps.Unknown]. Blank lines and comments are not skipped.
//
// # pyproject.toml
//
// project.dependencies is read when it is a table of name = version pairs.
// The PEP 621 list of requirement strings is reported as a parse error.
//
// [deps.Unknown]: https://pkg.go.dev/github.com/matzehuels/repodeps/pkg/deps#Unknown
package python
