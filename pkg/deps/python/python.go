package python

import "github.com/matzehuels/repodeps/pkg/deps"

// Parsers returns the manifest parsers for Python.
func Parsers() []deps.ManifestParser {
	return []deps.ManifestParser{
		&Requirements{},
		&Pyproject{},
	}
}
