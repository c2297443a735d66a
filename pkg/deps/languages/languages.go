// Package languages provides the complete list of manifest parsers.
//
// The individual language packages import pkg/deps, so pkg/deps cannot import
// them back. Consumers that need every parser import this package instead.
package languages

import (
	"github.com/matzehuels/repodeps/pkg/deps"
	"github.com/matzehuels/repodeps/pkg/deps/javascript"
	"github.com/matzehuels/repodeps/pkg/deps/php"
	"github.com/matzehuels/repodeps/pkg/deps/python"
)

// Parsers returns all manifest parsers. pom.xml has no parser and parses to
// an empty result.
func Parsers() []deps.ManifestParser {
	var all []deps.ManifestParser
	all = append(all, python.Parsers()...)
	all = append(all, javascript.Parsers()...)
	all = append(all, php.Parsers()...)
	return all
}
