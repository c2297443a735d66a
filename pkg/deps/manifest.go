package deps

import (
	"errors"
	"fmt"
	"path"

	apperrors "github.com/matzehuels/repodeps/pkg/errors"
)

// ManifestParser extracts direct dependencies from manifest content.
//
// Implementations are found in language subpackages (e.g., python.Requirements).
type ManifestParser interface {
	// Parse reads the manifest content and returns its dependencies.
	// Returns an error for malformed content or an unexpected document shape.
	Parse(content []byte) (*Dependencies, error)

	// Supports reports whether this parser handles the given base filename.
	Supports(filename string) bool

	// Type returns the manifest type identifier (e.g., "package.json").
	Type() string
}

// Result is the outcome of one parse attempt. Dependencies is never nil;
// it is empty whenever Err is set.
type Result struct {
	Filename     string        // Base filename used to select the parser
	Type         string        // Parser type, empty when no parser supports Filename
	Dependencies *Dependencies // Parsed dependencies (possibly empty)
	Err          error         // Parse failure, coded ErrCodeInvalidManifest
}

// Failed reports whether the parse attempt failed.
func (r Result) Failed() bool { return r.Err != nil }

// Reason returns the underlying parse error text, without the code prefix.
func (r Result) Reason() string {
	if r.Err == nil {
		return ""
	}
	if cause := errors.Unwrap(r.Err); cause != nil {
		return cause.Error()
	}
	return r.Err.Error()
}

// DetectManifest finds a parser that supports the given file path.
//
// The path is matched against each parser's Supports method using the basename.
// Parsers are checked in order, and the first match is returned.
func DetectManifest(p string, parsers ...ManifestParser) (ManifestParser, error) {
	name := path.Base(p)
	for _, mp := range parsers {
		if mp.Supports(name) {
			return mp, nil
		}
	}
	return nil, fmt.Errorf("unsupported manifest: %s", name)
}

// Parse extracts dependencies from content using the parser selected by
// filename. A filename no parser supports yields an empty result without an
// error. Failures, including panics inside a parser, are returned in
// Result.Err and never propagate.
func Parse(filename string, content []byte, parsers ...ManifestParser) (res Result) {
	res = Result{Filename: filename, Dependencies: NewDependencies()}

	mp, err := DetectManifest(filename, parsers...)
	if err != nil {
		return res
	}
	res.Type = mp.Type()

	defer func() {
		if r := recover(); r != nil {
			res.Dependencies = NewDependencies()
			res.Err = apperrors.Wrap(apperrors.ErrCodeInvalidManifest, fmt.Errorf("%v", r), "parse %s", filename)
		}
	}()

	d, err := mp.Parse(content)
	if err != nil {
		res.Err = apperrors.Wrap(apperrors.ErrCodeInvalidManifest, err, "parse %s", filename)
		return res
	}
	if d != nil {
		res.Dependencies = d
	}
	return res
}
