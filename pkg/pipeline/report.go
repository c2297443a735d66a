package pipeline

import (
	"fmt"
	"io"

	"github.com/matzehuels/repodeps/pkg/deps"
)

// Report lines. Labels are styled; values are always written verbatim.
const (
	labelRepository   = "Analyzing repository:"
	labelLanguage     = "Detected language:"
	labelConfigFile   = "Config file:"
	labelDependencies = "Dependencies found:"

	msgNoDependencies = "No dependencies detected."
	msgUnavailable    = "Could not fetch file content."
	msgNoManifests    = "No recognized configuration file found."
)

// Styles decorates report labels. A nil field leaves its text unchanged.
type Styles struct {
	Repository func(string) string
	Label      func(string) string
	Notice     func(string) string
	Failure    func(string) string
}

// Report writes the line-oriented inventory report.
// Write errors are sticky: after the first failure nothing more is written
// and Err returns it.
type Report struct {
	w      io.Writer
	styles Styles
	err    error
}

// NewReport creates a report writing to w.
func NewReport(w io.Writer, styles Styles) *Report {
	return &Report{w: w, styles: styles}
}

// Repository starts the section of a repository with a blank line.
func (p *Report) Repository(name string) {
	p.printf("\n%s %s\n", apply(p.styles.Repository, labelRepository), name)
}

func (p *Report) Language(name string) {
	p.printf("%s %s\n", apply(p.styles.Label, labelLanguage), name)
}

func (p *Report) ConfigFile(path string) {
	p.printf("%s %s\n", apply(p.styles.Label, labelConfigFile), path)
}

// Dependencies writes the header and one line per dependency, or the
// empty-result line when d has no entries.
func (p *Report) Dependencies(d *deps.Dependencies) {
	if d.Len() == 0 {
		p.printf("%s\n", apply(p.styles.Notice, msgNoDependencies))
		return
	}
	p.printf("%s\n", apply(p.styles.Label, labelDependencies))
	for name, version := range d.All() {
		p.printf("  - %s: %s\n", name, version)
	}
}

func (p *Report) Unavailable() {
	p.printf("%s\n", apply(p.styles.Notice, msgUnavailable))
}

func (p *Report) NoManifests() {
	p.printf("%s\n", apply(p.styles.Notice, msgNoManifests))
}

// ParseError reports a failed parse of filename.
func (p *Report) ParseError(filename, reason string) {
	p.printf("%s %s\n", apply(p.styles.Failure, "Error parsing "+filename+":"), reason)
}

// Err returns the first write error.
func (p *Report) Err() error { return p.err }

func (p *Report) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func apply(style func(string) string, s string) string {
	if style == nil {
		return s
	}
	return style(s)
}
