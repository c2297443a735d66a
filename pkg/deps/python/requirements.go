package python

import (
	"strings"

	"github.com/matzehuels/repodeps/pkg/deps"
)

const pinSep = "=="

// Requirements parses requirements.txt files line by line.
//
// A line containing "==" is split on its first occurrence into name and
// version. Every other line is recorded with version deps.Unknown after
// trimming, so blank lines, comments and option lines ("-r base.txt") show
// up as entries too.
type Requirements struct{}

func (r *Requirements) Type() string              { return "requirements.txt" }
func (r *Requirements) Supports(name string) bool { return name == "requirements.txt" }

func (r *Requirements) Parse(content []byte) (*deps.Dependencies, error) {
	out := deps.NewDependencies()
	for _, line := range splitLines(string(content)) {
		if name, version, ok := strings.Cut(line, pinSep); ok {
			out.Set(strings.TrimSpace(name), strings.TrimSpace(version))
			continue
		}
		out.Set(strings.TrimSpace(line), deps.Unknown)
	}
	return out, nil
}

// splitLines splits on "\n", "\r\n" and a lone "\r". A trailing line
// break does not start a new line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(lineBreaks.Replace(s), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")
