package javascript

import (
	"github.com/matzehuels/repodeps/pkg/deps"
)

// PackageJSON parses package.json files. It extracts dependencies and
// devDependencies.
type PackageJSON struct{}

func (p *PackageJSON) Type() string              { return "package.json" }
func (p *PackageJSON) Supports(name string) bool { return name == "package.json" }

func (p *PackageJSON) Parse(content []byte) (*deps.Dependencies, error) {
	doc, err := deps.DecodeJSONObject(content)
	if err != nil {
		return nil, err
	}

	out := deps.NewDependencies()
	for _, key := range []string{"dependencies", "devDependencies"} {
		if err := deps.MergeJSONMember(out, doc, key); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Parsers returns the manifest parsers for JavaScript.
func Parsers() []deps.ManifestParser {
	return []deps.ManifestParser{&PackageJSON{}}
}
