package languages

import (
	"testing"

	"github.com/matzehuels/repodeps/pkg/deps"
	"github.com/matzehuels/repodeps/pkg/manifest"
)

func TestParsersCoverRegistry(t *testing.T) {
	parsers := Parsers()
	for _, lang := range manifest.DefaultRegistry {
		for _, name := range lang.Filenames {
			_, err := deps.DetectManifest(name, parsers...)
			if name == "pom.xml" {
				if err == nil {
					t.Errorf("pom.xml should have no parser")
				}
				continue
			}
			if err != nil {
				t.Errorf("no parser for %s (%s)", name, lang.Name)
			}
		}
	}
}
