package php

import (
	"github.com/matzehuels/repodeps/pkg/deps"
)

// ComposerJSON parses composer.json files. Only the require section is read;
// platform requirements such as "php" and "ext-*" are kept.
type ComposerJSON struct{}

func (c *ComposerJSON) Type() string              { return "composer.json" }
func (c *ComposerJSON) Supports(name string) bool { return name == "composer.json" }

func (c *ComposerJSON) Parse(content []byte) (*deps.Dependencies, error) {
	doc, err := deps.DecodeJSONObject(content)
	if err != nil {
		return nil, err
	}

	out := deps.NewDependencies()
	if err := deps.MergeJSONMember(out, doc, "require"); err != nil {
		return nil, err
	}
	return out, nil
}

// Parsers returns the manifest parsers for PHP.
func Parsers() []deps.ManifestParser {
	return []deps.ManifestParser{&ComposerJSON{}}
}
