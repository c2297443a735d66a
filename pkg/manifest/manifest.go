package manifest

import (
	"path"
	"strings"

	apperrors "github.com/matzehuels/repodeps/pkg/errors"
)

// Language names a language ecosystem and the manifest filenames that
// identify it.
type Language struct {
	Name      string   `yaml:"name"`
	Filenames []string `yaml:"manifests"`
}

// Matches reports whether filename is one of the language's manifests.
func (l Language) Matches(filename string) bool {
	for _, f := range l.Filenames {
		if f == filename {
			return true
		}
	}
	return false
}

// Registry is an ordered list of languages. Order decides which language wins
// if two languages list the same filename.
type Registry []Language

// DefaultRegistry is the built-in manifest registry.
var DefaultRegistry = Registry{
	{Name: "Python", Filenames: []string{"requirements.txt", "pyproject.toml"}},
	{Name: "JavaScript", Filenames: []string{"package.json"}},
	{Name: "Java", Filenames: []string{"pom.xml"}},
	{Name: "PHP", Filenames: []string{"composer.json"}},
}

// Clone returns a deep copy, so callers can hand out a registry without
// sharing its backing arrays.
func (r Registry) Clone() Registry {
	out := make(Registry, len(r))
	for i, l := range r {
		out[i] = Language{Name: l.Name, Filenames: append([]string(nil), l.Filenames...)}
	}
	return out
}

// Validate checks that every language is named and every filename is a bare
// base name.
func (r Registry) Validate() error {
	if len(r) == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "manifest registry is empty")
	}
	for _, l := range r {
		if strings.TrimSpace(l.Name) == "" {
			return apperrors.New(apperrors.ErrCodeInvalidConfig, "language name cannot be empty")
		}
		if len(l.Filenames) == 0 {
			return apperrors.New(apperrors.ErrCodeInvalidConfig, "language %s has no manifest filenames", l.Name)
		}
		for _, f := range l.Filenames {
			if err := apperrors.ValidateManifestFilename(f); err != nil {
				return err
			}
		}
	}
	return nil
}

// LanguageOf returns the first language whose manifests include filename.
func (r Registry) LanguageOf(filename string) (string, bool) {
	for _, l := range r {
		if l.Matches(filename) {
			return l.Name, true
		}
	}
	return "", false
}

// Group holds the manifest paths detected for one language.
type Group struct {
	Language string
	Paths    []string
}

// Detected is the per-repository detection result. Groups appear in the order
// their language was first matched and never have empty Paths.
type Detected []Group

// Count returns the total number of detected manifest paths.
func (d Detected) Count() int {
	n := 0
	for _, g := range d {
		n += len(g.Paths)
	}
	return n
}

// Detect matches the base name of every non-excluded path against the
// registry. Paths keep their encounter order within each group.
func (r Registry) Detect(paths []string, exclude ExclusionSet) Detected {
	var out Detected
	index := make(map[string]int)
	for _, p := range paths {
		if exclude.Excluded(p) {
			continue
		}
		lang, ok := r.LanguageOf(path.Base(p))
		if !ok {
			continue
		}
		i, seen := index[lang]
		if !seen {
			i = len(out)
			index[lang] = i
			out = append(out, Group{Language: lang})
		}
		out[i].Paths = append(out[i].Paths, p)
	}
	return out
}
