package python

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/repodeps/pkg/deps"
)

// Pyproject parses pyproject.toml files by merging project.dependencies into
// a name → version mapping.
//
// PEP 621 declares project.dependencies as a list of requirement strings
// ("requests>=2.0"), which has no name/version pairs to merge. Such a list is
// reported as a shape mismatch and yields no dependencies. Only a table, or
// a list whose every element is itself a two-item pair, is merged.
type Pyproject struct{}

func (p *Pyproject) Type() string              { return "pyproject.toml" }
func (p *Pyproject) Supports(name string) bool { return name == "pyproject.toml" }

func (p *Pyproject) Parse(content []byte) (*deps.Dependencies, error) {
	var doc map[string]any
	md, err := toml.Decode(string(content), &doc)
	if err != nil {
		return nil, err
	}

	out := deps.NewDependencies()

	rawProject, ok := doc["project"]
	if !ok {
		return out, nil
	}
	project, ok := rawProject.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("project: expected table, got %s", md.Type("project"))
	}

	raw, ok := project["dependencies"]
	if !ok {
		return out, nil
	}

	switch v := raw.(type) {
	case map[string]any:
		for _, name := range tableKeys(&md, v, "project", "dependencies") {
			out.Set(name, tomlText(v[name]))
		}
	case []any:
		if err := mergePairs(out, v); err != nil {
			return nil, fmt.Errorf("project.dependencies: %w", err)
		}
	default:
		return nil, fmt.Errorf("project.dependencies: expected table or array, got %s", md.Type("project", "dependencies"))
	}
	return out, nil
}

// tableKeys returns the keys of table in document order. Keys the metadata
// does not report are appended in sorted order.
func tableKeys(md *toml.MetaData, table map[string]any, prefix ...string) []string {
	seen := make(map[string]bool, len(table))
	var keys []string
	for _, k := range md.Keys() {
		if len(k) != len(prefix)+1 || !hasPrefix(k, prefix) {
			continue
		}
		name := k[len(prefix)]
		if _, ok := table[name]; ok && !seen[name] {
			seen[name] = true
			keys = append(keys, name)
		}
	}

	var rest []string
	for name := range table {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func hasPrefix(k toml.Key, prefix []string) bool {
	for i, p := range prefix {
		if k[i] != p {
			return false
		}
	}
	return true
}

// mergePairs merges a sequence of two-item elements. A string counts as a
// sequence of its characters, so only two-character strings qualify.
func mergePairs(out *deps.Dependencies, items []any) error {
	pairs := deps.NewDependencies()
	for i, item := range items {
		switch e := item.(type) {
		case string:
			r := []rune(e)
			if len(r) != 2 {
				return fmt.Errorf("element #%d has length %d; 2 is required", i, len(r))
			}
			pairs.Set(string(r[0]), string(r[1]))
		case []any:
			if len(e) != 2 {
				return fmt.Errorf("element #%d has length %d; 2 is required", i, len(e))
			}
			pairs.Set(tomlText(e[0]), tomlText(e[1]))
		default:
			return fmt.Errorf("element #%d is not a sequence (%T)", i, item)
		}
	}
	out.Merge(pairs)
	return nil
}

func tomlText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
