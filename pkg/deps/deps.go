package deps

import (
	"iter"
	"maps"
)

// Unknown is the version recorded for a dependency listed without a pin.
const Unknown = "unknown"

// Dependencies is an insertion-ordered mapping of dependency name to version
// string. Versions are stored exactly as written in the manifest.
//
// The zero value is empty and ready to use. A nil *Dependencies reads as empty.
type Dependencies struct {
	names    []string
	versions map[string]string
}

// NewDependencies returns an empty mapping.
func NewDependencies() *Dependencies {
	return &Dependencies{}
}

// Set records name → version. Setting an existing name replaces its version
// but keeps its original position.
func (d *Dependencies) Set(name, version string) {
	if d.versions == nil {
		d.versions = make(map[string]string)
	}
	if _, ok := d.versions[name]; !ok {
		d.names = append(d.names, name)
	}
	d.versions[name] = version
}

// Get returns the version recorded for name.
func (d *Dependencies) Get(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.versions[name]
	return v, ok
}

// Len returns the number of dependencies.
func (d *Dependencies) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// Names returns dependency names in insertion order.
func (d *Dependencies) Names() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.names...)
}

// All iterates name, version pairs in insertion order.
func (d *Dependencies) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if d == nil {
			return
		}
		for _, n := range d.names {
			if !yield(n, d.versions[n]) {
				return
			}
		}
	}
}

// Merge copies every entry of other into d, in other's order. Entries of
// other win on collision.
func (d *Dependencies) Merge(other *Dependencies) {
	for n, v := range other.All() {
		d.Set(n, v)
	}
}

// Map returns an unordered copy.
func (d *Dependencies) Map() map[string]string {
	if d == nil {
		return map[string]string{}
	}
	return maps.Clone(d.versions)
}
