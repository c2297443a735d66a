package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/repodeps/pkg/errors"
	"github.com/matzehuels/repodeps/pkg/observability"
)

// fakeGitHub serves one user with one repository holding a package.json.
type fakeGitHub struct {
	api, raw *httptest.Server
	auth     []string
}

func newFakeGitHub(t *testing.T) *fakeGitHub {
	t.Helper()
	f := &fakeGitHub{}

	api := chi.NewRouter()
	api.Get("/users/{user}/repos", func(w http.ResponseWriter, r *http.Request) {
		f.auth = append(f.auth, r.Header.Get("Authorization"))
		if chi.URLParam(r, "user") != "octocat" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode([]map[string]any{{"name": "web"}})
	})
	api.Get("/repos/octocat/web", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"name": "web", "default_branch": "trunk"})
	})
	api.Get("/repos/octocat/web/git/trees/trunk", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"tree": []map[string]any{
			{"path": "package.json", "type": "blob"},
			{"path": "node_modules/left-pad/package.json", "type": "blob"},
		}})
	})

	raw := chi.NewRouter()
	raw.Get("/octocat/web/trunk/*", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dependencies":{"left-pad":"1.3.0"}}`))
	})

	f.api = httptest.NewServer(api)
	f.raw = httptest.NewServer(raw)
	t.Cleanup(func() {
		f.api.Close()
		f.raw.Close()
	})
	return f
}

func (f *fakeGitHub) flags() []string {
	return []string{"--api-url", f.api.URL, "--raw-url", f.raw.URL}
}

// execute runs the root command with args and returns report and log output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(tokenEnv, "")
	t.Cleanup(observability.Reset)

	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	c.Out = &out

	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestScanReport(t *testing.T) {
	f := newFakeGitHub(t)

	out, logs, err := execute(t, append([]string{"octocat"}, f.flags()...)...)
	if err != nil {
		t.Fatalf("execute() error: %v\n%s", err, logs)
	}

	want := strings.Join([]string{
		"",
		"Analyzing repository: web",
		"Detected language: JavaScript",
		"Config file: package.json",
		"Dependencies found:",
		"  - left-pad: 1.3.0",
		"",
	}, "\n")
	if out != want {
		t.Errorf("report =\n%q\nwant\n%q", out, want)
	}
	if !strings.Contains(logs, "Scanned 1 repositories, 1 manifests, 1 dependencies") {
		t.Errorf("logs missing summary:\n%s", logs)
	}
}

func TestScanUserFlag(t *testing.T) {
	f := newFakeGitHub(t)

	out, _, err := execute(t, append([]string{"--user", "octocat"}, f.flags()...)...)
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !strings.Contains(out, "Analyzing repository: web") {
		t.Errorf("report = %q", out)
	}
}

func TestScanUnknownUserSucceedsWithEmptyReport(t *testing.T) {
	f := newFakeGitHub(t)

	out, logs, err := execute(t, append([]string{"ghost"}, f.flags()...)...)
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if out != "" {
		t.Errorf("report = %q, want empty", out)
	}
	if !strings.Contains(logs, "no repositories found") {
		t.Errorf("logs = %s, want warning", logs)
	}
}

func TestScanRequiresUser(t *testing.T) {
	_, _, err := execute(t)
	if !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
		t.Errorf("execute() error = %v, want INVALID_INPUT", err)
	}
}

func TestScanRejectsBadURL(t *testing.T) {
	_, _, err := execute(t, "octocat", "--api-url", "ftp://example.com")
	if !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
		t.Errorf("execute() error = %v, want INVALID_INPUT", err)
	}
}

func TestScanToken(t *testing.T) {
	f := newFakeGitHub(t)

	if _, _, err := execute(t, append([]string{"octocat", "--token", "s3cret"}, f.flags()...)...); err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if len(f.auth) != 1 || f.auth[0] != "Bearer s3cret" {
		t.Errorf("Authorization = %q, want [Bearer s3cret]", f.auth)
	}
}

func TestScanUsesConfigFile(t *testing.T) {
	f := newFakeGitHub(t)
	path := filepath.Join(t.TempDir(), "repodeps.yaml")
	content := "user: octocat\napi_url: " + f.api.URL + "\nraw_url: " + f.raw.URL + "\n" +
		"languages:\n  - name: Node\n    manifests: [package.json]\nexclude: []\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "--config", path)
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !strings.Contains(out, "Detected language: Node") {
		t.Errorf("report = %q, want configured language name", out)
	}
	if !strings.Contains(out, "Config file: node_modules/left-pad/package.json") {
		t.Errorf("report = %q, want node_modules/ included with empty exclusions", out)
	}
}

func TestScanInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repodeps.yaml")
	if err := os.WriteFile(path, []byte("exclude: [a/b]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "octocat", "--config", path)
	if !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
		t.Errorf("execute() error = %v, want INVALID_CONFIG", err)
	}
}

func TestScanVerboseLogsRequests(t *testing.T) {
	f := newFakeGitHub(t)

	_, logs, err := execute(t, append([]string{"octocat", "-v"}, f.flags()...)...)
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	for _, want := range []string{"starting scan", "request", "/users/octocat/repos", "manifest parsed", "run="} {
		if !strings.Contains(logs, want) {
			t.Errorf("verbose logs missing %q:\n%s", want, logs)
		}
	}
}

func TestScanRunnerLogsCarryRunID(t *testing.T) {
	f := newFakeGitHub(t)

	_, logs, err := execute(t, append([]string{"octocat", "-v"}, f.flags()...)...)
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	var found bool
	for _, line := range strings.Split(logs, "\n") {
		if strings.Contains(line, "detected manifests") {
			found = true
			if !strings.Contains(line, "run=") {
				t.Errorf("runner log line has no run id: %q", line)
			}
		}
	}
	if !found {
		t.Errorf("no runner log line in:\n%s", logs)
	}
}

func TestManifestsCommand(t *testing.T) {
	out, _, err := execute(t, "manifests")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	for _, want := range []string{"Python", "requirements.txt, pyproject.toml", "composer.json", "node_modules"} {
		if !strings.Contains(out, want) {
			t.Errorf("manifests output missing %q:\n%s", want, out)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !strings.Contains(out, "repodeps") {
		t.Error("completion script should mention the command name")
	}
}

func TestCompletionHints(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	exts := root.PersistentFlags().Lookup("config").Annotations[cobra.BashCompFilenameExt]
	if strings.Join(exts, ",") != "yaml,yml" {
		t.Errorf("--config completion extensions = %v, want [yaml yml]", exts)
	}

	if root.ValidArgsFunction == nil {
		t.Fatal("root command has no argument completion")
	}
	if _, directive := root.ValidArgsFunction(root, nil, ""); directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("user argument directive = %v, want NoFileComp", directive)
	}

	for _, cmd := range root.Commands() {
		if cmd.Name() == "completion" && !strings.Contains(cmd.Long, "--config") {
			t.Error("completion help should describe --config completion")
		}
	}
}

func TestReportStylesPlainForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	styles := reportStyles(&buf)
	if styles.Repository != nil || styles.Label != nil {
		t.Error("reportStyles() should be plain for a buffer")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Errorf("firstNonEmpty() = %q, want b", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("firstNonEmpty() = %q, want empty", got)
	}
}
