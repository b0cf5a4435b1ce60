package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dbgen.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	m, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Global.Flag != "debug" {
		t.Fatalf("expected default global flag %q, got %q", "debug", m.Global.Flag)
	}
	if len(m.Scopes) != 0 {
		t.Fatalf("expected no scopes, got %d", len(m.Scopes))
	}
}

func TestResolveGlobalAndNamedFlags(t *testing.T) {
	path := writeManifest(t, `
[global]
flag = "appdebug"

[flags]
verbose = "app_verbose"

[[scope]]
package = "internal/worker"

[[scope]]
package = "internal/store"
flag = "verbose"
func = "tracef"
const = "traceEnabled"
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scopes, err := m.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scopes) != 2 {
		t.Fatalf("expected 2 scopes, got %d", len(scopes))
	}

	worker := scopes[0]
	if worker.Tag != "appdebug" {
		t.Fatalf("expected worker to consult the global flag, got %q", worker.Tag)
	}
	if worker.Package != "worker" || worker.Func != "debugf" || worker.Const != "debugEnabled" {
		t.Fatalf("unexpected worker defaults: %+v", worker)
	}

	store := scopes[1]
	if store.Tag != "app_verbose" {
		t.Fatalf("expected store to resolve the verbose flag, got %q", store.Tag)
	}
	if store.Func != "tracef" || store.Const != "traceEnabled" {
		t.Fatalf("unexpected store overrides: %+v", store)
	}
}

func TestResolveScopeIsolation(t *testing.T) {
	path := writeManifest(t, `
[flags]
a = "scope_a"
b = "scope_b"

[[scope]]
package = "internal/alpha"
flag = "a"

[[scope]]
package = "internal/beta"
flag = "b"
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scopes, err := m.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scopes[0].Tag == scopes[1].Tag {
		t.Fatalf("scopes must gate on independent tags, both got %q", scopes[0].Tag)
	}
}

func TestResolveUndeclaredFlagFailsFast(t *testing.T) {
	path := writeManifest(t, `
[[scope]]
package = "internal/worker"
flag = "nosuch"
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = m.Resolve()
	if err == nil {
		t.Fatalf("expected an error for an undeclared flag selector")
	}
	if !strings.Contains(err.Error(), "nosuch") {
		t.Fatalf("error must name the missing flag, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "internal/worker") {
		t.Fatalf("error must name the scope, got %q", err.Error())
	}
}

func TestResolveRejectsDuplicateScope(t *testing.T) {
	path := writeManifest(t, `
[[scope]]
package = "internal/worker"

[[scope]]
package = "internal/worker"
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Resolve(); err == nil {
		t.Fatalf("expected an error for a duplicate scope")
	}
}

func TestResolveRejectsInvalidIdentifiers(t *testing.T) {
	path := writeManifest(t, `
[[scope]]
package = "internal/worker"
func = "debug-f"
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Resolve(); err == nil {
		t.Fatalf("expected an error for an invalid function identifier")
	}
}

func TestResolveRejectsInvalidGlobalTag(t *testing.T) {
	m := Default()
	m.Global.Flag = "no spaces"
	m.Scopes = []Scope{{Package: "internal/worker"}}
	if _, err := m.Resolve(); err == nil {
		t.Fatalf("expected an error for an invalid build tag")
	}
}

func TestPackageNameSanitized(t *testing.T) {
	m := Default()
	m.Scopes = []Scope{{Package: "internal/my-worker"}}
	scopes, err := m.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scopes[0].Package != "my_worker" {
		t.Fatalf("expected sanitized package name %q, got %q", "my_worker", scopes[0].Package)
	}
}
