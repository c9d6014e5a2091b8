package finder

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"
)

// writeTree lays out a fixture project:
//
//	app/pkg.toml
//	app/views.sg
//	app/admin/pkg.toml
//	app/admin/users.sg
//	scripts/run.sg
//	.hidden/skipped.sg
func writeTree(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	files := map[string]string{
		"app/pkg.toml":       "[package]\nname = \"app\"\n",
		"app/views.sg":       "",
		"app/admin/pkg.toml": "[package]\nname = \"admin\"\n",
		"app/admin/users.sg": "",
		"scripts/run.sg":     "",
		".hidden/skipped.sg": "",
	}
	for rel, content := range files {
		path := filepath.Join(base, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return base
}

func TestWalk(t *testing.T) {
	base := writeTree(t)
	tree, err := Walk(base, ".sg")
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	wantPackages := [][]string{{"app"}, {"app", "admin"}}
	if !reflect.DeepEqual(tree.Packages(), wantPackages) {
		t.Errorf("Packages() = %v, want %v", tree.Packages(), wantPackages)
	}

	wantModules := [][]string{{"scripts", "run.sg"}}
	if !reflect.DeepEqual(tree.Modules(), wantModules) {
		t.Errorf("Modules() = %v, want %v", tree.Modules(), wantModules)
	}
}

func TestWalkSkipsHiddenDirs(t *testing.T) {
	base := writeTree(t)
	tree, err := Walk(base, ".sg")
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	for _, mod := range tree.Modules() {
		if slices.Contains(mod, ".hidden") {
			t.Errorf("hidden dir leaked into modules: %v", mod)
		}
	}
}

func TestAbs(t *testing.T) {
	base := writeTree(t)
	tree, err := Walk(base, ".sg")
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	want := filepath.Join(base, "app", "admin")
	if got := tree.Abs("app/admin"); got != want {
		t.Errorf("Abs() = %q, want %q", got, want)
	}
}

func TestSearchPath(t *testing.T) {
	base := writeTree(t)
	tree, err := Walk(base, ".sg")
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	got := tree.SearchPath()

	if !slices.Contains(got, base) {
		t.Errorf("SearchPath() = %v, missing scan base", got)
	}
	if !slices.Contains(got, filepath.Join(base, "scripts")) {
		t.Errorf("SearchPath() = %v, missing module dir", got)
	}
	if !slices.IsSorted(got) {
		t.Errorf("SearchPath() = %v, want sorted", got)
	}
	seen := map[string]bool{}
	for _, dir := range got {
		if seen[dir] {
			t.Errorf("SearchPath() contains duplicate %q", dir)
		}
		seen[dir] = true
	}
}
