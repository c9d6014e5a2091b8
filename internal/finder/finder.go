// Package finder discovers packages and standalone modules under a scan
// base. The adapter only depends on the FileFinder interface; the walker
// here is the stock implementation the CLI driver uses.
package finder

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PackageManifest marks a directory as a package root.
const PackageManifest = "pkg.toml"

// FileFinder enumerates a discovered source tree. Paths come back as
// slash-separated segments relative to the scan base.
type FileFinder interface {
	// Packages lists package directories.
	Packages() [][]string

	// Modules lists standalone module files living outside any package.
	Modules() [][]string

	// Abs materializes a relative segment path against the scan base.
	Abs(rel string) string

	// SearchPath lists the absolute directories the engine's module
	// search path needs so discovered targets resolve by name.
	SearchPath() []string
}

// Tree is a FileFinder backed by one walked directory.
type Tree struct {
	base     string
	packages [][]string
	modules  [][]string
}

var _ FileFinder = (*Tree)(nil)

// Walk discovers packages and standalone modules under base. A directory
// carrying a pkg.toml manifest is a package; files with the given source
// extension outside package directories are standalone modules. Hidden
// directories are skipped. Results are sorted for determinism.
func Walk(base, ext string) (*Tree, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, err
	}
	t := &Tree{base: abs}
	isPackage := make(map[string]bool)

	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if rel != "." && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if _, err := os.Stat(filepath.Join(path, PackageManifest)); err == nil {
				isPackage[rel] = true
				if rel != "." {
					t.packages = append(t.packages, splitRel(rel))
				}
			}
			return nil
		}
		if ext == "" || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		if !isPackage[filepath.Dir(rel)] {
			t.modules = append(t.modules, splitRel(rel))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(t.packages, func(i, j int) bool {
		return filepath.Join(t.packages[i]...) < filepath.Join(t.packages[j]...)
	})
	sort.Slice(t.modules, func(i, j int) bool {
		return filepath.Join(t.modules[i]...) < filepath.Join(t.modules[j]...)
	})
	return t, nil
}

func splitRel(rel string) []string {
	return strings.Split(filepath.ToSlash(rel), "/")
}

// Base returns the absolute scan base.
func (t *Tree) Base() string {
	return t.base
}

func (t *Tree) Packages() [][]string {
	return t.packages
}

func (t *Tree) Modules() [][]string {
	return t.modules
}

func (t *Tree) Abs(rel string) string {
	return filepath.Join(t.base, filepath.FromSlash(rel))
}

// SearchPath returns the scan base plus the parent directory of every
// package and the directory of every standalone module, so the
// engine resolves discovered targets by bare name.
func (t *Tree) SearchPath() []string {
	seen := map[string]bool{t.base: true}
	out := []string{t.base}

	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			out = append(out, dir)
		}
	}
	for _, pkg := range t.packages {
		add(filepath.Join(t.base, filepath.Join(pkg[:len(pkg)-1]...)))
	}
	for _, mod := range t.modules {
		add(filepath.Join(t.base, filepath.Join(mod[:len(mod)-1]...)))
	}
	sort.Strings(out)
	return out
}
