// Package scanroot computes the minimal set of scan roots for an engine
// run. Feeding the engine a package together with one of its subpackages
// would scan the nested files twice and duplicate every diagnostic, so
// the reduction keeps only roots that have no retained ancestor.
package scanroot

import (
	"path"
	"sort"
)

// Root is one scan entry point: the path segments of either a package
// directory or a standalone module file, relative to the scan base.
type Root []string

// String joins the segments with forward slashes.
func (r Root) String() string {
	return path.Join(r...)
}

// Reduce selects the minimal covering set of scan roots from package
// directories and standalone module files, both given as path segments.
// No returned root is an ancestor of another. Packages are considered
// shallowest first, so a retained parent shadows every descendant; a
// module under a retained package is dropped as already covered.
func Reduce(packages, modules [][]string) []Root {
	retained := make(map[string]struct{})
	var roots []Root

	sorted := make([][]string, len(packages))
	copy(sorted, packages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) < len(sorted[j])
	})

	for _, pkg := range sorted {
		if len(pkg) == 0 {
			continue
		}
		if hasRetainedPrefix(retained, pkg, len(pkg)-1) {
			continue
		}
		key := path.Join(pkg...)
		if _, dup := retained[key]; dup {
			continue
		}
		retained[key] = struct{}{}
		roots = append(roots, Root(pkg))
	}

	for _, mod := range modules {
		if len(mod) == 0 {
			continue
		}
		if hasRetainedPrefix(retained, mod, len(mod)-1) {
			continue
		}
		key := path.Join(mod...)
		if _, dup := retained[key]; dup {
			continue
		}
		retained[key] = struct{}{}
		roots = append(roots, Root(mod))
	}

	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].String() < roots[j].String()
	})
	return roots
}

// hasRetainedPrefix reports whether any strict ancestor of segs, up to
// depth segments long, is already a retained root.
func hasRetainedPrefix(retained map[string]struct{}, segs []string, depth int) bool {
	for i := 1; i <= depth; i++ {
		if _, ok := retained[path.Join(segs[:i]...)]; ok {
			return true
		}
	}
	return false
}
