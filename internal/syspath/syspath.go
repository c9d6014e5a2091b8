// Package syspath models the engine's process-wide module search path as
// an explicit resource. The adapter borrows the list for the duration of
// one run through a Guard and hands it back unchanged; callers running
// several adapters in one process must serialize around the list, no
// locking happens here.
package syspath

import (
	"os"
	"path/filepath"
	"slices"
)

// List is the shared search-path resource. The engine consults it when
// resolving imports; at most one Guard may be active per List at a time.
type List struct {
	entries []string
}

// NewList builds a list from the given entries.
func NewList(entries ...string) *List {
	return &List{entries: slices.Clone(entries)}
}

// FromEnv builds a list by splitting the named environment variable on the
// platform list separator. Empty segments are dropped.
func FromEnv(key string) *List {
	var entries []string
	for _, e := range filepath.SplitList(os.Getenv(key)) {
		if e != "" {
			entries = append(entries, e)
		}
	}
	return &List{entries: entries}
}

// Entries returns a copy of the current entries.
func (l *List) Entries() []string {
	return slices.Clone(l.entries)
}

// Contains reports whether entry is currently on the list.
func (l *List) Contains(entry string) bool {
	return slices.Contains(l.entries, entry)
}

func (l *List) set(entries []string) {
	l.entries = entries
}

// Guard is a scoped mutation of a List. Enter captures the current
// entries; Restore puts them back exactly, on every exit path.
type Guard struct {
	list     *List
	saved    []string
	restored bool
}

// Enter captures list's current entries and, unless useDefault is set,
// prepends extra as absolute paths. Targets under scrutiny must resolve
// before any identically-named module installed elsewhere, so the extras
// go in front; entries already present are not duplicated.
func Enter(list *List, extra []string, useDefault bool) (*Guard, error) {
	g := &Guard{list: list, saved: list.Entries()}
	if useDefault {
		return g, nil
	}

	prepend := make([]string, 0, len(extra))
	for _, p := range extra {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		if list.Contains(abs) || slices.Contains(prepend, abs) {
			continue
		}
		prepend = append(prepend, abs)
	}
	list.set(append(prepend, list.entries...))
	return g, nil
}

// Restore puts the captured entries back. Safe to call more than once;
// only the first call mutates the list.
func (g *Guard) Restore() {
	if g == nil || g.restored {
		return
	}
	g.restored = true
	g.list.set(g.saved)
}
