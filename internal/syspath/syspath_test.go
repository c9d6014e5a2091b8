package syspath

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestEnterPrependsAbsoluteExtras(t *testing.T) {
	installed := filepath.Join(t.TempDir(), "installed")
	target := t.TempDir()

	list := NewList(installed)
	g, err := Enter(list, []string{target}, false)
	if err != nil {
		t.Fatalf("Enter: %v", err)
	}
	defer g.Restore()

	got := list.Entries()
	if len(got) != 2 {
		t.Fatalf("Entries() = %v, want 2 entries", got)
	}
	if got[0] != target {
		t.Errorf("Entries()[0] = %q, want target prepended, not appended", got[0])
	}
	if got[1] != installed {
		t.Errorf("Entries()[1] = %q, want original entry preserved", got[1])
	}
}

func TestEnterDeduplicates(t *testing.T) {
	dir := t.TempDir()
	list := NewList(dir)

	g, err := Enter(list, []string{dir, dir}, false)
	if err != nil {
		t.Fatalf("Enter: %v", err)
	}
	defer g.Restore()

	if got := list.Entries(); len(got) != 1 {
		t.Errorf("Entries() = %v, want existing entry not duplicated", got)
	}
}

func TestEnterUseDefaultLeavesListAlone(t *testing.T) {
	list := NewList("/opt/modules")
	g, err := Enter(list, []string{t.TempDir()}, true)
	if err != nil {
		t.Fatalf("Enter: %v", err)
	}
	defer g.Restore()

	if got := list.Entries(); !reflect.DeepEqual(got, []string{"/opt/modules"}) {
		t.Errorf("Entries() = %v, want untouched", got)
	}
}

func TestRestoreExactAndIdempotent(t *testing.T) {
	before := []string{"/opt/a", "/opt/b"}
	list := NewList(before...)

	g, err := Enter(list, []string{t.TempDir()}, false)
	if err != nil {
		t.Fatalf("Enter: %v", err)
	}
	if reflect.DeepEqual(list.Entries(), before) {
		t.Fatal("Enter did not mutate the list, test is vacuous")
	}

	g.Restore()
	if got := list.Entries(); !reflect.DeepEqual(got, before) {
		t.Fatalf("after Restore Entries() = %v, want %v", got, before)
	}

	// A second restore must not clobber later mutations.
	g2, err := Enter(list, []string{t.TempDir()}, false)
	if err != nil {
		t.Fatalf("Enter: %v", err)
	}
	g.Restore()
	if got := list.Entries(); reflect.DeepEqual(got, before) {
		t.Error("stale Restore undid a newer guard's mutation")
	}
	g2.Restore()
	if got := list.Entries(); !reflect.DeepEqual(got, before) {
		t.Errorf("after final Restore Entries() = %v, want %v", got, before)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SGLINTPATH", "/opt/a"+string(filepath.ListSeparator)+string(filepath.ListSeparator)+"/opt/b")
	list := FromEnv("SGLINTPATH")
	if got := list.Entries(); !reflect.DeepEqual(got, []string{"/opt/a", "/opt/b"}) {
		t.Errorf("Entries() = %v, want empty segments dropped", got)
	}
}
