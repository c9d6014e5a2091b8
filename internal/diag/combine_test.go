package diag

import (
	"reflect"
	"testing"
)

func wildcardDiag(path string, line int, name string) Diagnostic {
	return Diagnostic{
		Tool:    "sglint",
		Code:    CodeUnusedWildcardImport,
		Loc:     Location{Path: path, Line: line},
		Message: "Unused import(s) " + name + " from wildcard import",
	}
}

func TestExtractWildcardName(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		wantOK  bool
	}{
		{
			name:    "plural form",
			message: "Unused import(s) foo from wildcard import",
			want:    "foo",
			wantOK:  true,
		},
		{
			name:    "singular form",
			message: "Unused import bar from wildcard import",
			want:    "bar",
			wantOK:  true,
		},
		{
			name:    "synthesized message does not match",
			message: "Unused imports from wildcard import: foo, bar",
			wantOK:  false,
		},
		{
			name:    "unrelated wording",
			message: "unused variable x",
			wantOK:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractWildcardName(tt.message)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("extractWildcardName(%q) = (%q, %v), want (%q, %v)",
					tt.message, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCombineMergesSameLocation(t *testing.T) {
	got := Combine([]Diagnostic{
		wildcardDiag("app/views.sg", 1, "foo"),
		wildcardDiag("app/views.sg", 1, "bar"),
	})
	if len(got) != 1 {
		t.Fatalf("Combine() returned %d diagnostics, want 1: %v", len(got), got)
	}
	want := "Unused imports from wildcard import: foo, bar"
	if got[0].Message != want {
		t.Errorf("message = %q, want %q", got[0].Message, want)
	}
	if got[0].Code != CodeUnusedWildcardImport {
		t.Errorf("code = %q, want %q", got[0].Code, CodeUnusedWildcardImport)
	}
	if got[0].Loc != (Location{Path: "app/views.sg", Line: 1}) {
		t.Errorf("location = %+v", got[0].Loc)
	}
}

func TestCombineKeepsDistinctLocationsApart(t *testing.T) {
	got := Combine([]Diagnostic{
		wildcardDiag("a.sg", 1, "foo"),
		wildcardDiag("a.sg", 2, "bar"),
		wildcardDiag("b.sg", 1, "baz"),
	})
	if len(got) != 3 {
		t.Fatalf("Combine() returned %d diagnostics, want 3: %v", len(got), got)
	}
	for _, d := range got {
		if d.Code != CodeUnusedWildcardImport {
			t.Errorf("code = %q", d.Code)
		}
	}
}

func TestCombinePassesThroughOtherCodes(t *testing.T) {
	plain := Diagnostic{
		Tool:    "sglint",
		Code:    "unused-variable",
		Loc:     Location{Path: "a.sg", Line: 3},
		Message: "unused variable x",
	}
	got := Combine([]Diagnostic{plain, wildcardDiag("a.sg", 1, "foo")})
	if len(got) != 2 {
		t.Fatalf("Combine() returned %d diagnostics, want 2", len(got))
	}
	if got[1] != plain {
		t.Errorf("pass-through diagnostic changed: %+v", got[1])
	}
}

func TestCombineIdempotent(t *testing.T) {
	in := []Diagnostic{
		wildcardDiag("a.sg", 1, "foo"),
		wildcardDiag("a.sg", 1, "bar"),
		wildcardDiag("b.sg", 4, "qux"),
		{Tool: "sglint", Code: "line-too-long", Loc: Location{Path: "a.sg", Line: 9}, Message: "line too long"},
	}
	once := Combine(in)
	twice := Combine(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Combine not idempotent:\nonce:  %v\ntwice: %v", once, twice)
	}
}

func TestCombineOutputSorted(t *testing.T) {
	got := Combine([]Diagnostic{
		{Tool: "sglint", Code: "z", Loc: Location{Path: "b.sg", Line: 1}, Message: "m"},
		{Tool: "sglint", Code: "a", Loc: Location{Path: "a.sg", Line: 2}, Message: "m"},
		wildcardDiag("a.sg", 1, "foo"),
	})
	for i := 1; i < len(got); i++ {
		if got[i-1].Compare(got[i]) > 0 {
			t.Fatalf("output not sorted at %d: %v", i, got)
		}
	}
	if got[0].Loc.Path != "a.sg" || got[0].Loc.Line != 1 {
		t.Errorf("got[0] = %+v, want synthesized a.sg:1 first", got[0])
	}
}
