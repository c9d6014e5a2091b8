package diag

import (
	"regexp"
	"strings"
)

// CodeUnusedWildcardImport is the one combinable code: a wildcard import
// produces one diagnostic per unused name, all pointing at the same line.
const CodeUnusedWildcardImport = "unused-wildcard-import"

// unusedWildcardRE is a narrow extraction contract against the engine's
// message wording. If the engine rewords the message, only this pattern
// needs updating; tests pin the exact form.
var unusedWildcardRE = regexp.MustCompile(`^Unused import(?:\(s\))? (.+) from wildcard import`)

// extractWildcardName recovers the imported symbol name from a single
// unused-wildcard-import message. ok is false when the message does not
// match the pinned wording, in which case the diagnostic must be passed
// through untouched.
func extractWildcardName(message string) (name string, ok bool) {
	m := unusedWildcardRE.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	return m[1], true
}

type mergeKey struct {
	code string
	loc  Location
}

// Combine merges duplicate unused-wildcard-import diagnostics that share a
// location into one synthesized diagnostic listing every extracted name in
// encounter order. All other diagnostics pass through unchanged. The result
// is sorted and Combine is idempotent: a synthesized message never matches
// the extraction pattern again.
func Combine(ds []Diagnostic) []Diagnostic {
	out := make([]Diagnostic, 0, len(ds))
	names := make(map[mergeKey][]string)
	first := make(map[mergeKey]Diagnostic)
	var order []mergeKey

	for _, d := range ds {
		if d.Code != CodeUnusedWildcardImport {
			out = append(out, d)
			continue
		}
		name, ok := extractWildcardName(d.Message)
		if !ok {
			out = append(out, d)
			continue
		}
		key := mergeKey{code: d.Code, loc: d.Loc}
		if _, seen := first[key]; !seen {
			first[key] = d
			order = append(order, key)
		}
		names[key] = append(names[key], name)
	}

	for _, key := range order {
		d := first[key]
		out = append(out, Diagnostic{
			Tool:    d.Tool,
			Code:    d.Code,
			Loc:     d.Loc,
			Message: "Unused imports from wildcard import: " + strings.Join(names[key], ", "),
		})
	}

	Sort(out)
	return out
}
