package diag

import (
	"cmp"
	"sort"
)

// ToolConfig is the sentinel tool name carried by diagnostics that report
// configuration-layer problems rather than analysis findings.
const ToolConfig = "config"

// CodeConfigProblem is the code shared by all configuration diagnostics.
const CodeConfigProblem = "config-problem"

// Location identifies where a diagnostic points. Line and Column are zero
// when unknown (for example on configuration diagnostics, where Path names
// the offending config file).
type Location struct {
	Path     string
	Module   string
	Function string
	Line     int
	Column   int
}

// Compare defines the total order over locations: path, then line, then
// column. Module and Function do not participate.
func (l Location) Compare(o Location) int {
	if c := cmp.Compare(l.Path, o.Path); c != 0 {
		return c
	}
	if c := cmp.Compare(l.Line, o.Line); c != 0 {
		return c
	}
	return cmp.Compare(l.Column, o.Column)
}

// Diagnostic is one reported finding. Values are never mutated after
// creation; the engine and the combiner are the only producers.
type Diagnostic struct {
	Tool    string
	Code    string
	Loc     Location
	Message string
}

// Compare defines the total order over diagnostics: location, then code,
// then tool, then message. Used for the deterministic final ordering.
func (d Diagnostic) Compare(o Diagnostic) int {
	if c := d.Loc.Compare(o.Loc); c != 0 {
		return c
	}
	if c := cmp.Compare(d.Code, o.Code); c != 0 {
		return c
	}
	if c := cmp.Compare(d.Tool, o.Tool); c != 0 {
		return c
	}
	return cmp.Compare(d.Message, o.Message)
}

// Sort orders diagnostics in place by the total order above.
func Sort(ds []Diagnostic) {
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].Compare(ds[j]) < 0
	})
}

// ConfigProblem builds a configuration diagnostic attributed to the given
// config file path.
func ConfigProblem(configPath, message string) Diagnostic {
	return Diagnostic{
		Tool:    ToolConfig,
		Code:    CodeConfigProblem,
		Loc:     Location{Path: configPath},
		Message: message,
	}
}
