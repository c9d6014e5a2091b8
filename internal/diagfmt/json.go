package diagfmt

import (
	"encoding/json"
	"io"

	"lintbridge/internal/diag"
)

type locationJSON struct {
	Path     string `json:"path"`
	Module   string `json:"module,omitempty"`
	Function string `json:"function,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

type diagnosticJSON struct {
	Tool     string       `json:"tool"`
	Code     string       `json:"code"`
	Location locationJSON `json:"location"`
	Message  string       `json:"message"`
}

type reportJSON struct {
	ConfiguredBy string           `json:"configured_by,omitempty"`
	Diagnostics  []diagnosticJSON `json:"diagnostics"`
}

// JSON writes the whole run result as one indented JSON document.
func JSON(w io.Writer, configuredBy string, ds []diag.Diagnostic) error {
	report := reportJSON{
		ConfiguredBy: configuredBy,
		Diagnostics:  make([]diagnosticJSON, 0, len(ds)),
	}
	for _, d := range ds {
		report.Diagnostics = append(report.Diagnostics, diagnosticJSON{
			Tool: d.Tool,
			Code: d.Code,
			Location: locationJSON{
				Path:     d.Loc.Path,
				Module:   d.Loc.Module,
				Function: d.Loc.Function,
				Line:     d.Loc.Line,
				Column:   d.Loc.Column,
			},
			Message: d.Message,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
