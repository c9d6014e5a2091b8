// Package diagfmt renders final diagnostic lists for the CLI driver.
package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"lintbridge/internal/diag"
)

// Text writes one line per diagnostic:
//
//	path:line:col: code: message (tool)
//
// Zero line/column components are omitted, which is how configuration
// diagnostics print as just their config file path.
func Text(w io.Writer, ds []diag.Diagnostic, colorize bool) {
	locColor := color.New(color.Bold)
	codeColor := color.New(color.FgYellow)
	toolColor := color.New(color.FgCyan)
	if !colorize {
		locColor.DisableColor()
		codeColor.DisableColor()
		toolColor.DisableColor()
	}

	for _, d := range ds {
		fmt.Fprintf(w, "%s: %s: %s (%s)\n",
			locColor.Sprint(formatLocation(d.Loc)),
			codeColor.Sprint(d.Code),
			d.Message,
			toolColor.Sprint(d.Tool),
		)
	}
}

func formatLocation(l diag.Location) string {
	out := l.Path
	if l.Line > 0 {
		out += ":" + strconv.Itoa(l.Line)
		if l.Column > 0 {
			out += ":" + strconv.Itoa(l.Column)
		}
	}
	return out
}
