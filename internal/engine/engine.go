// Package engine declares the boundary to the underlying static-analysis
// engine. The adapter only ever talks to these interfaces; rule checkers,
// scoring and file crawling stay on the engine's side of the line.
package engine

import (
	"context"
	"errors"
	"fmt"

	"lintbridge/internal/diag"
	"lintbridge/internal/syspath"
)

// ErrUnknownCode is returned by Enable and Disable when the engine does
// not know the diagnostic code, for example after the engine retired it.
var ErrUnknownCode = errors.New("unknown diagnostic code")

// PluginError reports a failed plugin load by module name.
type PluginError struct {
	Module string
	Err    error
}

func (e *PluginError) Error() string {
	return fmt.Sprintf("load plugin %s: %v", e.Module, e.Err)
}

func (e *PluginError) Unwrap() error {
	return e.Err
}

// Option is one entry of a checker's declared option schema.
type Option struct {
	Name    string
	Default any
}

// Checker is the per-checker capability surface: an enumerable option
// schema plus a typed setter. Every checker adapter implements it, so the
// merger never probes for capabilities at runtime.
type Checker interface {
	Name() string
	Options() []Option
	SetOption(name string, value any) error
}

// Sink receives diagnostics as the engine produces them, replacing the
// engine's normal reporter.
type Sink interface {
	Record(d diag.Diagnostic)
}

// Engine is the full collaborator contract the adapter configures and
// drives. One Engine value belongs to exactly one run.
type Engine interface {
	// Name is the engine's tool name, used for profile sections, external
	// config lookup and auto-plugin naming.
	Name() string

	// LoadArgs performs the engine's command-line-style configuration
	// load for the given target paths and returns the resolved argument
	// list to later pass to Check.
	LoadArgs(paths []string) ([]string, error)

	// LoadDefaultPlugins loads the engine's own default plugin set.
	LoadDefaultPlugins()

	// LoadPlugin loads one plugin by module name. Failures come back as
	// *PluginError.
	LoadPlugin(module string) error

	// Enable and Disable toggle a diagnostic code. Both return
	// ErrUnknownCode for codes this engine version does not know.
	Enable(code string) error
	Disable(code string) error

	// Checkers enumerates the engine's checkers for option overrides.
	Checkers() []Checker

	// SetSink replaces the engine's reporter for the run.
	SetSink(s Sink)

	// Jobs and SetJobs expose the engine's worker count. Zero means the
	// engine has no explicit setting yet.
	Jobs() int
	SetJobs(n int)

	// SearchPath is the process-wide module search path the engine
	// resolves imports against. The adapter borrows it for one run.
	SearchPath() *syspath.List

	// FindConfig is the engine's own locator for its native config file.
	FindConfig() (path string, ok bool)

	// LoadConfigFile loads a native config file. pluginsLoaded reports
	// whether the load already pulled in the file's declared plugins;
	// when false the caller loads ConfigPlugins itself.
	LoadConfigFile(path string) (pluginsLoaded bool, err error)

	// ConfigPlugins lists the plugin modules declared by the most
	// recently loaded config file.
	ConfigPlugins() []string

	// Check runs the analysis for the resolved arguments, delivering
	// findings to the sink. Errors are engine crashes, not findings.
	Check(ctx context.Context, args []string) error
}
