// Package enginetest provides a scripted Engine implementation for
// exercising the merger and the adapter without a real analysis engine.
package enginetest

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"lintbridge/internal/diag"
	"lintbridge/internal/engine"
	"lintbridge/internal/syspath"
)

// Checker is a scripted checker with a fixed option schema.
type Checker struct {
	CheckerName string
	Schema      []engine.Option
	SetErr      error

	// Set records every successful SetOption call.
	Set map[string]any
}

func (c *Checker) Name() string { return c.CheckerName }

func (c *Checker) Options() []engine.Option { return c.Schema }

func (c *Checker) SetOption(name string, value any) error {
	for _, opt := range c.Schema {
		if opt.Name != name {
			continue
		}
		if c.SetErr != nil {
			return c.SetErr
		}
		if c.Set == nil {
			c.Set = make(map[string]any)
		}
		c.Set[name] = value
		return nil
	}
	return fmt.Errorf("checker %s has no option %q", c.CheckerName, name)
}

// Fake is a scripted engine. Zero value is usable; script fields steer
// individual calls and the exported record fields capture what happened.
type Fake struct {
	ToolName string

	// KnownCodes is the set of codes Enable/Disable accept.
	KnownCodes []string

	// PluginErrs maps module names to scripted load failures. Any module
	// not present loads fine.
	PluginErrs map[string]error

	CheckersList []*Checker

	// ConfigPath is what FindConfig returns when non-empty.
	ConfigPath string

	// ConfigLoadsPlugins is LoadConfigFile's pluginsLoaded result.
	ConfigLoadsPlugins bool
	ConfigLoadErr      error
	DeclaredPlugins    []string

	// ConfigApply, when set, mutates the engine the way a successfully
	// loaded config file would.
	ConfigApply func(f *Fake)

	// CheckFunc, when set, runs in place of the default no-op Check.
	CheckFunc func(ctx context.Context, args []string, sink engine.Sink) error

	// Records.
	LoadedArgs    []string
	DefaultLoaded bool
	Loaded        []string
	Enabled       []string
	Disabled      []string
	LoadedConfig  string
	CheckCalls    int

	sink engine.Sink
	jobs int
	path *syspath.List
}

var _ engine.Engine = (*Fake)(nil)

func (f *Fake) Name() string {
	if f.ToolName == "" {
		return "fake"
	}
	return f.ToolName
}

func (f *Fake) LoadArgs(paths []string) ([]string, error) {
	f.LoadedArgs = slices.Clone(paths)
	return f.LoadedArgs, nil
}

func (f *Fake) LoadDefaultPlugins() {
	f.DefaultLoaded = true
}

func (f *Fake) LoadPlugin(module string) error {
	if err, ok := f.PluginErrs[module]; ok {
		return &engine.PluginError{Module: module, Err: err}
	}
	f.Loaded = append(f.Loaded, module)
	return nil
}

func (f *Fake) Enable(code string) error {
	if !slices.Contains(f.KnownCodes, code) {
		return fmt.Errorf("%q: %w", code, engine.ErrUnknownCode)
	}
	f.Disabled = slices.DeleteFunc(f.Disabled, func(c string) bool { return c == code })
	f.Enabled = append(f.Enabled, code)
	return nil
}

func (f *Fake) Disable(code string) error {
	if !slices.Contains(f.KnownCodes, code) {
		return fmt.Errorf("%q: %w", code, engine.ErrUnknownCode)
	}
	f.Enabled = slices.DeleteFunc(f.Enabled, func(c string) bool { return c == code })
	f.Disabled = append(f.Disabled, code)
	return nil
}

// CodeEnabled reports the last Enable/Disable state for code.
func (f *Fake) CodeEnabled(code string) bool {
	return slices.Contains(f.Enabled, code)
}

func (f *Fake) Checkers() []engine.Checker {
	out := make([]engine.Checker, 0, len(f.CheckersList))
	for _, c := range f.CheckersList {
		out = append(out, c)
	}
	return out
}

func (f *Fake) SetSink(s engine.Sink) { f.sink = s }

// Sink returns the sink registered by the adapter.
func (f *Fake) Sink() engine.Sink { return f.sink }

func (f *Fake) Jobs() int     { return f.jobs }
func (f *Fake) SetJobs(n int) { f.jobs = n }

func (f *Fake) SearchPath() *syspath.List {
	if f.path == nil {
		f.path = syspath.NewList()
	}
	return f.path
}

// SetSearchPath seeds the engine's search path for a test.
func (f *Fake) SetSearchPath(l *syspath.List) { f.path = l }

func (f *Fake) FindConfig() (string, bool) {
	return f.ConfigPath, f.ConfigPath != ""
}

func (f *Fake) LoadConfigFile(path string) (bool, error) {
	f.LoadedConfig = path
	if f.ConfigLoadErr != nil {
		return false, f.ConfigLoadErr
	}
	if f.ConfigApply != nil {
		f.ConfigApply(f)
	}
	return f.ConfigLoadsPlugins, nil
}

func (f *Fake) ConfigPlugins() []string { return f.DeclaredPlugins }

func (f *Fake) Check(ctx context.Context, args []string) error {
	f.CheckCalls++
	if f.CheckFunc != nil {
		return f.CheckFunc(ctx, args, f.sink)
	}
	return nil
}

// Emit delivers one diagnostic through the registered sink.
func (f *Fake) Emit(d diag.Diagnostic) error {
	if f.sink == nil {
		return errors.New("no sink registered")
	}
	f.sink.Record(d)
	return nil
}
