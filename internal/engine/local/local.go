// Package local is the in-process reference engine. It hosts externally
// registered rules, resolves imports against a borrowed search path and
// fans file analysis out over a worker pool. It ships no rules of its
// own; analysis behavior arrives through plugins.
package local

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"lintbridge/internal/diag"
	"lintbridge/internal/engine"
	"lintbridge/internal/syspath"
)

// ToolName is the engine's tool name, used in profile sections, plugin
// naming and produced diagnostics.
const ToolName = "sglint"

// DefaultExt is the source extension the engine scans.
const DefaultExt = ".sg"

// notificationCodes are bookkeeping codes every engine build knows,
// independent of loaded rules.
var notificationCodes = []string{
	"locally-disabled",
	"file-ignored",
	"suppressed-message",
	"deprecated-pragma",
	"similarities",
}

// ErrPluginNotFound reports a LoadPlugin call for a module nothing
// registered under that name.
var ErrPluginNotFound = errors.New("plugin not registered")

// Rule is a checker the engine can host: the declared option surface
// plus the analysis entry point.
type Rule interface {
	engine.Checker

	// Codes lists every diagnostic code the rule can produce.
	Codes() []string

	// Lint analyzes one file and reports findings. Line and column
	// bookkeeping is the rule's job; Tool is filled in by the engine.
	Lint(path string, src []byte, report func(d diag.Diagnostic))
}

// Plugin installs rules or settings on an engine when loaded by module
// name.
type Plugin func(e *Engine) error

var (
	registryMu     sync.Mutex
	registry       = make(map[string]Plugin)
	defaultPlugins []string
)

// RegisterPlugin makes a plugin loadable by module name. Typically called
// from an init function, database/sql driver style.
func RegisterPlugin(name string, p Plugin) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = p
}

// RegisterDefaultPlugin registers a plugin that LoadDefaultPlugins pulls
// in unconditionally.
func RegisterDefaultPlugin(name string, p Plugin) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = p
	defaultPlugins = append(defaultPlugins, name)
}

func lookupPlugin(name string) (Plugin, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	p, ok := registry[name]
	return p, ok
}

// Options configures a fresh engine.
type Options struct {
	// Ext is the source extension to scan, DefaultExt when empty.
	Ext string

	// SearchPath is the process-wide module search path the engine
	// resolves imports against. Seeded from the SGLINTPATH environment
	// variable when nil.
	SearchPath *syspath.List

	// Jobs is the worker count, zero meaning not yet decided.
	Jobs int

	// WorkDir anchors the engine's own config file search, the current
	// directory when empty.
	WorkDir string
}

// Engine is the reference engine. One value serves one run.
type Engine struct {
	ext           string
	rules         []Rule
	known         map[string]struct{}
	disabled      map[string]struct{}
	sink          engine.Sink
	jobs          int
	path          *syspath.List
	configPlugins []string
	workdir       string
}

var _ engine.Engine = (*Engine)(nil)

// New builds an engine with no rules loaded.
func New(opts Options) *Engine {
	ext := opts.Ext
	if ext == "" {
		ext = DefaultExt
	}
	path := opts.SearchPath
	if path == nil {
		path = syspath.FromEnv("SGLINTPATH")
	}
	e := &Engine{
		ext:      ext,
		known:    make(map[string]struct{}),
		disabled: make(map[string]struct{}),
		jobs:     opts.Jobs,
		path:     path,
		workdir:  opts.WorkDir,
	}
	for _, code := range notificationCodes {
		e.known[code] = struct{}{}
	}
	return e
}

func (e *Engine) Name() string { return ToolName }

// AddRule installs a rule and declares its codes.
func (e *Engine) AddRule(r Rule) {
	e.rules = append(e.rules, r)
	for _, code := range r.Codes() {
		e.known[code] = struct{}{}
	}
}

func (e *Engine) LoadArgs(paths []string) ([]string, error) {
	return slices.Clone(paths), nil
}

func (e *Engine) LoadDefaultPlugins() {
	registryMu.Lock()
	names := slices.Clone(defaultPlugins)
	registryMu.Unlock()
	for _, name := range names {
		// Default plugins registered themselves; a failure here is an
		// engine packaging bug and still must not abort configuration.
		_ = e.LoadPlugin(name)
	}
}

func (e *Engine) LoadPlugin(module string) error {
	p, ok := lookupPlugin(module)
	if !ok {
		return &engine.PluginError{Module: module, Err: ErrPluginNotFound}
	}
	if err := p(e); err != nil {
		return &engine.PluginError{Module: module, Err: err}
	}
	return nil
}

func (e *Engine) Enable(code string) error {
	if _, ok := e.known[code]; !ok {
		return fmt.Errorf("%q: %w", code, engine.ErrUnknownCode)
	}
	delete(e.disabled, code)
	return nil
}

func (e *Engine) Disable(code string) error {
	if _, ok := e.known[code]; !ok {
		return fmt.Errorf("%q: %w", code, engine.ErrUnknownCode)
	}
	e.disabled[code] = struct{}{}
	return nil
}

// Enabled reports whether a code currently produces diagnostics.
func (e *Engine) Enabled(code string) bool {
	_, off := e.disabled[code]
	return !off
}

func (e *Engine) Checkers() []engine.Checker {
	out := make([]engine.Checker, 0, len(e.rules))
	for _, r := range e.rules {
		out = append(out, r)
	}
	return out
}

func (e *Engine) SetSink(s engine.Sink) { e.sink = s }

func (e *Engine) Jobs() int     { return e.jobs }
func (e *Engine) SetJobs(n int) { e.jobs = n }

func (e *Engine) SearchPath() *syspath.List { return e.path }

func (e *Engine) ConfigPlugins() []string { return e.configPlugins }
