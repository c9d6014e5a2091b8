// Package adapter orchestrates one engine run: it resolves the layered
// configuration, computes scan roots, borrows the engine's search path
// and post-processes the collected diagnostics. One Adapter handles
// exactly one run; a new run needs a new instance.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"lintbridge/internal/config"
	"lintbridge/internal/diag"
	"lintbridge/internal/engine"
	"lintbridge/internal/finder"
	"lintbridge/internal/scanroot"
	"lintbridge/internal/syspath"
)

// ErrInvalidState reports an out-of-order call: Run before Configure, or
// Configure twice on one instance. These are caller bugs, not runtime
// conditions.
var ErrInvalidState = errors.New("invalid adapter state")

type state uint8

const (
	stateUninitialized state = iota
	stateConfigured
	stateRunning
	stateDone
)

func (s state) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case stateConfigured:
		return "configured"
	case stateRunning:
		return "running"
	case stateDone:
		return "done"
	}
	return "unknown"
}

// Adapter drives one engine through configure and run. Not safe for
// concurrent use; the borrowed search path additionally requires that at
// most one adapter per process is inside a run at a time.
type Adapter struct {
	eng       engine.Engine
	state     state
	args      []string
	guard     *syspath.Guard
	collector *diag.Collector
}

// New returns an adapter for one run of eng.
func New(eng engine.Engine) *Adapter {
	return &Adapter{eng: eng}
}

// Configure resolves the engine configuration: it enters the search-path
// guard, reduces the discovered tree to minimal scan roots, layers the
// configuration sources and registers the diagnostic collector as the
// engine's sink. It returns the external config file that was consulted
// (empty for none) and the non-fatal configuration diagnostics.
func (a *Adapter) Configure(project *config.Project, files finder.FileFinder) (configuredBy string, diags []diag.Diagnostic, err error) {
	if a.state != stateUninitialized {
		return "", nil, fmt.Errorf("%w: configure called in state %s", ErrInvalidState, a.state)
	}

	settings := project.Settings(a.eng.Name())
	guard, err := syspath.Enter(a.eng.SearchPath(), files.SearchPath(), settings.BoolOption(config.OptionDefaultPathFinder))
	if err != nil {
		return "", nil, err
	}
	a.guard = guard

	roots := scanroot.Reduce(files.Packages(), files.Modules())
	checkPaths := make([]string, 0, len(roots))
	for _, root := range roots {
		checkPaths = append(checkPaths, files.Abs(root.String()))
	}

	merged, err := config.Merge(a.eng, project, checkPaths)
	if err != nil {
		a.guard.Restore()
		return "", nil, err
	}
	a.args = merged.Args

	// Similarity reports pair findings across files and do not survive
	// per-file merging; keep them off.
	if err := a.eng.Disable("similarities"); err != nil && !errors.Is(err, engine.ErrUnknownCode) {
		a.guard.Restore()
		return "", nil, err
	}

	a.collector = diag.NewCollector()
	a.eng.SetSink(a.collector)

	if a.eng.Jobs() == 0 {
		a.eng.SetJobs(runtime.GOMAXPROCS(0))
	}

	a.state = stateConfigured
	return merged.ConfiguredBy, merged.Diagnostics, nil
}

// Run executes the engine against the configured scan roots, restores
// the borrowed search path on every exit path, and returns the drained,
// combined, deterministically ordered diagnostics. Engine failures are
// propagated unmodified.
func (a *Adapter) Run(ctx context.Context) ([]diag.Diagnostic, error) {
	if a.state != stateConfigured {
		return nil, fmt.Errorf("%w: run called in state %s", ErrInvalidState, a.state)
	}
	a.state = stateRunning
	defer func() {
		a.guard.Restore()
		a.state = stateDone
	}()

	if err := a.eng.Check(ctx, a.args); err != nil {
		return nil, err
	}
	return diag.Combine(a.collector.Drain()), nil
}
