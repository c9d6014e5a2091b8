package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lintbridge/internal/diag"
	"lintbridge/internal/engine"
)

// The engine is told to always announce suppression events regardless of
// profile: the driver uses them to work out which findings other tools
// should stop repeating. A finding suppressed for this engine may still
// be raised by another tool under a different code.
var forcedToggles = []struct {
	code   string
	enable bool
}{
	{"locally-disabled", false},
	{"file-ignored", true},
	{"suppressed-message", true},
	{"deprecated-pragma", false},
}

// maxLineLengthOption is the checker option the project-wide line length
// limit fans out to.
const maxLineLengthOption = "max-line-length"

// PluginResult is the outcome of one best-effort plugin load. Err is nil
// on success; failed loads are reported, never raised.
type PluginResult struct {
	Module string
	Err    error
}

// LoadPlugins loads each module on the engine, collecting per-module
// outcomes instead of stopping at the first failure.
func LoadPlugins(eng engine.Engine, modules []string) []PluginResult {
	out := make([]PluginResult, 0, len(modules))
	for _, m := range modules {
		out = append(out, PluginResult{Module: m, Err: eng.LoadPlugin(m)})
	}
	return out
}

// autoPluginFor maps a library hint to the conventional plugin module
// name for the engine.
func autoPluginFor(tool, library string) string {
	return tool + "_" + library
}

// Merged is the outcome of one configuration merge.
type Merged struct {
	// Args is the engine's resolved argument list for Check.
	Args []string

	// Diagnostics are the non-fatal configuration problems hit while
	// layering, attributable to the profile or config file at fault.
	Diagnostics []diag.Diagnostic

	// ConfiguredBy names the external native config file that was
	// loaded, empty when none was found or external config is off.
	ConfiguredBy string
}

// Merge layers the engine configuration in fixed precedence order:
// engine defaults, ecosystem auto-plugins, profile overrides, then the
// external native config file. Every layer is independently fallible
// without aborting; the one deliberate quirk is that the external file
// applies last and may override profile settings for the same key.
func Merge(eng engine.Engine, project *Project, checkPaths []string) (*Merged, error) {
	m := &Merged{}
	tool := eng.Name()
	settings := project.Settings(tool)

	args, err := eng.LoadArgs(checkPaths)
	if err != nil {
		return nil, fmt.Errorf("load engine configuration: %w", err)
	}
	m.Args = args
	eng.LoadDefaultPlugins()

	// Best-effort conveniences; a missing ecosystem plugin is not worth
	// a diagnostic.
	for _, lib := range project.Libraries {
		_ = LoadPlugins(eng, []string{autoPluginFor(tool, lib)})
	}

	m.Diagnostics = append(m.Diagnostics, applyProfile(eng, project, settings)...)

	if project.UseExternalConfig(tool) {
		path, ok := discoverConfigFile(eng, project, settings)
		if ok {
			m.ConfiguredBy = path
			m.Diagnostics = append(m.Diagnostics, loadConfigFile(eng, path)...)
		}
	}

	return m, nil
}

// applyProfile is the third layer: explicit plugins, disabled codes, the
// forced notification toggles, per-checker option overrides and the
// project-wide line length limit.
func applyProfile(eng engine.Engine, project *Project, settings ToolSettings) []diag.Diagnostic {
	var ds []diag.Diagnostic
	profilePath := project.ProfilePath()

	for _, r := range LoadPlugins(eng, settings.Plugins) {
		if r.Err != nil {
			ds = append(ds, diag.ConfigProblem(profilePath, fmt.Sprintf("Could not load plugin %s", r.Module)))
		}
	}

	for _, code := range settings.Disabled {
		// The code may have been retired by a newer engine version.
		if err := eng.Disable(code); err != nil && !errors.Is(err, engine.ErrUnknownCode) {
			ds = append(ds, diag.ConfigProblem(profilePath, fmt.Sprintf("Could not disable %s: %v", code, err)))
		}
	}

	for _, t := range forcedToggles {
		var err error
		if t.enable {
			err = eng.Enable(t.code)
		} else {
			err = eng.Disable(t.code)
		}
		if err != nil && !errors.Is(err, engine.ErrUnknownCode) {
			ds = append(ds, diag.ConfigProblem(profilePath, fmt.Sprintf("Could not toggle %s: %v", t.code, err)))
		}
	}

	for _, checker := range eng.Checkers() {
		for _, opt := range checker.Options() {
			value, ok := settings.Options[opt.Name]
			if !ok {
				continue
			}
			if err := checker.SetOption(opt.Name, value); err != nil {
				ds = append(ds, diag.ConfigProblem(profilePath,
					fmt.Sprintf("Could not set %s on checker %s: %v", opt.Name, checker.Name(), err)))
			}
		}
	}

	if project.MaxLineLength != nil {
		for _, checker := range eng.Checkers() {
			for _, opt := range checker.Options() {
				if opt.Name != maxLineLengthOption {
					continue
				}
				if err := checker.SetOption(maxLineLengthOption, *project.MaxLineLength); err != nil {
					ds = append(ds, diag.ConfigProblem(profilePath,
						fmt.Sprintf("Could not set %s on checker %s: %v", maxLineLengthOption, checker.Name(), err)))
				}
			}
		}
	}

	return ds
}

// discoverConfigFile resolves which native config file to load: explicit
// tool option, externally supplied location, the engine's own locator,
// then a fixed list of conventional filenames in the project root.
func discoverConfigFile(eng engine.Engine, project *Project, settings ToolSettings) (string, bool) {
	if path := settings.StringOption(OptionConfigFile); path != "" {
		return path, true
	}
	if path := project.ExternalConfigLocation(eng.Name()); path != "" {
		return path, true
	}
	if path, ok := eng.FindConfig(); ok {
		return path, true
	}
	tool := eng.Name()
	for _, name := range []string{"." + tool + "rc", tool + "rc", tool + ".toml", "project.toml"} {
		candidate := filepath.Join(project.WorkDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// loadConfigFile is the fourth layer. A malformed file surfaces as a
// configuration diagnostic, never an error; if the load did not pull in
// the file's declared plugins, they are loaded here.
func loadConfigFile(eng engine.Engine, path string) []diag.Diagnostic {
	var ds []diag.Diagnostic
	pluginsLoaded, err := eng.LoadConfigFile(path)
	if err != nil {
		ds = append(ds, diag.ConfigProblem(path, fmt.Sprintf("Could not load configuration: %v", err)))
		return ds
	}
	if !pluginsLoaded {
		for _, r := range LoadPlugins(eng, eng.ConfigPlugins()) {
			if r.Err != nil {
				ds = append(ds, diag.ConfigProblem(path, fmt.Sprintf("Could not load plugin %s", r.Module)))
			}
		}
	}
	return ds
}
