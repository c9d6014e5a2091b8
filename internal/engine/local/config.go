package local

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// ConfigFileName is the engine's native rc file.
const ConfigFileName = ".sglintrc"

// FindConfig walks up from the engine's working directory looking for the
// native rc file.
func (e *Engine) FindConfig() (string, bool) {
	dir := e.workdir
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(abs, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", false
		}
		abs = parent
	}
}

type rcFile struct {
	Jobs        int64          `toml:"jobs"`
	LoadPlugins []string       `toml:"load-plugins"`
	Enable      []string       `toml:"enable"`
	Disable     []string       `toml:"disable"`
	Options     map[string]any `toml:"options"`
}

// LoadConfigFile applies a native rc file: job count, code toggles and
// checker options. Declared plugins are recorded, not loaded, so
// pluginsLoaded is always false and the caller decides how to surface
// individual load failures. Toggles for unknown codes and options no
// checker declares are ignored; only a malformed file is an error.
func (e *Engine) LoadConfigFile(path string) (bool, error) {
	var cfg rcFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return false, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	e.configPlugins = cfg.LoadPlugins

	if cfg.Jobs > 0 {
		if n, err := safecast.Conv[int](cfg.Jobs); err == nil {
			e.jobs = n
		}
	}

	for _, code := range cfg.Enable {
		_ = e.Enable(code)
	}
	for _, code := range cfg.Disable {
		_ = e.Disable(code)
	}

	for _, r := range e.rules {
		for _, opt := range r.Options() {
			if value, ok := cfg.Options[opt.Name]; ok {
				_ = r.SetOption(opt.Name, value)
			}
		}
	}
	return false, nil
}
