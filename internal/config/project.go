// Package config carries the project-level configuration model and the
// layered merger that turns it into a ready-to-run engine configuration.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ToolSettings is the profile's per-tool override block.
type ToolSettings struct {
	Plugins  []string       `toml:"load-plugins"`
	Disabled []string       `toml:"disable"`
	Options  map[string]any `toml:"options"`
}

// Reserved option keys consumed by the adapter itself rather than by any
// checker.
const (
	OptionConfigFile        = "config-file"
	OptionDefaultPathFinder = "use-default-path-finder"
	OptionJobs              = "jobs"
)

// StringOption reads a string-valued option, empty when absent or not a
// string.
func (s ToolSettings) StringOption(key string) string {
	v, _ := s.Options[key].(string)
	return v
}

// BoolOption reads a bool-valued option, false when absent.
func (s ToolSettings) BoolOption(key string) bool {
	v, _ := s.Options[key].(bool)
	return v
}

// Project is the configuration the driver resolved for the whole run:
// the working directory, the chosen profile's per-tool overrides, library
// hints and the external-config policy.
type Project struct {
	WorkDir           string                  `toml:"-"`
	Profile           string                  `toml:"profile"`
	Libraries         []string                `toml:"libraries"`
	MaxLineLength     *int                    `toml:"max-line-length"`
	ExternalConfig    bool                    `toml:"external-config"`
	ExternalLocations map[string]string       `toml:"external-locations"`
	Tools             map[string]ToolSettings `toml:"tools"`
}

// Settings returns the profile block for one tool, zero when absent.
func (p *Project) Settings(tool string) ToolSettings {
	return p.Tools[tool]
}

// UseExternalConfig reports whether native config files discovered on
// disk should be honored for the given tool.
func (p *Project) UseExternalConfig(tool string) bool {
	return p.ExternalConfig
}

// ExternalConfigLocation returns an externally supplied native config
// path for the tool, empty when none was recorded.
func (p *Project) ExternalConfigLocation(tool string) string {
	return p.ExternalLocations[tool]
}

// ProfilePath is the path configuration diagnostics are attributed to.
func (p *Project) ProfilePath() string {
	name := p.Profile
	if name == "" {
		name = "default"
	}
	return filepath.Join(p.WorkDir, name)
}

// LoadProject reads a project configuration file. WorkDir is set to the
// file's directory.
func LoadProject(path string) (*Project, error) {
	var p Project
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	p.WorkDir = abs
	return &p, nil
}
