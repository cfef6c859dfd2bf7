// Package config loads and merges scrollmenu configuration.
//
// Precedence, later sources winning: built-in defaults, then the user config
// file (shallow-merged by top-level section), then per-instance options
// applied by the caller. The resolved configuration is immutable once a
// widget has been constructed from it.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the config schema version written by `scrollmenu config init`.
const SchemaVersion = "1.0.0"

// schemaUpperBound is the first schema version this build does not support.
// Any 1.x file is accepted.
//
//nolint:gochecknoglobals // Compile-time constant version bound.
var schemaUpperBound = semver.MustParse("2.0.0")

// Defaults for the menu section.
const (
	// DefaultAnimationMs is the offset transition duration.
	DefaultAnimationMs = 500
	// DefaultDebounceMs is the resize quiet period before relayout.
	DefaultDebounceMs = 200
	// DefaultPrevLabel is the textual content of the "previous" control.
	DefaultPrevLabel = "‹"
	// DefaultNextLabel is the textual content of the "next" control.
	DefaultNextLabel = "›"
	// StepAuto selects half-viewport stepping.
	StepAuto = "auto"
)

// Config is the root configuration document.
type Config struct {
	// Version is the schema version of the file, validated against the
	// supported major version. Mismatches warn and continue.
	Version string        `yaml:"version"`
	Menu    MenuConfig    `yaml:"menu"`
	Logging LoggingConfig `yaml:"logging"`
}

// MenuConfig configures the scrollable menu widget.
type MenuConfig struct {
	// Step is "auto" (half the viewport per action) or a fixed column count.
	Step string `yaml:"step"`
	// AnimationMs is the offset transition duration in milliseconds.
	// Zero disables animation; offsets then snap to their target.
	AnimationMs int `yaml:"animation_ms"`
	// DebounceMs is the resize quiet period in milliseconds.
	DebounceMs int `yaml:"debounce_ms"`
	// PrevLabel and NextLabel are the arrow control contents.
	PrevLabel string `yaml:"prev_label"`
	NextLabel string `yaml:"next_label"`
	// Mouse enables wheel and drag gestures.
	Mouse bool `yaml:"mouse"`
}

// LoggingConfig configures the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: SchemaVersion,
		Menu: MenuConfig{
			Step:        StepAuto,
			AnimationMs: DefaultAnimationMs,
			DebounceMs:  DefaultDebounceMs,
			PrevLabel:   DefaultPrevLabel,
			NextLabel:   DefaultNextLabel,
			Mouse:       true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds a Config from defaults overlaid with the file at path. An
// empty path returns the defaults unchanged. A missing file is not an error;
// a malformed file is.
func Load(path string) (*Config, []string, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, nil, nil
	}

	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	warnings := cfg.Normalize()
	return cfg, warnings, nil
}

// Normalize repairs out-of-range values in place, returning a human-readable
// warning for each repair. Invalid configuration degrades to defaults rather
// than failing; the widget must keep working on a half-broken theme file.
func (c *Config) Normalize() []string {
	var warnings []string

	if c.Version != "" {
		v, err := semver.NewVersion(c.Version)
		switch {
		case err != nil:
			warnings = append(warnings, fmt.Sprintf("unparseable config version %q, assuming %s", c.Version, SchemaVersion))
			c.Version = SchemaVersion
		case !v.LessThan(schemaUpperBound):
			warnings = append(warnings, fmt.Sprintf("config version %s is newer than supported %s, continuing anyway", c.Version, SchemaVersion))
		}
	}

	if c.Menu.Step != StepAuto {
		if n, err := strconv.Atoi(c.Menu.Step); err != nil || n <= 0 {
			warnings = append(warnings, fmt.Sprintf("invalid menu step %q, using %q", c.Menu.Step, StepAuto))
			c.Menu.Step = StepAuto
		}
	}
	if c.Menu.AnimationMs < 0 {
		warnings = append(warnings, fmt.Sprintf("negative animation_ms %d, using %d", c.Menu.AnimationMs, DefaultAnimationMs))
		c.Menu.AnimationMs = DefaultAnimationMs
	}
	if c.Menu.DebounceMs < 0 {
		warnings = append(warnings, fmt.Sprintf("negative debounce_ms %d, using %d", c.Menu.DebounceMs, DefaultDebounceMs))
		c.Menu.DebounceMs = DefaultDebounceMs
	}
	if c.Menu.PrevLabel == "" {
		c.Menu.PrevLabel = DefaultPrevLabel
	}
	if c.Menu.NextLabel == "" {
		c.Menu.NextLabel = DefaultNextLabel
	}

	return warnings
}

// StepColumns resolves the step setting into (fixed column count, auto flag).
// Auto stepping returns (0, true).
func (m MenuConfig) StepColumns() (int, bool) {
	if m.Step == StepAuto || m.Step == "" {
		return 0, true
	}
	n, err := strconv.Atoi(m.Step)
	if err != nil || n <= 0 {
		return 0, true
	}
	return n, false
}

// Marshal renders the config as YAML, used by `config init` and validate.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}
