package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/scrollmenu/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, config.SchemaVersion, cfg.Version)
	assert.Equal(t, config.StepAuto, cfg.Menu.Step)
	assert.Equal(t, config.DefaultAnimationMs, cfg.Menu.AnimationMs)
	assert.Equal(t, config.DefaultDebounceMs, cfg.Menu.DebounceMs)
	assert.Equal(t, config.DefaultPrevLabel, cfg.Menu.PrevLabel)
	assert.Equal(t, config.DefaultNextLabel, cfg.Menu.NextLabel)
	assert.True(t, cfg.Menu.Mouse)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, warnings, err := config.Load("")
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, warnings, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverlayWinsOverDefaults(t *testing.T) {
	path := writeConfig(t, `
menu:
  step: "12"
  animation_ms: 250
  prev_label: "<"
  next_label: ">"
  mouse: true
`)

	cfg, warnings, err := config.Load(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, "12", cfg.Menu.Step)
	assert.Equal(t, 250, cfg.Menu.AnimationMs)
	assert.Equal(t, "<", cfg.Menu.PrevLabel)
	// Sections absent from the overlay keep defaults.
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	path := writeConfig(t, "menu: [not: a: mapping")

	_, _, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*config.Config)
		wantWarnings int
		check        func(*testing.T, *config.Config)
	}{
		{
			name:         "clean config has no warnings",
			mutate:       func(_ *config.Config) {},
			wantWarnings: 0,
			check:        func(_ *testing.T, _ *config.Config) {},
		},
		{
			name:         "garbage step falls back to auto",
			mutate:       func(c *config.Config) { c.Menu.Step = "wide" },
			wantWarnings: 1,
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.StepAuto, c.Menu.Step)
			},
		},
		{
			name:         "negative step falls back to auto",
			mutate:       func(c *config.Config) { c.Menu.Step = "-4" },
			wantWarnings: 1,
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.StepAuto, c.Menu.Step)
			},
		},
		{
			name:         "negative animation duration resets",
			mutate:       func(c *config.Config) { c.Menu.AnimationMs = -1 },
			wantWarnings: 1,
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.DefaultAnimationMs, c.Menu.AnimationMs)
			},
		},
		{
			name:         "negative debounce resets",
			mutate:       func(c *config.Config) { c.Menu.DebounceMs = -200 },
			wantWarnings: 1,
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.DefaultDebounceMs, c.Menu.DebounceMs)
			},
		},
		{
			name:         "newer schema warns but keeps going",
			mutate:       func(c *config.Config) { c.Version = "2.1.0" },
			wantWarnings: 1,
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, "2.1.0", c.Version)
			},
		},
		{
			name:         "unparseable schema version is replaced",
			mutate:       func(c *config.Config) { c.Version = "latest" },
			wantWarnings: 1,
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.SchemaVersion, c.Version)
			},
		},
		{
			name:         "empty arrow labels restore defaults silently",
			mutate:       func(c *config.Config) { c.Menu.PrevLabel = ""; c.Menu.NextLabel = "" },
			wantWarnings: 0,
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.DefaultPrevLabel, c.Menu.PrevLabel)
				assert.Equal(t, config.DefaultNextLabel, c.Menu.NextLabel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)

			warnings := cfg.Normalize()

			assert.Len(t, warnings, tt.wantWarnings)
			tt.check(t, cfg)
		})
	}
}

func TestStepColumns(t *testing.T) {
	tests := []struct {
		step     string
		wantCols int
		wantAuto bool
	}{
		{"auto", 0, true},
		{"", 0, true},
		{"15", 15, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"wide", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.step, func(t *testing.T) {
			m := config.MenuConfig{Step: tt.step}
			cols, auto := m.StepColumns()
			assert.Equal(t, tt.wantCols, cols)
			assert.Equal(t, tt.wantAuto, auto)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := config.Default()
	data, err := cfg.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, warnings, err := config.Load(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, cfg, loaded)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
