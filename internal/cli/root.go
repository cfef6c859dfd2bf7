// Package cli wires the scrollmenu commands: the demo runner and the
// configuration helpers.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/scrollmenu/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the scrollmenu CLI.
// It wires up config loading, logging, and the demo and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var cleanup func() error

	cmd := &cobra.Command{
		Use:     "scrollmenu",
		Short:   "Scrollable menu bar widget and demo",
		Long:    "scrollmenu: a horizontally scrolling menu bar for terminal UIs, with a demo runner",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cleanup = setupLogging(cmd, cfg)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file path (default ~/.scrollmenu/config.yaml)")
	cmd.PersistentFlags().Bool("no-mouse", false, "disable wheel and drag gestures")
	cmd.AddCommand(newDemoCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Run the demo with the default menu
  scrollmenu demo

  # Run the demo with your own entries and a fixed 10-column step
  scrollmenu demo --step 10 home shop "about us" contact

  # Write a starter config file
  scrollmenu config init

  # Check a config file and show the resolved values
  scrollmenu config validate --config theme.yaml`

// loadConfig resolves the config path from the flag or the default location,
// loads it over the defaults, and stashes it in the command context. Repair
// warnings surface on stderr but never fail the command.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = defaultConfigPath()
	}

	cfg, warnings, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}

	if noMouse, _ := cmd.Flags().GetBool("no-mouse"); noMouse {
		cfg.Menu.Mouse = false
	}

	setContextConfig(cmd, cfg)
	return cfg, nil
}

// defaultConfigPath returns ~/.scrollmenu/config.yaml, or empty when the
// home directory cannot be determined (defaults are used then).
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scrollmenu", "config.yaml")
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd(), newConfigValidateCmd())
	return cmd
}

// newConfigInitCmd writes a starter config file with the built-in defaults.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = defaultConfigPath()
			}
			if path == "" {
				return fmt.Errorf("cannot determine config path, pass --config")
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}

			data, err := config.Default().Marshal()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}
			if err := os.WriteFile(path, data, 0o600); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			cmd.Printf("Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

// newConfigValidateCmd loads a config file and prints the resolved values.
func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a config file and show the resolved configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := contextConfig(cmd)
			if cfg == nil {
				cfg = config.Default()
			}

			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			cmd.Print(string(data))
			return nil
		},
	}
}
