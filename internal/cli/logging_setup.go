package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rshade/scrollmenu/internal/config"
	"github.com/rshade/scrollmenu/internal/logging"
)

// configKey carries the resolved *config.Config through the command context.
type configKey struct{}

// setContextConfig stashes cfg in the command's context for subcommands.
func setContextConfig(cmd *cobra.Command, cfg *config.Config) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, configKey{}, cfg))
}

// contextConfig returns the config stashed by setContextConfig, or nil.
func contextConfig(cmd *cobra.Command) *config.Config {
	ctx := cmd.Context()
	if ctx == nil {
		return nil
	}
	cfg, _ := ctx.Value(configKey{}).(*config.Config)
	return cfg
}

// setupLogging configures logging based on the config file and CLI flags,
// attaches the logger to the command context, and returns a cleanup func
// that releases the log file handle.
func setupLogging(cmd *cobra.Command, cfg *config.Config) func() error {
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
	}

	result := logging.New(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	ctx := logging.WithContext(cmd.Context(), logger)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Msg("command started")

	return result.Close
}
