package config

import "github.com/rshade/scrollmenu/internal/logging"

// ToLoggingConfig converts the YAML logging section into the runtime logging
// configuration used by internal/logging. A configured file path switches
// output to file mode; otherwise logs go to stderr so they never corrupt the
// TUI on stdout.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
		Caller: false,
	}
}
