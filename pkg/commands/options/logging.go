package options

import (
	"github.com/spf13/cobra"
)

// LogOptions override the configured log settings.
type LogOptions struct {
	Level  string
	Format string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().StringVar(&o.Level, "log-level", "",
		"Log level: debug, info, warn or error.")
	cmd.PersistentFlags().StringVar(&o.Format, "log-format", "",
		"Log format: text, json or logfmt.")
}
