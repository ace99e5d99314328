package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/klemjul/researchforge/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newLogger builds the command logger. Without a log file, logs go to
// stderr, or nowhere when quiet is set so they cannot tear the TUI.
func newLogger(cmd *cobra.Command, quiet bool) (*slog.Logger, func() error, error) {
	var w io.Writer = cmd.ErrOrStderr()
	closer := func() error { return nil }

	if path := viper.GetString(config.ENV_LOG_FILE); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening log file: %v", err)
		}
		w = f
		closer = f.Close
	} else if quiet {
		w = io.Discard
	}

	logger, err := config.NewLogger(viper.GetString(config.ENV_LOG_LEVEL), w)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return logger, closer, nil
}
