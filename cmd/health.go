package cmd

import (
	"fmt"

	"github.com/klemjul/researchforge/internal/app"
	"github.com/klemjul/researchforge/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func healthCommand(app app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the ResearchForge service is up.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := newLogger(cmd, false)
			if err != nil {
				return err
			}
			defer closeLog()

			endpoint := viper.GetString(config.ENV_ENDPOINT)
			searcher, err := app.Backend().NewSearcher(endpoint, logger)
			if err != nil {
				return fmt.Errorf("failed to create client: %v", err)
			}

			res, err := searcher.Health(cmd.Context())
			if res != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s at %s: %s\n", res.Service, res.Version, endpoint, res.Status)
			}
			if err != nil {
				return fmt.Errorf("health check failed: %v", err)
			}
			return nil
		},
	}
}
