package cmd

import (
	"fmt"
	"strings"

	"github.com/klemjul/researchforge/internal/api"
	"github.com/klemjul/researchforge/internal/app"
	"github.com/klemjul/researchforge/internal/config"
	"github.com/klemjul/researchforge/internal/message"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func searchCommand(app app.App) *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search arXiv papers through the ResearchForge service.",
		Args:  cobra.ArbitraryArgs,
		Example: `
researchforge search transformers for protein folding
researchforge search --category cs.CL --max-results 5 retrieval augmented generation
	`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, app)
		},
	}

	searchCmd.Flags().SortFlags = false
	searchCmd.Flags().String("category", config.DEFAULT_CATEGORY,
		fmt.Sprintf("arXiv category filter, e.g. cs.LG. (env: %s)", config.GetEnvWithPrefix(config.ENV_CATEGORY)))
	searchCmd.Flags().Int("max-results", config.DEFAULT_MAX_RESULTS,
		fmt.Sprintf("Maximum number of papers. (env: %s)", config.GetEnvWithPrefix(config.ENV_MAX_RESULTS)))
	searchCmd.Flags().Bool("html", false, "Print the rendered HTML cards instead of the terminal list.")

	bindFlag(searchCmd.Flags(), config.ENV_CATEGORY, "category")
	bindFlag(searchCmd.Flags(), config.ENV_MAX_RESULTS, "max-results")

	return searchCmd
}

func runSearch(cmd *cobra.Command, args []string, app app.App) error {
	asHTML, _ := cmd.Flags().GetBool("html")

	logger, closeLog, err := newLogger(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	searcher, err := app.Backend().NewSearcher(viper.GetString(config.ENV_ENDPOINT), logger)
	if err != nil {
		return fmt.Errorf("failed to create search client: %v", err)
	}

	res, err := searcher.Search(cmd.Context(), api.SearchRequest{
		Query:      strings.Join(args, " "),
		Category:   viper.GetString(config.ENV_CATEGORY),
		MaxResults: viper.GetInt(config.ENV_MAX_RESULTS),
	})
	if err != nil {
		if asHTML {
			fmt.Fprintln(cmd.OutOrStdout(), message.RenderSearchError(err))
		}
		return fmt.Errorf("search failed: %v", err)
	}

	if asHTML {
		fmt.Fprintln(cmd.OutOrStdout(), message.RenderPapers(res.Papers))
		return nil
	}
	cmd.OutOrStdout().Write([]byte(app.Format().FormatPapers(res.Papers)))
	return nil
}
