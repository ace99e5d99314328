package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/klemjul/researchforge/internal/app"
	"github.com/klemjul/researchforge/internal/chat"
	"github.com/klemjul/researchforge/internal/config"
	apperrors "github.com/klemjul/researchforge/internal/errors"
	"github.com/klemjul/researchforge/internal/llm"
	"github.com/klemjul/researchforge/internal/markdown"
	"github.com/klemjul/researchforge/internal/message"
	"github.com/klemjul/researchforge/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const transcriptTitle = "ResearchForge AI"

func RootCommand(app app.App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "researchforge [message...]",
		Short: "Chat with the ResearchForge AI research assistant from the command line.",
		Args:  cobra.ArbitraryArgs,
		Example: `
researchforge "Find papers about graph neural networks"   # One-shot question
researchforge -i   # Chat Mode
researchforge --provider ollama --model llama3 -i "Draft an email about a joint grant"
researchforge search --category cs.LG diffusion models
researchforge render --engine commonmark notes.md
	`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, app)
		},
		PersistentPreRunE: validateCommon,
		PreRunE:           validate,
	}

	rootCmd.Flags().SortFlags = false

	rootCmd.PersistentFlags().String("endpoint", config.DEFAULT_ENDPOINT,
		fmt.Sprintf("ResearchForge service URL. (env: %s)", config.GetEnvWithPrefix(config.ENV_ENDPOINT)))
	rootCmd.PersistentFlags().String("engine", config.DEFAULT_ENGINE,
		fmt.Sprintf("Markdown engine for HTML output, one of %v. (env: %s)", markdown.Engines, config.GetEnvWithPrefix(config.ENV_ENGINE)))
	rootCmd.PersistentFlags().Bool("sanitize", false,
		fmt.Sprintf("Sanitize rendered assistant HTML. (env: %s)", config.GetEnvWithPrefix(config.ENV_SANITIZE)))
	rootCmd.PersistentFlags().String("log-level", config.DEFAULT_LOG_LEVEL,
		fmt.Sprintf("Log level: debug, info, warn or error. (env: %s)", config.GetEnvWithPrefix(config.ENV_LOG_LEVEL)))
	rootCmd.PersistentFlags().String("log-file", "",
		fmt.Sprintf("Append logs to this file instead of stderr. (env: %s)", config.GetEnvWithPrefix(config.ENV_LOG_FILE)))

	rootCmd.Flags().String("provider", config.DEFAULT_PROVIDER,
		fmt.Sprintf("Chat provider, one of %v. (env: %s)", providers(), config.GetEnvWithPrefix(config.ENV_PROVIDER)))
	rootCmd.Flags().StringSlice("model", []string{},
		fmt.Sprintf("LLM model for the openai and ollama providers, repeat for fallbacks tried in order. (env: %s)", config.GetEnvWithPrefix(config.ENV_MODEL)))
	rootCmd.Flags().BoolP("interactive", "i", false, "Run researchforge in Chat Mode.")
	rootCmd.Flags().Bool("html", false, "Print the rendered HTML fragment instead of terminal markdown.")
	rootCmd.Flags().String("transcript", "", "Write the conversation as an HTML page to this file.")
	rootCmd.Flags().Int("message-token-limit", config.DEFAULT_MESSAGE_TOKEN_LIMIT,
		fmt.Sprintf("Maximum estimated tokens per message, 0 disables the check. (env: %s)", config.GetEnvWithPrefix(config.ENV_MESSAGE_TOKEN_LIMIT)))

	bindFlag(rootCmd.PersistentFlags(), config.ENV_ENDPOINT, "endpoint")
	bindFlag(rootCmd.PersistentFlags(), config.ENV_ENGINE, "engine")
	bindFlag(rootCmd.PersistentFlags(), config.ENV_SANITIZE, "sanitize")
	bindFlag(rootCmd.PersistentFlags(), config.ENV_LOG_LEVEL, "log-level")
	bindFlag(rootCmd.PersistentFlags(), config.ENV_LOG_FILE, "log-file")
	bindFlag(rootCmd.Flags(), config.ENV_PROVIDER, "provider")
	bindFlag(rootCmd.Flags(), config.ENV_MODEL, "model")
	bindFlag(rootCmd.Flags(), config.ENV_MESSAGE_TOKEN_LIMIT, "message-token-limit")

	viper.SetEnvPrefix(config.ENV_PREFIX)
	viper.AutomaticEnv()

	rootCmd.AddCommand(
		searchCommand(app),
		renderCommand(),
		healthCommand(app),
	)

	return rootCmd
}

// bindFlag lets the env variable <ENV_PREFIX>_<key> stand in for an unset flag.
func bindFlag(flags *pflag.FlagSet, key, name string) {
	viper.BindPFlag(key, flags.Lookup(name))
}

func validateCommon(cmd *cobra.Command, args []string) error {
	if _, err := config.ParseLogLevel(viper.GetString(config.ENV_LOG_LEVEL)); err != nil {
		return err
	}
	if _, err := markdown.EngineByName(viper.GetString(config.ENV_ENGINE)); err != nil {
		return err
	}
	return nil
}

func validate(cmd *cobra.Command, args []string) error {
	provider := viper.GetString(config.ENV_PROVIDER)
	if !slices.Contains(app.Providers, provider) {
		return fmt.Errorf("invalid provider '%s'. Valid providers are: %v", provider, app.Providers)
	}

	if provider != app.ProviderBackend && len(models()) == 0 {
		return fmt.Errorf("model must be specified for provider '%s'", provider)
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	if !interactive && strings.TrimSpace(strings.Join(args, " ")) == "" {
		return fmt.Errorf("a message is required unless --interactive is set")
	}

	return nil
}

func providers() []string {
	return app.Providers
}

// models reads the fallback list from flags or a comma separated env value.
func models() []string {
	var out []string
	for _, v := range viper.GetStringSlice(config.ENV_MODEL) {
		for _, m := range strings.Split(v, ",") {
			if m = strings.TrimSpace(m); m != "" {
				out = append(out, m)
			}
		}
	}
	return out
}

func newRenderer() (*message.Renderer, error) {
	md, err := markdown.EngineByName(viper.GetString(config.ENV_ENGINE))
	if err != nil {
		return nil, err
	}
	opts := []message.RendererOption{message.WithMarkdown(md)}
	if viper.GetBool(config.ENV_SANITIZE) {
		opts = append(opts, message.WithSanitizer(message.NewSanitizer()))
	}
	return message.NewRenderer(opts...), nil
}

func run(cmd *cobra.Command, args []string, app app.App) error {
	provider := viper.GetString(config.ENV_PROVIDER)
	endpoint := viper.GetString(config.ENV_ENDPOINT)
	tokenLimit := viper.GetInt(config.ENV_MESSAGE_TOKEN_LIMIT)
	text := strings.TrimSpace(strings.Join(args, " "))

	interactive, err := cmd.Flags().GetBool("interactive")
	if err != nil {
		interactive = false
	}
	asHTML, _ := cmd.Flags().GetBool("html")
	transcript, _ := cmd.Flags().GetString("transcript")

	logger, closeLog, err := newLogger(cmd, interactive)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := llm.CheckTokenLimit(text, tokenLimit); err != nil {
		return err
	}

	renderer, err := newRenderer()
	if err != nil {
		return err
	}

	backend, err := app.Backend().NewChatBackend(appBackendOptions(provider, endpoint, logger))
	if err != nil {
		return fmt.Errorf("failed to create chat backend: %v", err)
	}

	conv := chat.New(backend, message.NewLog(renderer), chat.WithLogger(logger))

	var turnErr error
	if !interactive {
		turnErr = runOnce(cmd, app, conv, text, asHTML)
	} else {
		TUIModel := app.TUI().InitialModel(ui.InitialModelOptions{
			Title:          chatTitle(provider, endpoint),
			Conversation:   conv,
			FirstMessage:   text,
			GetBotResponse: makeBotResponder(conv, cmd.Context(), tokenLimit),
			Format:         app.Format().FormatMarkdown,
		})
		if _, err := app.TUI().Run(TUIModel); err != nil {
			return fmt.Errorf("error running interactive mode: %v", err)
		}
	}

	if transcript != "" {
		if err := writeTranscript(transcript, conv); err != nil {
			return err
		}
	}
	return turnErr
}

func appBackendOptions(provider, endpoint string, logger *slog.Logger) app.BackendOptions {
	return app.BackendOptions{
		Provider: provider,
		Endpoint: endpoint,
		Models:   models(),
		Logger:   logger,
	}
}

func runOnce(cmd *cobra.Command, app app.App, conv *chat.Conversation, text string, asHTML bool) error {
	p, _ := conv.Begin(text)
	outcome := conv.Exchange(cmd.Context(), p)
	entry := conv.Complete(outcome)

	if asHTML {
		fmt.Fprintln(cmd.OutOrStdout(), entry.Fragment)
	} else {
		formattedRes, err := app.Format().FormatMarkdown(entry.Content)
		if err != nil {
			return fmt.Errorf("failed to format response: %v", err)
		}
		cmd.OutOrStdout().Write([]byte(formattedRes))
	}

	if outcome.Err != nil {
		return fmt.Errorf("chat request failed: %v", outcome.Err)
	}
	return nil
}

func chatTitle(provider, endpoint string) string {
	if provider == app.ProviderBackend {
		return fmt.Sprintf("ResearchForge AI · %s", endpoint)
	}
	return fmt.Sprintf("ResearchForge AI · %s (%s)", provider, strings.Join(models(), ", "))
}

func writeTranscript(path string, conv *chat.Conversation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating transcript: %v", err)
	}
	defer f.Close()
	if err := conv.Log().WriteDocument(f, transcriptTitle); err != nil {
		return fmt.Errorf("error writing transcript: %v", err)
	}
	return nil
}

func makeBotResponder(conv *chat.Conversation, ctx context.Context, tokenLimit int) func(chat.Pending) tea.Cmd {
	return func(p chat.Pending) tea.Cmd {
		return func() tea.Msg {
			if err := llm.CheckTokenLimit(p.Message, tokenLimit); err != nil {
				return chat.Outcome{Pending: p, Err: apperrors.NewValidationError("message", err.Error())}
			}
			return conv.Exchange(ctx, p)
		}
	}
}
