package app

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/klemjul/researchforge/internal/api"
	"github.com/klemjul/researchforge/internal/chat"
	"github.com/klemjul/researchforge/internal/format"
	"github.com/klemjul/researchforge/internal/llm"
	"github.com/klemjul/researchforge/internal/ui"
)

// ProviderBackend routes chat through the ResearchForge HTTP service
// instead of calling an LLM provider directly.
const ProviderBackend = "backend"

var Providers = []string{ProviderBackend, string(llm.LLMProviderOpenAI), string(llm.LLMProviderOllama)}

type BackendOptions struct {
	Provider string
	Endpoint string
	Models   []string
	Logger   *slog.Logger
}

type Searcher interface {
	Search(ctx context.Context, req api.SearchRequest) (*api.SearchResponse, error)
	Health(ctx context.Context) (*api.HealthResponse, error)
}

type BackendService interface {
	NewChatBackend(opts BackendOptions) (chat.Backend, error)
	NewSearcher(endpoint string, logger *slog.Logger) (Searcher, error)
}

type TUIService interface {
	InitialModel(opts ui.InitialModelOptions) ui.ChatTUIModel
	Run(model ui.ChatTUIModel) (returnModel tea.Model, returnErr error)
}

type TextFormatService interface {
	FormatMarkdown(text string) (string, error)
	FormatPapers(papers []api.Paper) string
}

type App interface {
	Backend() BackendService
	TUI() TUIService
	Format() TextFormatService
}

type DefaultBackendService struct{}

type DefaultTUIService struct{}

type DefaultTextFormatService struct{}

type DefaultApp struct {
	backend BackendService
	tui     TUIService
	format  TextFormatService
}

func (a *DefaultApp) Backend() BackendService   { return a.backend }
func (a *DefaultApp) TUI() TUIService           { return a.tui }
func (a *DefaultApp) Format() TextFormatService { return a.format }

func (b *DefaultBackendService) NewChatBackend(opts BackendOptions) (chat.Backend, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	switch opts.Provider {
	case ProviderBackend, "":
		client, err := api.NewClient(opts.Endpoint, api.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return client, nil
	case string(llm.LLMProviderOpenAI), string(llm.LLMProviderOllama):
		direct, err := llm.NewDirectBackend(llm.LLMProvider(opts.Provider), opts.Models, llm.WithDirectLogger(logger))
		if err != nil {
			return nil, err
		}
		return direct, nil
	default:
		return nil, fmt.Errorf("%s: invalid provider", opts.Provider)
	}
}

func (b *DefaultBackendService) NewSearcher(endpoint string, logger *slog.Logger) (Searcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	client, err := api.NewClient(endpoint, api.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (c *DefaultTUIService) InitialModel(opts ui.InitialModelOptions) ui.ChatTUIModel {
	return ui.InitialModel(opts)
}
func (c *DefaultTUIService) Run(model ui.ChatTUIModel) (returnModel tea.Model, returnErr error) {
	return tea.NewProgram(model, tea.WithAltScreen()).Run()
}

func (f *DefaultTextFormatService) FormatMarkdown(text string) (string, error) {
	return format.FormatMarkdown(text)
}

func (f *DefaultTextFormatService) FormatPapers(papers []api.Paper) string {
	return format.FormatPapers(papers)
}

func NewDefaultApp() App {
	return &DefaultApp{backend: &DefaultBackendService{}, tui: &DefaultTUIService{}, format: &DefaultTextFormatService{}}
}
