package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/klemjul/researchforge/internal/chat"
	"github.com/klemjul/researchforge/internal/format"
	"github.com/klemjul/researchforge/internal/message"
)

// followState is shared by every copy of the model so the log's scroller
// can ask the viewport to jump to the newest entry.
type followState struct {
	pending bool
}

type ChatTUIModel struct {
	textInput textinput.Model
	viewport  viewport.Model
	conv      *chat.Conversation
	title     string
	waiting   bool
	first     *chat.Pending
	follow    *followState

	getBotResponse func(p chat.Pending) tea.Cmd
	formatMarkdown func(text string) (string, error)
}

const (
	CHAT_INPUT_PLACEHOLDER = "Ask about papers, proposals or emails..."
	CHAT_WAITING_RESPONSE  = "> ⏳ Waiting for response..."
	CHAT_TYPING_INDICATOR  = "ResearchForge AI is typing..."
	CHAT_HELP              = "enter send • pgup/pgdn scroll • ctrl+l clear • esc quit"
)

var (
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	typingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	titleStyle  = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)
	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true)
)

type InitialModelOptions struct {
	Title        string
	Conversation *chat.Conversation
	// GetBotResponse runs the backend exchange for p and reports a
	// chat.Outcome.
	GetBotResponse func(p chat.Pending) tea.Cmd
	// FirstMessage, when set, is sent as soon as the program starts.
	FirstMessage string
	Format       func(text string) (string, error)
}

func InitialModel(opts InitialModelOptions) ChatTUIModel {
	ti := textinput.New()
	ti.Placeholder = CHAT_INPUT_PLACEHOLDER
	ti.Focus()

	conv := opts.Conversation
	if conv == nil {
		conv = chat.New(nil, nil)
	}
	formatMarkdown := opts.Format
	if formatMarkdown == nil {
		formatMarkdown = format.FormatMarkdown
	}

	follow := &followState{}
	conv.Log().SetScroller(func(message.Entry) {
		follow.pending = true
	})

	m := ChatTUIModel{
		textInput:      ti,
		viewport:       viewport.New(0, 0),
		conv:           conv,
		title:          opts.Title,
		follow:         follow,
		getBotResponse: opts.GetBotResponse,
		formatMarkdown: formatMarkdown,
	}
	if p, ok := conv.Begin(opts.FirstMessage); ok {
		m.first = &p
		m.waiting = true
	}
	return m
}

func (m ChatTUIModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, tea.EnableMouseCellMotion}
	if m.first != nil {
		cmds = append(cmds, m.getBotResponse(*m.first))
	}
	return tea.Batch(cmds...)
}

func (m ChatTUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		m.scroll(msg)
	case chat.Outcome:
		m.conv.Complete(msg)
		m.waiting, m.first = false, nil
		m.updateViewport()
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	m.textInput, _ = m.textInput.Update(msg)
	if m.waiting {
		m.textInput.Blur()
	} else {
		m.textInput.Focus()
	}
	return m, cmd
}

// resize keeps room for the wrapped title, both borders, the input line
// and the help line.
func (m *ChatTUIModel) resize(width, height int) {
	titleLines := len(m.title)/width + 1
	m.viewport = viewport.New(width, height-(4+titleLines))
	m.follow.pending = true
	m.updateViewport()
}

func (m *ChatTUIModel) scroll(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.ScrollUp(1)
	case tea.MouseButtonWheelDown:
		m.viewport.ScrollDown(1)
	}
}

func (m *ChatTUIModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return tea.Quit
	case tea.KeyPgUp:
		m.viewport.ScrollUp(m.viewport.Height)
	case tea.KeyPgDown:
		m.viewport.ScrollDown(m.viewport.Height)
	case tea.KeyCtrlL:
		if m.waiting {
			return nil
		}
		m.conv.Reset()
		m.updateViewport()
	case tea.KeyEnter:
		return m.submit()
	}
	return nil
}

// submit starts a turn with the typed text; blank input and input typed
// while a reply is outstanding are ignored.
func (m *ChatTUIModel) submit() tea.Cmd {
	if m.waiting {
		return nil
	}
	p, ok := m.conv.Begin(m.textInput.Value())
	if !ok {
		return nil
	}
	m.waiting = true
	m.textInput.SetValue("")
	m.updateViewport()
	return m.getBotResponse(p)
}

func (m *ChatTUIModel) renderEntry(e message.Entry) string {
	switch e.Role {
	case message.User:
		return userStyle.Render("> " + e.Content)
	case message.Typing:
		return typingStyle.Render(CHAT_TYPING_INDICATOR)
	}
	out, err := m.formatMarkdown(e.Content)
	if err != nil {
		out = e.Content
	}
	return botStyle.Render(strings.TrimSpace(out))
}

func (m *ChatTUIModel) updateViewport() {
	entries := m.conv.Log().Entries()
	rendered := make([]string, len(entries))
	for i, e := range entries {
		rendered[i] = m.renderEntry(e)
	}

	m.viewport.SetContent(strings.Join(rendered, "\n\n"))
	if m.follow.pending {
		m.viewport.GotoBottom()
		m.follow.pending = false
	}
}

func (m ChatTUIModel) View() string {
	input := CHAT_WAITING_RESPONSE
	if !m.waiting {
		input = m.textInput.View()
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Width(m.viewport.Width).Render(m.title),
		m.viewport.View(),
		inputStyle.Width(m.viewport.Width).Render(input),
		typingStyle.Render(CHAT_HELP),
	)
}
