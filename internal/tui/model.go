package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/promchat/internal/api"
	"github.com/diogo/promchat/internal/chat"
	"github.com/diogo/promchat/internal/models"
	"github.com/diogo/promchat/internal/render"
)

// answerMsg settles the pending question. Every request produces exactly one.
type answerMsg struct {
	res chat.Result
}

// copyMsg reports the outcome of a clipboard copy
type copyMsg struct {
	what string
	err  error
}

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

// Options configures the chat model
type Options struct {
	// Theme is a TUI theme name; empty keeps the current theme
	Theme string

	// Markdown renders assistant answers through glamour when set
	Markdown *render.Options
}

// Model represents the TUI state
type Model struct {
	service api.AnswerService
	state   chat.State
	keys    keyMap

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	markdown *render.Options
	notice   string
	ready    bool

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model
func NewChatModel(service api.AnswerService, opts Options) Model {
	keys := defaultKeyMap()

	ta := textarea.New()
	ta.Placeholder = "Ask Prometheus a question..."
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.KeyMap.InsertNewline = keys.Newline
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = thinkingStyle

	vp := viewport.New(0, 0)
	vp.KeyMap = keys.viewportKeyMap()

	return Model{
		service:  service,
		state:    chat.New(),
		keys:     keys,
		viewport: vp,
		textarea: ta,
		spinner:  s,
		markdown: opts.Markdown,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.updateViewport()
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case answerMsg:
		if !m.state.Loading() {
			return m, nil
		}
		m.state = m.state.Settle(msg.res)
		m.textarea.Reset()
		cmds = append(cmds, m.textarea.Focus())
		m.updateViewport()
		m.viewport.GotoBottom()
		return m, tea.Batch(cmds...)

	case copyMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			m.notice = fmt.Sprintf("Copied %s to clipboard", msg.what)
		}
		return m, nil

	case spinner.TickMsg:
		if m.state.Loading() {
			m.spinner, cmd = m.spinner.Update(msg)
			m.updateViewport()
			return m, cmd
		}
		return m, nil
	}

	// Mouse wheel and anything else the viewport understands
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKey routes a keystroke. Enter goes through the conversation state
// and never reaches the textarea.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Quit):
		// There is no cancellation; Esc only leaves an idle chat
		if m.state.Loading() {
			return m, nil
		}
		return m, tea.Quit

	case msg.Type == tea.KeyEnter && !msg.Alt:
		m.state = m.state.WithInput(m.textarea.Value())
		next, question, ok := m.state.OnKey(chatKey(msg))
		if !ok {
			return m, nil
		}
		return m.submitted(next, question)

	case key.Matches(msg, m.keys.Send):
		m.state = m.state.WithInput(m.textarea.Value())
		next, question, ok := m.state.Submit()
		if !ok {
			return m, nil
		}
		return m.submitted(next, question)

	case key.Matches(msg, m.keys.Copy):
		return m, copyLast(m.state.Messages())

	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Up, m.keys.Down) && (m.state.Loading() || m.textarea.LineCount() <= 1):
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.state.Loading() {
		return m, nil
	}

	m.notice = ""
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// submitted enters the loading phase and starts the request
func (m Model) submitted(next chat.State, question string) (tea.Model, tea.Cmd) {
	m.state = next
	m.notice = ""
	m.textarea.Blur()
	m.updateViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(
		askCmd(m.service, question),
		m.spinner.Tick,
	)
}

// askCmd sends one question. A panic in the service is reported as an
// error so the pending question always settles.
func askCmd(service api.AnswerService, question string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = answerMsg{res: chat.Result{Err: fmt.Errorf("request failed: %v", r)}}
			}
		}()

		answer, err := service.Ask(context.Background(), question)
		return answerMsg{res: chat.Result{Answer: answer, Err: err}}
	}
}

// copyLast copies the newest PromQL annotation, or the newest answer
// when no answer carried one.
func copyLast(msgs []models.Message) tea.Cmd {
	var text, what string
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role != models.RoleAssistant {
			continue
		}
		if msgs[i].HasPromQL() {
			text, what = msgs[i].PromQL, "PromQL"
			break
		}
		if text == "" {
			text, what = msgs[i].Content, "answer"
		}
	}
	if text == "" {
		return nil
	}

	return func() tea.Msg {
		return copyMsg{what: what, err: writeClipboard(text)}
	}
}

// resize lays out the components for the current window size
func (m *Model) resize() {
	headerHeight := 4 // Header panel with border
	inputHeight := 6  // Input panel with border
	statusHeight := 2 // Status bar
	footerHeight := 1 // Disclaimer
	frame := 2        // Messages area border

	vpHeight := m.height - headerHeight - inputHeight - statusHeight - footerHeight - frame
	if vpHeight < 5 {
		vpHeight = 5
	}

	contentWidth := m.contentWidth()

	// Panels pad one column on each side
	innerWidth := contentWidth - 2

	m.viewport.Width = innerWidth
	m.viewport.Height = vpHeight
	m.textarea.SetWidth(innerWidth - 1 - lipgloss.Width(m.renderSend()))
	m.ready = true
}

// contentWidth is the panel width inside the window margin
func (m Model) contentWidth() int {
	if m.width-4 < 20 {
		return 20
	}
	return m.width - 4
}

// updateViewport refreshes the conversation shown in the viewport
func (m *Model) updateViewport() {
	m.viewport.SetContent(m.renderConversation())
}

// renderConversation draws every message, then the thinking line while a
// question is pending. The thinking line is not part of the conversation.
func (m Model) renderConversation() string {
	var content strings.Builder
	width := m.viewport.Width

	for i, msg := range m.state.Messages() {
		if i > 0 {
			content.WriteString("\n\n")
		}
		content.WriteString(renderMessage(msg, width, m.markdown))
	}

	if m.state.Loading() {
		content.WriteString("\n\n")
		content.WriteString(m.spinner.View() + " " + thinkingStyle.Render(models.ThinkingText))
	}

	return content.String()
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return thinkingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.contentWidth()

	header := headerStyle.Width(contentWidth).Render(titleStyle.Render("Prometheus Chat"))
	sections = append(sections, header)

	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Render(m.viewport.View())
	sections = append(sections, messagesPanel)

	inputRow := lipgloss.JoinHorizontal(
		lipgloss.Bottom,
		m.textarea.View(),
		" ",
		m.renderSend(),
	)
	inputPanel := inputPanelStyle.Width(contentWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, inputLabelStyle.Render("You"), inputRow),
	)
	sections = append(sections, inputPanel)

	if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}

	sections = append(sections, m.renderStatusBar(contentWidth))
	sections = append(sections, disclaimerStyle.Width(contentWidth).Align(lipgloss.Center).Render(models.DisclaimerText))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// sendEnabled reports whether the Send control accepts input
func (m Model) sendEnabled() bool {
	return !m.state.Loading()
}

func (m Model) renderSend() string {
	if m.sendEnabled() {
		return sendStyle.Render("Send")
	}
	return sendDisabledStyle.Render("Send")
}

// State returns the conversation state
func (m Model) State() chat.State {
	return m.state
}

// RunChat starts the interactive chat
func RunChat(service api.AnswerService, opts Options) error {
	if opts.Theme != "" {
		if !render.SetTUITheme(opts.Theme) {
			return fmt.Errorf("unknown theme %q (available: %s)", opts.Theme, strings.Join(render.TUIThemeNames(), ", "))
		}
		UpdateTheme()
	}

	p := tea.NewProgram(NewChatModel(service, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
