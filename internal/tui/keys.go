package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/promchat/internal/chat"
)

// keyMap holds the chat key bindings
type keyMap struct {
	Send      key.Binding
	Newline   key.Binding
	Copy      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Up        key.Binding
	Down      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Send: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("Enter", "Send"),
		),
		// Terminals cannot report Shift+Enter
		Newline: key.NewBinding(
			key.WithKeys("alt+enter", "ctrl+j"),
			key.WithHelp("Alt+Enter", "Newline"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("Ctrl+Y", "Copy PromQL"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp/PgDn", "Scroll"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// viewportKeyMap restricts viewport scrolling to keys the textarea does
// not need, so typing never scrolls the conversation.
func (k keyMap) viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageUp:   k.PageUp,
		PageDown: k.PageDown,
		Up:       k.Up,
		Down:     k.Down,
	}
}

// statusHelp lists the bindings shown in the status bar
func (k keyMap) statusHelp() []key.Binding {
	return []key.Binding{k.Send, k.Newline, k.Copy, k.PageUp, k.Quit}
}

// chatKey reduces a keystroke to what the conversation state reacts to.
// Alt+Enter is reported as a shifted Enter.
func chatKey(msg tea.KeyMsg) chat.Key {
	if msg.Type != tea.KeyEnter {
		return chat.Key{}
	}
	return chat.Key{Enter: true, Shift: msg.Alt}
}

// renderStatusBar renders the bottom status bar from the key bindings
func (m Model) renderStatusBar(width int) string {
	var items []string
	for _, b := range m.keys.statusHelp() {
		help := b.Help()
		item := lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(help.Key),
			statusDescStyle.Render(" "+help.Desc),
		)
		items = append(items, item)
	}

	bar := strings.Join(items, "  │  ")
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}
