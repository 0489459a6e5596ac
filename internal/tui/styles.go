// Package tui provides the terminal chat interface for promchat.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/promchat/internal/errors"
	"github.com/diogo/promchat/internal/render"
)

// Color variables (updated from theme)
var (
	colorBorder lipgloss.Color

	colorPrimary lipgloss.Color
	colorAccent  lipgloss.Color
	colorError   lipgloss.Color

	colorText     lipgloss.Color
	colorTextDim  lipgloss.Color
	colorTextMute lipgloss.Color

	colorUserBubble          lipgloss.Color
	colorUserBubbleText      lipgloss.Color
	colorAssistantBubble     lipgloss.Color
	colorAssistantBubbleText lipgloss.Color
)

// Style variables (rebuilt when theme changes)
var (
	headerStyle lipgloss.Style
	titleStyle  lipgloss.Style

	messagesAreaStyle lipgloss.Style

	// Message bubbles
	userBubbleStyle      lipgloss.Style
	assistantBubbleStyle lipgloss.Style
	labelStyle           lipgloss.Style
	promqlLabelStyle     lipgloss.Style
	promqlCodeStyle      lipgloss.Style

	// Input area
	inputPanelStyle   lipgloss.Style
	inputLabelStyle   lipgloss.Style
	sendStyle         lipgloss.Style
	sendDisabledStyle lipgloss.Style
	thinkingStyle     lipgloss.Style
	noticeStyle       lipgloss.Style
	disclaimerStyle   lipgloss.Style

	// Status bar
	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style

	errorStyle lipgloss.Style
)

func init() {
	UpdateTheme()
}

// UpdateTheme refreshes all styles based on the current TUI theme
func UpdateTheme() {
	theme := render.GetTUITheme()

	colorBorder = theme.Border
	colorPrimary = theme.Primary
	colorAccent = theme.Accent
	colorError = theme.Error
	colorText = theme.Text
	colorTextDim = theme.TextDim
	colorTextMute = theme.TextMute
	colorUserBubble = theme.UserBubble
	colorUserBubbleText = theme.UserBubbleText
	colorAssistantBubble = theme.AssistantBubble
	colorAssistantBubbleText = theme.AssistantBubbleText

	rebuildStyles()
}

func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2).
		MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	messagesAreaStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	userBubbleStyle = lipgloss.NewStyle().
		Background(colorUserBubble).
		Foreground(colorUserBubbleText).
		Padding(0, 1)

	assistantBubbleStyle = lipgloss.NewStyle().
		Background(colorAssistantBubble).
		Foreground(colorAssistantBubbleText).
		Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
		Bold(true)

	promqlLabelStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	promqlCodeStyle = lipgloss.NewStyle().
		Foreground(colorAccent)

	inputPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		MarginTop(1)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginRight(1)

	sendStyle = lipgloss.NewStyle().
		Background(colorPrimary).
		Foreground(colorUserBubbleText).
		Bold(true).
		Padding(0, 2)

	sendDisabledStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Padding(0, 2)

	thinkingStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Italic(true)

	noticeStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	disclaimerStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		MarginTop(1)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)
}

// FormatError returns a styled "Error: ..." line with whatever context
// the error carries.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", err)))

	if status := errors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	switch {
	case errors.IsNetworkError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Check that the answer service is running and --api-url is correct"))
	case errors.IsParseError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: The answer service replied with something other than a JSON object"))
	}

	return sb.String()
}
