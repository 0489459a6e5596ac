package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/promchat/internal/models"
	"github.com/diogo/promchat/internal/render"
)

// bubbleRatio is the share of the conversation width a bubble may take
const bubbleRatio = 0.8

// renderMessage draws one conversation entry as a bubble.
// User bubbles sit on the right, everything else on the left.
// A nil markdown means content is shown exactly as received.
func renderMessage(msg models.Message, width int, markdown *render.Options) string {
	if width < 10 {
		width = 10
	}
	maxWidth := int(float64(width) * bubbleRatio)

	style := assistantBubbleStyle
	align := lipgloss.Left
	if msg.Role == models.RoleUser {
		style = userBubbleStyle
		align = lipgloss.Right
	}

	content := msg.Content
	if markdown != nil && msg.Role == models.RoleAssistant {
		content = render.Answer(content, markdown.WithWidth(maxWidth-style.GetHorizontalFrameSize()))
	}

	body := content
	if label := msg.Role.Label(); label != "" {
		body = labelStyle.Inherit(style).Render(label) + content
	}
	if msg.HasPromQL() {
		body += "\n" + promqlLabelStyle.Inherit(style).Render("PromQL: ") +
			promqlCodeStyle.Inherit(style).Render(msg.PromQL)
	}

	bubbleWidth := lipgloss.Width(body) + style.GetHorizontalFrameSize()
	if bubbleWidth > maxWidth {
		bubbleWidth = maxWidth
	}
	bubble := style.Width(bubbleWidth).Render(body)

	return lipgloss.PlaceHorizontal(width, align, bubble)
}
