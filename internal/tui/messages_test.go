package tui

import (
	"strings"
	"testing"

	"github.com/diogo/promchat/internal/models"
)

func TestRenderMessage_Alignment(t *testing.T) {
	user := renderMessage(models.UserMessage("hi"), 60, nil)
	assistant := renderMessage(models.Message{Role: models.RoleAssistant, Content: "hello"}, 60, nil)

	if idx := strings.Index(user, "You: hi"); idx < 40 {
		t.Errorf("Expected user bubble on the right, label at column %d", idx)
	}
	if idx := strings.Index(assistant, "Prometheus: hello"); idx < 0 || idx > 2 {
		t.Errorf("Expected assistant bubble on the left, label at column %d", idx)
	}
}

func TestRenderMessage_Labels(t *testing.T) {
	tests := []struct {
		name string
		msg  models.Message
		want string
		not  string
	}{
		{"user", models.UserMessage("q"), "You: q", "Prometheus:"},
		{"assistant", models.Message{Role: models.RoleAssistant, Content: "a"}, "Prometheus: a", "You:"},
		{"system", models.SystemMessage("welcome"), "welcome", ":"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderMessage(tt.msg, 60, nil)
			if !strings.Contains(out, tt.want) {
				t.Errorf("Expected %q in %q", tt.want, out)
			}
			if strings.Contains(out, tt.not) {
				t.Errorf("Did not expect %q in %q", tt.not, out)
			}
		})
	}
}

func TestRenderMessage_PromQL(t *testing.T) {
	with := renderMessage(models.Message{Role: models.RoleAssistant, Content: "a", PromQL: "rate(x[5m])"}, 60, nil)
	without := renderMessage(models.Message{Role: models.RoleAssistant, Content: "a"}, 60, nil)

	if !strings.Contains(with, "PromQL: rate(x[5m])") {
		t.Errorf("Expected PromQL annotation, got %q", with)
	}
	if strings.Contains(without, "PromQL") {
		t.Error("Expected no annotation without a query")
	}
}

func TestRenderMessage_MultiLine(t *testing.T) {
	out := renderMessage(models.Message{Role: models.RoleAssistant, Content: "first\nsecond"}, 60, nil)
	lines := strings.Split(out, "\n")

	var first, second int = -1, -1
	for i, l := range lines {
		if strings.Contains(l, "first") {
			first = i
		}
		if strings.Contains(l, "second") {
			second = i
		}
	}
	if first < 0 || second != first+1 {
		t.Errorf("Expected content lines kept apart, got %q", out)
	}
}

func TestRenderMessage_Wraps(t *testing.T) {
	long := strings.Repeat("word ", 40)
	out := renderMessage(models.Message{Role: models.RoleAssistant, Content: long}, 50, nil)

	for _, l := range strings.Split(out, "\n") {
		if w := len([]rune(l)); w > 50 {
			t.Errorf("Line wider than the conversation: %d", w)
		}
	}
}
