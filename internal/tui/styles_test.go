package tui

import (
	"errors"
	"strings"
	"testing"

	apierrors "github.com/diogo/promchat/internal/errors"
	"github.com/diogo/promchat/internal/render"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"nil", nil, nil},
		{"plain", errors.New("boom"), []string{"Error: boom"}},
		{
			"api error",
			apierrors.NewAPIError(500, "http://localhost:8000/ask", "Prometheus query error"),
			[]string{"Error: API error [500]", "HTTP Status: 500"},
		},
		{
			"network error",
			apierrors.NewNetworkError("http://localhost:8000/ask", errors.New("connection refused")),
			[]string{"connection refused", "Hint: Check that the answer service is running"},
		},
		{
			"parse error",
			apierrors.NewParseError("response body is not valid JSON"),
			[]string{"parse error", "Hint:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatError(tt.err)
			if tt.err == nil {
				if got != "" {
					t.Errorf("Expected empty string, got %q", got)
				}
				return
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Expected %q in %q", want, got)
				}
			}
		})
	}
}

func TestUpdateTheme(t *testing.T) {
	defer func() {
		render.SetTUITheme(render.DefaultTUIThemeName)
		UpdateTheme()
	}()

	if !render.SetTUITheme("dracula") {
		t.Fatal("Expected dracula theme")
	}
	UpdateTheme()

	if colorUserBubble != render.DraculaTheme.UserBubble {
		t.Errorf("Expected user bubble color %s, got %s", render.DraculaTheme.UserBubble, colorUserBubble)
	}
	if colorAssistantBubbleText != render.DraculaTheme.AssistantBubbleText {
		t.Errorf("Expected assistant text color %s, got %s", render.DraculaTheme.AssistantBubbleText, colorAssistantBubbleText)
	}
}
