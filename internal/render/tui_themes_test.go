package render

import "testing"

func TestTUIThemes_RequiredFields(t *testing.T) {
	for _, theme := range AvailableTUIThemes() {
		t.Run(theme.Name, func(t *testing.T) {
			if theme.Description == "" {
				t.Error("theme description should not be empty")
			}
			colors := map[string]string{
				"background":          string(theme.Background),
				"primary":             string(theme.Primary),
				"error":               string(theme.Error),
				"text":                string(theme.Text),
				"textDim":             string(theme.TextDim),
				"userBubble":          string(theme.UserBubble),
				"userBubbleText":      string(theme.UserBubbleText),
				"assistantBubble":     string(theme.AssistantBubble),
				"assistantBubbleText": string(theme.AssistantBubbleText),
			}
			for name, c := range colors {
				if c == "" {
					t.Errorf("%s color should not be empty", name)
				}
			}
		})
	}
}

func TestPrometheusTheme_BubbleColors(t *testing.T) {
	if PrometheusTheme.UserBubble != "#1976d2" || PrometheusTheme.UserBubbleText != "#ffffff" {
		t.Errorf("unexpected user bubble colors: %s/%s", PrometheusTheme.UserBubble, PrometheusTheme.UserBubbleText)
	}
	if PrometheusTheme.AssistantBubble != "#e6ecf5" || PrometheusTheme.AssistantBubbleText != "#222222" {
		t.Errorf("unexpected assistant bubble colors: %s/%s", PrometheusTheme.AssistantBubble, PrometheusTheme.AssistantBubbleText)
	}
}

func TestSetTUITheme(t *testing.T) {
	defer SetTUITheme(DefaultTUIThemeName)

	if GetTUITheme().Name != DefaultTUIThemeName {
		t.Errorf("expected default theme %s, got %s", DefaultTUIThemeName, GetTUITheme().Name)
	}

	if !SetTUITheme("nord") {
		t.Fatal("expected nord to be accepted")
	}
	if GetTUITheme().Name != "nord" {
		t.Errorf("expected nord, got %s", GetTUITheme().Name)
	}

	if SetTUITheme("no-such-theme") {
		t.Error("expected unknown theme to be rejected")
	}
	if GetTUITheme().Name != "nord" {
		t.Error("rejected theme must not change the active theme")
	}
}

func TestTUIThemeNames(t *testing.T) {
	names := TUIThemeNames()
	if len(names) != 5 {
		t.Fatalf("expected 5 themes, got %d", len(names))
	}
	if names[0] != "prometheus" {
		t.Errorf("expected prometheus first, got %s", names[0])
	}
	for _, name := range names {
		if _, ok := GetTUIThemeByName(name); !ok {
			t.Errorf("theme %s not resolvable by name", name)
		}
	}
}
