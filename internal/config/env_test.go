package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diogo/promchat/internal/models"
)

func TestResolveAPIURL(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		env        string
		file       string
		wantURL    string
		wantSource Source
	}{
		{"default", "", "", "", models.DefaultAPIURL, SourceDefault},
		{"config file", "", "", "http://file:8000/ask", "http://file:8000/ask", SourceFile},
		{"env beats file", "", "http://env:8000/ask", "http://file:8000/ask", "http://env:8000/ask", SourceEnv},
		{"flag beats env", "http://flag:8000/ask", "http://env:8000/ask", "http://file:8000/ask", "http://flag:8000/ask", SourceFlag},
		{"blank env ignored", "", "   ", "", models.DefaultAPIURL, SourceDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(models.APIURLEnv, tt.env)

			got, source := ResolveAPIURL(tt.flag, Config{APIURL: tt.file})
			if got != tt.wantURL {
				t.Errorf("ResolveAPIURL() url = %s, want %s", got, tt.wantURL)
			}
			if source != tt.wantSource {
				t.Errorf("ResolveAPIURL() source = %s, want %s", source, tt.wantSource)
			}
		})
	}
}

func TestValidateAPIURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"http://localhost:8000/ask", false},
		{"https://chat.example.com/ask", false},
		{"localhost:8000/ask", true},
		{"ftp://example.com/ask", true},
		{"http:///ask", true},
		{"://bad", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := ValidateAPIURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAPIURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "PROMCHAT_TEST_DOTENV_URL"
	t.Cleanup(func() { os.Unsetenv(key) })
	os.Unsetenv(key)

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=http://dotenv:8000/ask\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() returned error: %v", err)
	}
	if got := os.Getenv(key); got != "http://dotenv:8000/ask" {
		t.Errorf("Expected value from .env, got %q", got)
	}
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	const key = "PROMCHAT_TEST_DOTENV_KEEP"
	t.Setenv(key, "from-process")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() returned error: %v", err)
	}
	if got := os.Getenv(key); got != "from-process" {
		t.Errorf("Expected process env to win, got %q", got)
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.env")
	if err := LoadDotEnv(missing); err != nil {
		t.Errorf("Missing env file should not be an error, got %v", err)
	}
}

func TestLoadDotEnv_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("THIS IS NOT='closed\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	err := LoadDotEnv(path)
	if err != nil && !strings.Contains(err.Error(), "failed to load env file") {
		t.Errorf("Unexpected error text: %v", err)
	}
}
