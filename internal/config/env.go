package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/diogo/promchat/internal/models"
)

// Source names where a setting came from
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceFile    Source = "config file"
	SourceDefault Source = "default"
)

// LoadDotEnv loads KEY=value pairs from the given files into the process
// environment. Variables that are already set are not overridden.
// With no arguments it reads ".env" in the working directory.
// Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ResolveAPIURL picks the answer service endpoint.
// Precedence: flag, PROMCHAT_API_URL, config file, built-in default.
func ResolveAPIURL(flagValue string, cfg Config) (string, Source) {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v, SourceFlag
	}
	if v := strings.TrimSpace(os.Getenv(models.APIURLEnv)); v != "" {
		return v, SourceEnv
	}
	if v := strings.TrimSpace(cfg.APIURL); v != "" {
		return v, SourceFile
	}
	return models.DefaultAPIURL, SourceDefault
}

// ValidateAPIURL checks that endpoint is an absolute http(s) URL
func ValidateAPIURL(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid API URL %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid API URL %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid API URL %q: missing host", endpoint)
	}
	return nil
}
