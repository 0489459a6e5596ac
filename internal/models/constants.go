// Package models contains data types and constants for the Prometheus chat client.
package models

// Answer service defaults
const (
	// DefaultAPIURL is used when no endpoint is configured anywhere
	DefaultAPIURL = "http://localhost:8000/ask"

	// APIURLEnv selects the answer service endpoint
	APIURLEnv = "PROMCHAT_API_URL"
)

// Fixed conversation strings
const (
	WelcomeMessage = "Welcome! Ask me anything about your Prometheus cluster."
	NoAnswer       = "(No answer)"
	ErrorPrefix    = "Error: "
	ThinkingText   = "Prometheus is thinking..."
	DisclaimerText = "This is a demo chat for Prometheus LLM API. Data is not stored."
)

// DefaultHeaders returns the headers sent with every question
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
}
