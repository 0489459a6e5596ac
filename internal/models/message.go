package models

import "encoding/json"

// Role identifies who authored a conversation entry
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Label returns the prefix shown before a message's content
func (r Role) Label() string {
	switch r {
	case RoleUser:
		return "You: "
	case RoleAssistant:
		return "Prometheus: "
	default:
		return ""
	}
}

// String implements fmt.Stringer
func (r Role) String() string {
	return string(r)
}

// Message is one conversation entry
type Message struct {
	Role    Role
	Content string
	PromQL  string          // empty when the answer carried no query
	Raw     json.RawMessage // raw result payload, kept but not displayed
}

// HasPromQL reports whether the message carries a query annotation
func (m Message) HasPromQL() bool {
	return m.PromQL != ""
}

// SystemMessage builds the greeting entry
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds an entry for a submitted question
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// ErrorMessage builds the assistant entry shown when a question fails
func ErrorMessage(err error) Message {
	desc := "unknown error"
	if err != nil && err.Error() != "" {
		desc = err.Error()
	}
	return Message{Role: RoleAssistant, Content: ErrorPrefix + desc}
}
