package models

import "encoding/json"

// Answer is the parsed response of the answer service.
// Every field is optional on the wire.
type Answer struct {
	Answer string
	PromQL string
	Result json.RawMessage
}

// Content returns the text to display, falling back to NoAnswer
func (a *Answer) Content() string {
	if a == nil || a.Answer == "" {
		return NoAnswer
	}
	return a.Answer
}

// HasResult reports whether the service returned a result payload
func (a *Answer) HasResult() bool {
	return a != nil && len(a.Result) > 0 && string(a.Result) != "null"
}

// Message converts the answer into an assistant conversation entry
func (a *Answer) Message() Message {
	msg := Message{Role: RoleAssistant, Content: a.Content()}
	if a != nil {
		msg.PromQL = a.PromQL
		msg.Raw = a.Result
	}
	return msg
}
