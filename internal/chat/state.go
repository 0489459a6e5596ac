// Package chat holds the conversation state of the chat widget as an
// immutable value with pure transitions, independent of any rendering layer.
package chat

import (
	"strings"

	"github.com/diogo/promchat/internal/models"
)

// Phase is the widget's request state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingResponse
)

func (p Phase) String() string {
	if p == PhaseAwaitingResponse {
		return "awaiting-response"
	}
	return "idle"
}

// State is the conversation, the input buffer and the loading flag.
// Transitions return a new State and never modify the receiver.
type State struct {
	messages []models.Message
	input    string
	loading  bool
}

// Result is the outcome of one request to the answer service
type Result struct {
	Answer *models.Answer
	Err    error
}

// Message converts the outcome into the assistant entry to append
func (r Result) Message() models.Message {
	if r.Err != nil {
		return models.ErrorMessage(r.Err)
	}
	return r.Answer.Message()
}

// New returns the initial state: the welcome message, an empty input, idle.
func New() State {
	return State{
		messages: []models.Message{models.SystemMessage(models.WelcomeMessage)},
	}
}

// Messages returns a copy of the conversation, oldest first
func (s State) Messages() []models.Message {
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of conversation entries
func (s State) Len() int {
	return len(s.messages)
}

// Last returns the newest conversation entry
func (s State) Last() (models.Message, bool) {
	if len(s.messages) == 0 {
		return models.Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// Input returns the input buffer
func (s State) Input() string {
	return s.input
}

// Loading reports whether a request is in flight
func (s State) Loading() bool {
	return s.loading
}

// Phase returns the state machine position
func (s State) Phase() Phase {
	if s.loading {
		return PhaseAwaitingResponse
	}
	return PhaseIdle
}

// CanSubmit reports whether Submit would start a request
func (s State) CanSubmit() bool {
	return !s.loading && strings.TrimSpace(s.input) != ""
}

// WithInput binds the input buffer
func (s State) WithInput(text string) State {
	s.input = text
	return s
}

// Submit appends the input as a user message and enters the loading phase.
// It returns the question to send, untrimmed, and false when nothing was submitted.
func (s State) Submit() (State, string, bool) {
	if !s.CanSubmit() {
		return s, "", false
	}

	question := s.input
	next := s.appendMessage(models.UserMessage(question))
	next.loading = true
	return next, question, true
}

// Settle appends the outcome of the pending request, then clears the input
// and the loading flag. It is the only way out of PhaseAwaitingResponse.
func (s State) Settle(res Result) State {
	if !s.loading {
		return s
	}

	next := s.appendMessage(res.Message())
	next.input = ""
	next.loading = false
	return next
}

// appendMessage returns a state whose conversation has msg appended.
// The backing array is fresh so earlier states never observe the append.
func (s State) appendMessage(msg models.Message) State {
	msgs := make([]models.Message, len(s.messages), len(s.messages)+1)
	copy(msgs, s.messages)
	s.messages = append(msgs, msg)
	return s
}
