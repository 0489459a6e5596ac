package chat

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/diogo/promchat/internal/models"
)

func TestNew(t *testing.T) {
	s := New()

	if s.Len() != 1 {
		t.Fatalf("Expected 1 message, got %d", s.Len())
	}
	first := s.Messages()[0]
	if first.Role != models.RoleSystem {
		t.Errorf("Expected system role, got %s", first.Role)
	}
	if first.Content != models.WelcomeMessage {
		t.Errorf("Expected welcome message, got %q", first.Content)
	}
	if s.Loading() {
		t.Error("New state should not be loading")
	}
	if s.Input() != "" {
		t.Errorf("Expected empty input, got %q", s.Input())
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Expected idle phase, got %s", s.Phase())
	}
}

func TestSubmit_EmptyInput(t *testing.T) {
	inputs := []string{"", " ", "\n", "\t  \n "}

	for _, in := range inputs {
		t.Run("input "+strings.ReplaceAll(in, "\n", `\n`), func(t *testing.T) {
			s := New().WithInput(in)
			next, question, ok := s.Submit()

			if ok {
				t.Error("Submit should not accept whitespace-only input")
			}
			if question != "" {
				t.Errorf("Expected no question, got %q", question)
			}
			if next.Len() != 1 {
				t.Errorf("Expected no message to be appended, got %d messages", next.Len())
			}
			if next.Loading() {
				t.Error("Loading should stay false")
			}
			if next.Input() != in {
				t.Errorf("Input should be left untouched, got %q", next.Input())
			}
		})
	}
}

func TestSubmit_AppendsUserMessageBeforeSettle(t *testing.T) {
	s := New().WithInput("  how many targets are up?\n")

	next, question, ok := s.Submit()
	if !ok {
		t.Fatal("Submit should accept non-empty input")
	}
	if question != "  how many targets are up?\n" {
		t.Errorf("Question should be the untrimmed input, got %q", question)
	}
	if next.Len() != 2 {
		t.Fatalf("Expected 2 messages, got %d", next.Len())
	}
	last, _ := next.Last()
	if last.Role != models.RoleUser || last.Content != question {
		t.Errorf("Unexpected user message: %+v", last)
	}
	if !next.Loading() {
		t.Error("Loading should be true while awaiting a response")
	}
	if next.Phase() != PhaseAwaitingResponse {
		t.Errorf("Expected awaiting-response phase, got %s", next.Phase())
	}
	if next.Input() != question {
		t.Error("Input should only be cleared on settlement")
	}
}

func TestSubmit_BlockedWhileLoading(t *testing.T) {
	s, _, _ := New().WithInput("first").Submit()

	next, question, ok := s.WithInput("second").Submit()
	if ok {
		t.Error("Submit should be rejected while a request is pending")
	}
	if question != "" {
		t.Errorf("Expected no question, got %q", question)
	}
	if next.Len() != s.Len() {
		t.Errorf("Expected no new message, got %d", next.Len())
	}
}

func TestSettle_Success(t *testing.T) {
	s, _, _ := New().WithInput("q").Submit()

	next := s.Settle(Result{Answer: &models.Answer{Answer: "X"}})

	if next.Len() != 3 {
		t.Fatalf("Expected 3 messages, got %d", next.Len())
	}
	last, _ := next.Last()
	if last.Role != models.RoleAssistant {
		t.Errorf("Expected assistant role, got %s", last.Role)
	}
	if last.Content != "X" {
		t.Errorf("Expected content X, got %q", last.Content)
	}
	if next.Loading() {
		t.Error("Loading should be false after settlement")
	}
	if next.Input() != "" {
		t.Errorf("Input should be cleared, got %q", next.Input())
	}
}

func TestSettle_NoAnswerField(t *testing.T) {
	s, _, _ := New().WithInput("q").Submit()

	next := s.Settle(Result{Answer: &models.Answer{}})

	last, _ := next.Last()
	if last.Content != "(No answer)" {
		t.Errorf("Expected (No answer), got %q", last.Content)
	}
}

func TestSettle_PromQLAndRaw(t *testing.T) {
	s, _, _ := New().WithInput("q").Submit()

	next := s.Settle(Result{Answer: &models.Answer{
		Answer: "ok",
		PromQL: `up{job="x"}`,
		Result: json.RawMessage(`[]`),
	}})

	last, _ := next.Last()
	if last.PromQL != `up{job="x"}` {
		t.Errorf("Expected promql to be carried, got %q", last.PromQL)
	}
	if string(last.Raw) != "[]" {
		t.Errorf("Expected raw result to be carried, got %s", last.Raw)
	}
}

func TestSettle_Failure(t *testing.T) {
	s, _, _ := New().WithInput("q").Submit()

	next := s.Settle(Result{Err: errors.New("connection refused")})

	if next.Len() != 3 {
		t.Fatalf("Expected exactly one appended assistant message, got %d messages", next.Len())
	}
	last, _ := next.Last()
	if last.Role != models.RoleAssistant {
		t.Errorf("Expected assistant role, got %s", last.Role)
	}
	if !strings.HasPrefix(last.Content, "Error: ") {
		t.Errorf("Expected Error: prefix, got %q", last.Content)
	}
	if last.HasPromQL() {
		t.Error("Error message should not carry promql")
	}
	if next.Loading() {
		t.Error("Loading should be false after failure")
	}
	if next.Input() != "" {
		t.Error("Input should be cleared after failure")
	}
}

func TestSettle_IdleIsNoop(t *testing.T) {
	s := New().WithInput("draft")

	next := s.Settle(Result{Answer: &models.Answer{Answer: "stray"}})

	if next.Len() != 1 {
		t.Errorf("Expected settle on idle state to be ignored, got %d messages", next.Len())
	}
	if next.Input() != "draft" {
		t.Errorf("Expected input to be kept, got %q", next.Input())
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	base := New().WithInput("q")

	submitted, _, _ := base.Submit()
	if base.Len() != 1 || base.Loading() {
		t.Error("Submit modified its receiver")
	}

	settled := submitted.Settle(Result{Answer: &models.Answer{Answer: "a"}})
	if submitted.Len() != 2 || !submitted.Loading() || submitted.Input() != "q" {
		t.Error("Settle modified its receiver")
	}

	// Two settlements from the same state must not share a backing array
	other := submitted.Settle(Result{Err: errors.New("e")})
	a, _ := settled.Last()
	b, _ := other.Last()
	if a.Content == b.Content {
		t.Error("Sibling states share conversation storage")
	}

	msgs := settled.Messages()
	msgs[0].Content = "changed"
	if settled.Messages()[0].Content != models.WelcomeMessage {
		t.Error("Messages() should return a copy")
	}
}

func TestWelcomeMessageSurvivesConversation(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		var ok bool
		s, _, ok = s.WithInput("question").Submit()
		if !ok {
			t.Fatalf("Submit %d rejected", i)
		}
		if i%2 == 0 {
			s = s.Settle(Result{Answer: &models.Answer{Answer: "answer"}})
		} else {
			s = s.Settle(Result{Err: errors.New("boom")})
		}
	}

	if s.Len() != 11 {
		t.Errorf("Expected 11 messages, got %d", s.Len())
	}
	first := s.Messages()[0]
	if first.Role != models.RoleSystem || first.Content != models.WelcomeMessage {
		t.Errorf("Welcome message changed: %+v", first)
	}
}

func TestLoadingOnlyBetweenSubmitAndSettle(t *testing.T) {
	s := New()
	if s.Loading() {
		t.Error("Loading before submit")
	}

	s = s.WithInput("q")
	if s.Loading() {
		t.Error("Loading after typing")
	}

	s, _, _ = s.Submit()
	if !s.Loading() {
		t.Error("Not loading after submit")
	}

	s = s.Settle(Result{Answer: &models.Answer{}})
	if s.Loading() {
		t.Error("Loading after settle")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseIdle.String() != "idle" {
		t.Errorf("Unexpected %s", PhaseIdle)
	}
	if PhaseAwaitingResponse.String() != "awaiting-response" {
		t.Errorf("Unexpected %s", PhaseAwaitingResponse)
	}
}
