package api

import (
	"context"
	"sync"

	"github.com/diogo/promchat/internal/models"
)

// MockAnswerService is a mock implementation of AnswerService for testing
type MockAnswerService struct {
	// Mock return values
	AnswerVal *models.Answer
	AskErr    error
	AskFunc   func(ctx context.Context, question string) (*models.Answer, error)

	// Call recorders
	mu           sync.Mutex
	calls        int
	lastQuestion string
}

// Ensure MockAnswerService implements AnswerService
var _ AnswerService = (*MockAnswerService)(nil)

func (m *MockAnswerService) Ask(ctx context.Context, question string) (*models.Answer, error) {
	m.mu.Lock()
	m.calls++
	m.lastQuestion = question
	m.mu.Unlock()

	if m.AskFunc != nil {
		return m.AskFunc(ctx, question)
	}
	return m.AnswerVal, m.AskErr
}

// Calls returns how many times Ask was invoked
func (m *MockAnswerService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastQuestion returns the question passed to the latest Ask call
func (m *MockAnswerService) LastQuestion() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastQuestion
}
