package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGeminiClient is a mock implementation of gemini.ClientInterface
type MockGeminiClient struct {
	mock.Mock
}

func (m *MockGeminiClient) GenerateChecklist(ctx context.Context, topic string, durationMinutes int) ([]string, error) {
	args := m.Called(ctx, topic, durationMinutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
