package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/unclip12/focusflow/internal/models"
)

// MockKnowledgeBaseRepository is a mock implementation of repository.KnowledgeBaseRepository
type MockKnowledgeBaseRepository struct {
	mock.Mock
}

func (m *MockKnowledgeBaseRepository) Get(ctx context.Context, pageNumber string) (*models.KnowledgeBaseEntry, error) {
	args := m.Called(ctx, pageNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KnowledgeBaseEntry), args.Error(1)
}

func (m *MockKnowledgeBaseRepository) List(ctx context.Context) ([]models.KnowledgeBaseEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.KnowledgeBaseEntry), args.Error(1)
}

func (m *MockKnowledgeBaseRepository) Upsert(ctx context.Context, entry models.KnowledgeBaseEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
