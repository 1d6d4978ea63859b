package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/unclip12/focusflow/internal/models"
)

// MockPlanRepository is a mock implementation of repository.PlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Get(ctx context.Context, id string) (*models.StudyPlanItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudyPlanItem), args.Error(1)
}

func (m *MockPlanRepository) List(ctx context.Context) ([]models.StudyPlanItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudyPlanItem), args.Error(1)
}

func (m *MockPlanRepository) Insert(ctx context.Context, item models.StudyPlanItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPlanRepository) Update(ctx context.Context, item models.StudyPlanItem) (bool, error) {
	args := m.Called(ctx, item)
	return args.Bool(0), args.Error(1)
}
