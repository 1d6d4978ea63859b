package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/unclip12/focusflow/internal/models"
	"github.com/unclip12/focusflow/internal/planner"
)

// MockKnowledgeBaseService is a mock implementation of services.KnowledgeBaseService
type MockKnowledgeBaseService struct {
	mock.Mock
}

func (m *MockKnowledgeBaseService) SyncFromEvent(ctx context.Context, event models.StudyEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockKnowledgeBaseService) AttachVideo(ctx context.Context, pageNumber, topicHint string, video models.VideoResource) error {
	args := m.Called(ctx, pageNumber, topicHint, video)
	return args.Error(0)
}

func (m *MockKnowledgeBaseService) OverwriteNotes(ctx context.Context, pageNumber, notes string) error {
	args := m.Called(ctx, pageNumber, notes)
	return args.Error(0)
}

func (m *MockKnowledgeBaseService) UpdateEntry(ctx context.Context, entry models.KnowledgeBaseEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockKnowledgeBaseService) FindByPage(ctx context.Context, pageNumber string) (*models.KnowledgeBaseEntry, error) {
	args := m.Called(ctx, pageNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KnowledgeBaseEntry), args.Error(1)
}

func (m *MockKnowledgeBaseService) List(ctx context.Context) ([]models.KnowledgeBaseEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.KnowledgeBaseEntry), args.Error(1)
}

// MockPlanService is a mock implementation of services.PlanService
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) AddItem(ctx context.Context, item models.StudyPlanItem, newVideo *models.VideoResource) (*models.StudyPlanItem, error) {
	args := m.Called(ctx, item, newVideo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudyPlanItem), args.Error(1)
}

func (m *MockPlanService) UpdateItem(ctx context.Context, item models.StudyPlanItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPlanService) Get(ctx context.Context, id string) (*models.StudyPlanItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudyPlanItem), args.Error(1)
}

func (m *MockPlanService) Visibility(ctx context.Context, today string) (planner.Visibility, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(planner.Visibility), args.Error(1)
}

func (m *MockPlanService) ApplyStudyEvent(ctx context.Context, planItemID string, eventLog models.StudyLog, notes string, completedSubTaskIDs []string, isFinished bool) error {
	args := m.Called(ctx, planItemID, eventLog, notes, completedSubTaskIDs, isFinished)
	return args.Error(0)
}

func (m *MockPlanService) AttachChecklist(ctx context.Context, planItemID string, items []string) error {
	args := m.Called(ctx, planItemID, items)
	return args.Error(0)
}
