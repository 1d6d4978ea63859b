package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unclip12/focusflow/internal/errors"
	"github.com/unclip12/focusflow/internal/models"
	"github.com/unclip12/focusflow/internal/services"
	"github.com/unclip12/focusflow/internal/testutil/mocks"
)

func TestSyncFromEvent_CreatesEntry(t *testing.T) {
	repo := new(mocks.MockKnowledgeBaseRepository)
	svc := services.NewKnowledgeBaseService(repo)

	repo.On("Get", mock.Anything, "142").Return(nil, nil)

	var saved models.KnowledgeBaseEntry
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("models.KnowledgeBaseEntry")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(models.KnowledgeBaseEntry) }).
		Return(nil)

	err := svc.SyncFromEvent(context.Background(), models.StudyEvent{
		PageNumber: "142",
		Topic:      "Cardiac physiology",
		Category:   "Physiology",
		System:     "Cardiovascular",
		AnkiTotal:  20,
		Notes:      "first pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "142", saved.PageNumber)
	assert.Equal(t, "Cardiac physiology", saved.Topic)
	assert.Equal(t, "Physiology", saved.Subject)
	assert.Equal(t, 20, saved.AnkiTotal)
	assert.Equal(t, "first pass", saved.Notes)
	assert.NotNil(t, saved.VideoLinks)
	assert.NotNil(t, saved.Tags)
}

func TestSyncFromEvent_ZeroAnkiTotalKeepsExisting(t *testing.T) {
	repo := new(mocks.MockKnowledgeBaseRepository)
	svc := services.NewKnowledgeBaseService(repo)

	existing := &models.KnowledgeBaseEntry{PageNumber: "142", AnkiTotal: 20, Notes: "old notes"}
	repo.On("Get", mock.Anything, "142").Return(existing, nil)

	var saved models.KnowledgeBaseEntry
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("models.KnowledgeBaseEntry")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(models.KnowledgeBaseEntry) }).
		Return(nil)

	err := svc.SyncFromEvent(context.Background(), models.StudyEvent{
		PageNumber: "142",
		AnkiTotal:  0,
	})

	require.NoError(t, err)
	assert.Equal(t, 20, saved.AnkiTotal, "zero total does not clobber a known deck size")
}

func TestSyncFromEvent_EmptyNotesKeepExisting(t *testing.T) {
	repo := new(mocks.MockKnowledgeBaseRepository)
	svc := services.NewKnowledgeBaseService(repo)

	existing := &models.KnowledgeBaseEntry{PageNumber: "142", Notes: "keep these"}
	repo.On("Get", mock.Anything, "142").Return(existing, nil)

	var saved models.KnowledgeBaseEntry
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("models.KnowledgeBaseEntry")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(models.KnowledgeBaseEntry) }).
		Return(nil)

	err := svc.SyncFromEvent(context.Background(), models.StudyEvent{
		PageNumber: "142",
		Notes:      "",
	})

	require.NoError(t, err)
	assert.Equal(t, "keep these", saved.Notes)
}

func TestSyncFromEvent_VideoLinksUntouched(t *testing.T) {
	repo := new(mocks.MockKnowledgeBaseRepository)
	svc := services.NewKnowledgeBaseService(repo)

	existing := &models.KnowledgeBaseEntry{
		PageNumber: "142",
		VideoLinks: []models.VideoResource{{Title: "Lecture 1", URL: "https://example.com/v1"}},
		Tags:       []string{"high-yield"},
	}
	repo.On("Get", mock.Anything, "142").Return(existing, nil)

	var saved models.KnowledgeBaseEntry
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("models.KnowledgeBaseEntry")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(models.KnowledgeBaseEntry) }).
		Return(nil)

	err := svc.SyncFromEvent(context.Background(), models.StudyEvent{PageNumber: "142"})

	require.NoError(t, err)
	assert.Len(t, saved.VideoLinks, 1)
	assert.Equal(t, []string{"high-yield"}, saved.Tags)
}

func TestAttachVideo_CreatesEntryWithDefaults(t *testing.T) {
	repo := new(mocks.MockKnowledgeBaseRepository)
	svc := services.NewKnowledgeBaseService(repo)

	repo.On("Get", mock.Anything, "200").Return(nil, nil)

	var saved models.KnowledgeBaseEntry
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("models.KnowledgeBaseEntry")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(models.KnowledgeBaseEntry) }).
		Return(nil)

	video := models.VideoResource{Title: "Renal intro", URL: "https://example.com/renal"}
	err := svc.AttachVideo(context.Background(), "200", "Renal", video)

	require.NoError(t, err)
	assert.Equal(t, models.DefaultSubject, saved.Subject)
	assert.Equal(t, models.DefaultSystem, saved.System)
	assert.Equal(t, "Renal", saved.Topic)
	require.Len(t, saved.VideoLinks, 1)
	assert.Equal(t, video, saved.VideoLinks[0])
}

func TestAttachVideo_AppendsToExisting(t *testing.T) {
	repo := new(mocks.MockKnowledgeBaseRepository)
	svc := services.NewKnowledgeBaseService(repo)

	existing := &models.KnowledgeBaseEntry{
		PageNumber: "200",
		VideoLinks: []models.VideoResource{{Title: "First", URL: "https://example.com/1"}},
	}
	repo.On("Get", mock.Anything, "200").Return(existing, nil)

	var saved models.KnowledgeBaseEntry
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("models.KnowledgeBaseEntry")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(models.KnowledgeBaseEntry) }).
		Return(nil)

	err := svc.AttachVideo(context.Background(), "200", "", models.VideoResource{Title: "Second", URL: "https://example.com/2"})

	require.NoError(t, err)
	require.Len(t, saved.VideoLinks, 2)
	assert.Equal(t, "Second", saved.VideoLinks[1].Title)
}

func TestOverwriteNotes_MissingEntryIsNoOp(t *testing.T) {
	repo := new(mocks.MockKnowledgeBaseRepository)
	svc := services.NewKnowledgeBaseService(repo)

	repo.On("Get", mock.Anything, "999").Return(nil, nil)

	err := svc.OverwriteNotes(context.Background(), "999", "orphan notes")

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUpdateEntry_MissingEntryNotFound(t *testing.T) {
	repo := new(mocks.MockKnowledgeBaseRepository)
	svc := services.NewKnowledgeBaseService(repo)

	repo.On("Get", mock.Anything, "999").Return(nil, nil)

	err := svc.UpdateEntry(context.Background(), models.KnowledgeBaseEntry{PageNumber: "999"})

	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
}

func TestUpdateEntry_ReplacesWholeEntry(t *testing.T) {
	repo := new(mocks.MockKnowledgeBaseRepository)
	svc := services.NewKnowledgeBaseService(repo)

	existing := &models.KnowledgeBaseEntry{PageNumber: "142", Notes: "old", AnkiTotal: 10}
	repo.On("Get", mock.Anything, "142").Return(existing, nil)

	updated := models.KnowledgeBaseEntry{
		PageNumber: "142",
		Topic:      "Edited topic",
		Tags:       []string{"redo"},
	}
	repo.On("Upsert", mock.Anything, updated).Return(nil)

	err := svc.UpdateEntry(context.Background(), updated)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
