package services

import (
	"context"

	"github.com/unclip12/focusflow/internal/errors"
	"github.com/unclip12/focusflow/internal/logger"
	"github.com/unclip12/focusflow/internal/models"
	"github.com/unclip12/focusflow/internal/repository"
)

// KnowledgeBaseService keeps the page-indexed reference collection aligned
// with metadata discovered through study events and planning. It is the only
// mutator of the knowledge base collection.
type KnowledgeBaseService interface {
	SyncFromEvent(ctx context.Context, event models.StudyEvent) error
	AttachVideo(ctx context.Context, pageNumber, topicHint string, video models.VideoResource) error
	OverwriteNotes(ctx context.Context, pageNumber, notes string) error
	UpdateEntry(ctx context.Context, entry models.KnowledgeBaseEntry) error
	FindByPage(ctx context.Context, pageNumber string) (*models.KnowledgeBaseEntry, error)
	List(ctx context.Context) ([]models.KnowledgeBaseEntry, error)
}

type knowledgeBaseService struct {
	repo repository.KnowledgeBaseRepository
}

// NewKnowledgeBaseService creates a new KnowledgeBaseService
func NewKnowledgeBaseService(repo repository.KnowledgeBaseRepository) KnowledgeBaseService {
	return &knowledgeBaseService{repo: repo}
}

// SyncFromEvent upserts the entry for the event's page. Topic, subject and
// system are overwritten unconditionally; ankiTotal only when the incoming
// value is nonzero; notes only when non-empty. Video links and tags are never
// touched on this path.
func (s *knowledgeBaseService) SyncFromEvent(ctx context.Context, event models.StudyEvent) error {
	log := logger.FromContext(ctx)
	log.Debug("syncing knowledge base: page_number=%s", event.PageNumber)

	existing, err := s.repo.Get(ctx, event.PageNumber)
	if err != nil {
		return errors.NewInternalError(err)
	}

	if existing != nil {
		existing.Topic = event.Topic
		existing.Subject = event.Category
		existing.System = event.System
		if event.AnkiTotal != 0 {
			existing.AnkiTotal = event.AnkiTotal
		}
		if event.Notes != "" {
			existing.Notes = event.Notes
		}
		if err := s.repo.Upsert(ctx, *existing); err != nil {
			return errors.NewInternalError(err)
		}
		return nil
	}

	entry := models.KnowledgeBaseEntry{
		PageNumber: event.PageNumber,
		Topic:      event.Topic,
		Subject:    event.Category,
		System:     event.System,
		AnkiTotal:  event.AnkiTotal,
		VideoLinks: []models.VideoResource{},
		Tags:       []string{},
		Notes:      event.Notes,
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

// AttachVideo adds a video resource to the page's entry, creating the entry
// with generic defaults when planning references a page before any study
// event. Appends without dedup.
func (s *knowledgeBaseService) AttachVideo(ctx context.Context, pageNumber, topicHint string, video models.VideoResource) error {
	log := logger.FromContext(ctx)
	log.Debug("attaching video: page_number=%s, url=%s", pageNumber, video.URL)

	existing, err := s.repo.Get(ctx, pageNumber)
	if err != nil {
		return errors.NewInternalError(err)
	}

	if existing != nil {
		existing.VideoLinks = append(existing.VideoLinks, video)
		if err := s.repo.Upsert(ctx, *existing); err != nil {
			return errors.NewInternalError(err)
		}
		return nil
	}

	entry := models.KnowledgeBaseEntry{
		PageNumber: pageNumber,
		Topic:      topicHint,
		Subject:    models.DefaultSubject,
		System:     models.DefaultSystem,
		VideoLinks: []models.VideoResource{video},
		Tags:       []string{},
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

// OverwriteNotes replaces the notes for an existing page entry. Pages without
// an entry are skipped: revision notes only propagate to pages already in
// the knowledge base.
func (s *knowledgeBaseService) OverwriteNotes(ctx context.Context, pageNumber, notes string) error {
	existing, err := s.repo.Get(ctx, pageNumber)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if existing == nil {
		logger.FromContext(ctx).Debug("no knowledge base entry for notes propagation: page_number=%s", pageNumber)
		return nil
	}

	existing.Notes = notes
	if err := s.repo.Upsert(ctx, *existing); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

// UpdateEntry is the caller-facing full replacement of one entry.
func (s *knowledgeBaseService) UpdateEntry(ctx context.Context, entry models.KnowledgeBaseEntry) error {
	if entry.PageNumber == "" {
		return errors.NewValidationError("pageNumber", "must not be empty")
	}

	existing, err := s.repo.Get(ctx, entry.PageNumber)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if existing == nil {
		return errors.NewNotFoundError("knowledge base entry", entry.PageNumber)
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *knowledgeBaseService) FindByPage(ctx context.Context, pageNumber string) (*models.KnowledgeBaseEntry, error) {
	entry, err := s.repo.Get(ctx, pageNumber)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return entry, nil
}

func (s *knowledgeBaseService) List(ctx context.Context) ([]models.KnowledgeBaseEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return entries, nil
}
