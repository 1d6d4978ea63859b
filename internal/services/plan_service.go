package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/unclip12/focusflow/internal/errors"
	"github.com/unclip12/focusflow/internal/logger"
	"github.com/unclip12/focusflow/internal/models"
	"github.com/unclip12/focusflow/internal/planner"
	"github.com/unclip12/focusflow/internal/repository"
)

// PlanService owns the day-scoped study plan and is its only mutator.
// Linkage between a study event and a plan item is transient: the caller
// passes the item's id, nothing is persisted on the session.
type PlanService interface {
	AddItem(ctx context.Context, item models.StudyPlanItem, newVideo *models.VideoResource) (*models.StudyPlanItem, error)
	UpdateItem(ctx context.Context, item models.StudyPlanItem) error
	Get(ctx context.Context, id string) (*models.StudyPlanItem, error)
	Visibility(ctx context.Context, today string) (planner.Visibility, error)
	ApplyStudyEvent(ctx context.Context, planItemID string, eventLog models.StudyLog, notes string, completedSubTaskIDs []string, isFinished bool) error
	AttachChecklist(ctx context.Context, planItemID string, items []string) error
}

type planService struct {
	repo repository.PlanRepository
	kb   KnowledgeBaseService
}

// NewPlanService creates a new PlanService
func NewPlanService(repo repository.PlanRepository, kb KnowledgeBaseService) PlanService {
	return &planService{repo: repo, kb: kb}
}

func (s *planService) AddItem(ctx context.Context, item models.StudyPlanItem, newVideo *models.VideoResource) (*models.StudyPlanItem, error) {
	log := logger.FromContext(ctx)

	if _, err := time.Parse("2006-01-02", item.Date); err != nil {
		return nil, errors.NewValidationError("date", "must be a YYYY-MM-DD calendar day")
	}
	if item.Type == "" {
		item.Type = models.PlanTypePage
	}
	if item.Type != models.PlanTypePage && item.Type != models.PlanTypeVideo {
		return nil, errors.NewValidationError("type", "must be PAGE or VIDEO")
	}

	item.ID = uuid.NewString()
	log.Debug("adding plan item: id=%s, date=%s, page_number=%s", item.ID, item.Date, item.PageNumber)

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, errors.NewInternalError(err)
	}

	if newVideo != nil && item.PageNumber != "" {
		if err := s.kb.AttachVideo(ctx, item.PageNumber, item.Topic, *newVideo); err != nil {
			return nil, err
		}
	}
	return &item, nil
}

func (s *planService) UpdateItem(ctx context.Context, item models.StudyPlanItem) error {
	log := logger.FromContext(ctx)
	log.Debug("updating plan item: id=%s", item.ID)

	if item.ID == "" {
		return errors.NewValidationError("id", "must not be empty")
	}

	found, err := s.repo.Update(ctx, item)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if !found {
		return errors.NewNotFoundError("plan item", item.ID)
	}
	return nil
}

func (s *planService) Get(ctx context.Context, id string) (*models.StudyPlanItem, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return item, nil
}

func (s *planService) Visibility(ctx context.Context, today string) (planner.Visibility, error) {
	log := logger.FromContext(ctx)
	log.Debug("recomputing plan visibility: today=%s", today)

	items, err := s.repo.List(ctx)
	if err != nil {
		return planner.Visibility{}, errors.NewInternalError(err)
	}
	return planner.Recompute(items, today), nil
}

// ApplyStudyEvent reconciles a linked plan item with a recorded study event:
// a plan log is appended, the event's duration accrues to totalMinutesSpent,
// every subtask's done flag is overwritten by membership in the completion
// set, and the completion flag is set from the event. A missing plan item is
// a benign no-op: items may be legitimately deleted between linkage and
// completion.
func (s *planService) ApplyStudyEvent(ctx context.Context, planItemID string, eventLog models.StudyLog, notes string, completedSubTaskIDs []string, isFinished bool) error {
	log := logger.FromContext(ctx)

	item, err := s.repo.Get(ctx, planItemID)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if item == nil {
		log.Debug("linked plan item gone, skipping reconciliation: id=%s", planItemID)
		return nil
	}

	item.Logs = append(item.Logs, models.PlanLog{
		ID:              uuid.NewString(),
		Date:            eventLog.Date,
		DurationMinutes: eventLog.DurationMinutes,
		Notes:           notes,
	})
	item.TotalMinutesSpent += eventLog.DurationMinutes

	completed := make(map[string]bool, len(completedSubTaskIDs))
	for _, id := range completedSubTaskIDs {
		completed[id] = true
	}
	// Full overwrite: unchecking a subtask in the triggering form must land
	// here as unchecked.
	for i := range item.SubTasks {
		item.SubTasks[i].Done = completed[item.SubTasks[i].ID]
	}

	item.IsCompleted = isFinished

	found, err := s.repo.Update(ctx, *item)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if !found {
		log.Debug("plan item deleted mid-reconciliation: id=%s", planItemID)
	}
	log.Debug("plan item reconciled: id=%s, total_minutes=%d, completed=%t", item.ID, item.TotalMinutesSpent, item.IsCompleted)
	return nil
}

// AttachChecklist appends generated checklist items as fresh unchecked
// subtasks. A missing plan item is a benign no-op, matching the reconciler.
func (s *planService) AttachChecklist(ctx context.Context, planItemID string, items []string) error {
	log := logger.FromContext(ctx)

	item, err := s.repo.Get(ctx, planItemID)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if item == nil {
		log.Debug("plan item gone, dropping generated checklist: id=%s", planItemID)
		return nil
	}

	for _, text := range items {
		item.SubTasks = append(item.SubTasks, models.ToDoItem{
			ID:   uuid.NewString(),
			Text: text,
			Done: false,
		})
	}

	if _, err := s.repo.Update(ctx, *item); err != nil {
		return errors.NewInternalError(err)
	}
	log.Info("attached %d checklist items to plan item %s", len(items), planItemID)
	return nil
}
