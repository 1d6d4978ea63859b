package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/unclip12/focusflow/internal/errors"
	"github.com/unclip12/focusflow/internal/logger"
	"github.com/unclip12/focusflow/internal/models"
	"github.com/unclip12/focusflow/internal/repository"
	"github.com/unclip12/focusflow/internal/scheduler"
)

// StudyService is the ledger entry point. A study event flows through the
// session ledger first, then the knowledge base synchronizer, then (only if
// linked) the plan reconciler — strictly in that order, never interleaved
// with another event.
type StudyService interface {
	RecordStudyEvent(ctx context.Context, event models.StudyEvent) (*models.StudySession, error)
	RecordRevision(ctx context.Context, sessionID string, start, end time.Time, notesOverride *string, todoOverride []models.ToDoItem) (*models.StudySession, error)
	ListSessions(ctx context.Context, filter string) ([]models.StudySession, error)
	GetSession(ctx context.Context, id string) (*models.StudySession, error)
	ToggleTask(ctx context.Context, sessionID, taskID string) (*models.StudySession, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type studyService struct {
	sessions repository.SessionRepository
	kb       KnowledgeBaseService
	plans    PlanService
}

// NewStudyService creates a new StudyService
func NewStudyService(sessions repository.SessionRepository, kb KnowledgeBaseService, plans PlanService) StudyService {
	return &studyService{sessions: sessions, kb: kb, plans: plans}
}

func durationMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// RecordStudyEvent creates or updates the session for the event's page,
// recomputes its revision schedule, syncs the knowledge base, and reconciles
// the linked plan item if any. All validation and scheduling happen before
// the first write, so a rejected event mutates nothing.
func (s *studyService) RecordStudyEvent(ctx context.Context, event models.StudyEvent) (*models.StudySession, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording study event: page_number=%s, topic=%s", event.PageNumber, event.Topic)

	if event.PageNumber == "" {
		return nil, errors.NewValidationError("pageNumber", "must not be empty")
	}

	duration := durationMinutes(event.StartTime, event.EndTime)
	if duration <= 0 {
		return nil, errors.NewValidationError("endTime", "must be after startTime")
	}

	existing, err := s.sessions.GetByPage(ctx, event.PageNumber)
	if err != nil {
		log.Error("failed to look up session: %v", err)
		return nil, errors.NewInternalError(err)
	}

	now := time.Now()
	newLog := models.StudyLog{
		ID:              uuid.NewString(),
		Date:            now,
		StartTime:       event.StartTime,
		EndTime:         event.EndTime,
		DurationMinutes: duration,
		Type:            models.LogTypeInitial,
	}
	ankiDone := event.AnkiCovered >= event.AnkiTotal && event.AnkiTotal > 0

	var session *models.StudySession
	if existing == nil {
		idx, due, err := scheduler.Next(event.EndTime, event.RevisionIntervals, 0, nil, now)
		if err != nil {
			return nil, err
		}

		session = &models.StudySession{
			ID:                   uuid.NewString(),
			Topic:                event.Topic,
			PageNumber:           event.PageNumber,
			Category:             event.Category,
			System:               event.System,
			RevisionIntervals:    event.RevisionIntervals,
			CurrentIntervalIndex: idx,
			NextRevisionDate:     due,
			AnkiDone:             ankiDone,
			AnkiTotal:            event.AnkiTotal,
			AnkiCovered:          event.AnkiCovered,
			History:              []models.StudyLog{newLog},
			Notes:                event.Notes,
			ToDoList:             event.ToDoList,
			LastStudied:          newLog.StartTime,
			CreatedAt:            now,
		}

		if err := s.sessions.Insert(ctx, *session); err != nil {
			log.Error("failed to insert session: %v", err)
			return nil, errors.NewInternalError(err)
		}
		log.Info("session created: id=%s, page_number=%s, next_revision=%v", session.ID, session.PageNumber, due)
	} else {
		// The pre-event schedule decides whether the ladder advances; the
		// event's end time anchors the new due date.
		idx, due, err := scheduler.Next(event.EndTime, existing.RevisionIntervals, existing.CurrentIntervalIndex, existing.NextRevisionDate, now)
		if err != nil {
			return nil, err
		}

		existing.Topic = event.Topic
		existing.Notes = event.Notes
		existing.AnkiCovered = event.AnkiCovered
		existing.AnkiTotal = event.AnkiTotal
		existing.AnkiDone = ankiDone
		existing.ToDoList = event.ToDoList
		existing.History = append([]models.StudyLog{newLog}, existing.History...)
		existing.CurrentIntervalIndex = idx
		existing.NextRevisionDate = due
		existing.LastStudied = newLog.StartTime
		session = existing

		if err := s.sessions.Update(ctx, *session); err != nil {
			log.Error("failed to update session: %v", err)
			return nil, errors.NewInternalError(err)
		}
		log.Info("session updated: id=%s, page_number=%s, interval_index=%d", session.ID, session.PageNumber, idx)
	}

	if err := s.kb.SyncFromEvent(ctx, event); err != nil {
		log.Error("knowledge base sync failed: %v", err)
		return nil, err
	}

	if event.PlanItemID != "" {
		if err := s.plans.ApplyStudyEvent(ctx, event.PlanItemID, newLog, event.Notes, event.CompletedSubTaskIDs, event.IsFinished); err != nil {
			log.Error("plan reconciliation failed: %v", err)
			return nil, err
		}
	}

	return session, nil
}

// RecordRevision logs a pure revision against an existing session and
// advances the interval ladder unconditionally. Notes and to-do overrides
// apply only when provided; overridden notes also propagate to the knowledge
// base entry for the page.
func (s *studyService) RecordRevision(ctx context.Context, sessionID string, start, end time.Time, notesOverride *string, todoOverride []models.ToDoItem) (*models.StudySession, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording revision: session_id=%s", sessionID)

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		log.Error("failed to look up session: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if session == nil {
		return nil, errors.NewNotFoundError("session", sessionID)
	}

	duration := durationMinutes(start, end)
	if duration <= 0 {
		return nil, errors.NewValidationError("endTime", "must be after startTime")
	}

	idx, due, err := scheduler.Advance(end, session.RevisionIntervals, session.CurrentIntervalIndex)
	if err != nil {
		return nil, err
	}

	newLog := models.StudyLog{
		ID:              uuid.NewString(),
		Date:            time.Now(),
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: duration,
		Type:            models.LogTypeRevision,
	}

	session.History = append([]models.StudyLog{newLog}, session.History...)
	session.CurrentIntervalIndex = idx
	session.NextRevisionDate = due
	session.LastStudied = end
	if notesOverride != nil {
		session.Notes = *notesOverride
	}
	if todoOverride != nil {
		session.ToDoList = todoOverride
	}

	if err := s.sessions.Update(ctx, *session); err != nil {
		log.Error("failed to update session: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if due == nil {
		log.Info("session mastered: id=%s, page_number=%s", session.ID, session.PageNumber)
	} else {
		log.Info("revision logged: id=%s, interval_index=%d, next_revision=%v", session.ID, idx, due)
	}

	if notesOverride != nil && *notesOverride != "" {
		if err := s.kb.OverwriteNotes(ctx, session.PageNumber, *notesOverride); err != nil {
			log.Error("failed to propagate notes to knowledge base: %v", err)
			return nil, err
		}
	}

	return session, nil
}

func (s *studyService) ListSessions(ctx context.Context, filter string) ([]models.StudySession, error) {
	sessions, err := s.sessions.List(ctx, models.SessionFilter{Filter: filter, Now: time.Now()})
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return sessions, nil
}

func (s *studyService) GetSession(ctx context.Context, id string) (*models.StudySession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if session == nil {
		return nil, errors.NewNotFoundError("session", id)
	}
	return session, nil
}

func (s *studyService) ToggleTask(ctx context.Context, sessionID, taskID string) (*models.StudySession, error) {
	log := logger.FromContext(ctx)
	log.Debug("toggling task: session_id=%s, task_id=%s", sessionID, taskID)

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if session == nil {
		return nil, errors.NewNotFoundError("session", sessionID)
	}

	found := false
	for i := range session.ToDoList {
		if session.ToDoList[i].ID == taskID {
			session.ToDoList[i].Done = !session.ToDoList[i].Done
			found = true
			break
		}
	}
	if !found {
		return nil, errors.NewNotFoundError("task", taskID)
	}

	if err := s.sessions.Update(ctx, *session); err != nil {
		return nil, errors.NewInternalError(err)
	}
	return session, nil
}

func (s *studyService) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting session: id=%s", sessionID)

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if session == nil {
		return errors.NewNotFoundError("session", sessionID)
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return errors.NewInternalError(err)
	}
	log.Info("session deleted: id=%s, page_number=%s", sessionID, session.PageNumber)
	return nil
}
