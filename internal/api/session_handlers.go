package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/unclip12/focusflow/internal/logger"
	"github.com/unclip12/focusflow/internal/models"
)

func (s *Server) handleRecordStudyEvent(w http.ResponseWriter, r *http.Request) {
	var event models.StudyEvent
	if err := decodeJSON(r, &event); err != nil {
		handleError(w, r, err)
		return
	}

	// Absent ladder means "use the default"; an explicit empty array is a
	// configuration error and falls through to the scheduler.
	if event.RevisionIntervals == nil {
		event.RevisionIntervals = models.DefaultIntervals
	}

	session, err := s.StudyService.RecordStudyEvent(r.Context(), event)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	switch filter {
	case models.FilterAll, models.FilterDueToday, models.FilterUpcoming, models.FilterMastered:
	default:
		filter = models.FilterAll
	}

	sessions, err := s.StudyService.ListSessions(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []models.StudySession{}
	}
	respondJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.StudyService.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.StudyService.DeleteSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type revisionRequest struct {
	StartTime time.Time         `json:"startTime"`
	EndTime   time.Time         `json:"endTime"`
	Notes     *string           `json:"notes"`
	ToDoList  []models.ToDoItem `json:"toDoList"`
}

func (s *Server) handleRecordRevision(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req revisionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	log.Debug("revision requested: session_id=%s", id)
	session, err := s.StudyService.RecordRevision(r.Context(), id, req.StartTime, req.EndTime, req.Notes, req.ToDoList)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	session, err := s.StudyService.ToggleTask(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "taskID"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, session)
}
