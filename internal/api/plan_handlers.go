package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/unclip12/focusflow/internal/errors"
	"github.com/unclip12/focusflow/internal/logger"
	"github.com/unclip12/focusflow/internal/models"
	"github.com/unclip12/focusflow/internal/worker"
)

type addPlanItemRequest struct {
	models.StudyPlanItem
	NewVideo *models.VideoResource `json:"newVideo,omitempty"`
}

func (s *Server) handleAddPlanItem(w http.ResponseWriter, r *http.Request) {
	var req addPlanItemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	item, err := s.PlanService.AddItem(r.Context(), req.StudyPlanItem, req.NewVideo)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (s *Server) handleUpdatePlanItem(w http.ResponseWriter, r *http.Request) {
	var item models.StudyPlanItem
	if err := decodeJSON(r, &item); err != nil {
		handleError(w, r, err)
		return
	}
	item.ID = chi.URLParam(r, "id")

	if err := s.PlanService.UpdateItem(r.Context(), item); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (s *Server) handlePlanVisibility(w http.ResponseWriter, r *http.Request) {
	today := r.URL.Query().Get("today")
	if today == "" {
		today = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", today); err != nil {
		handleError(w, r, errors.NewValidationError("today", "must be a YYYY-MM-DD calendar day"))
		return
	}

	visibility, err := s.PlanService.Visibility(r.Context(), today)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, visibility)
}

// handleGenerateChecklist queues checklist generation for a plan item. The
// request returns immediately; generated items appear as subtasks once the
// job completes.
func (s *Server) handleGenerateChecklist(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id := chi.URLParam(r, "id")

	item, err := s.PlanService.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if item == nil {
		handleError(w, r, errors.NewNotFoundError("plan item", id))
		return
	}

	s.ChecklistPool.Submit(&worker.ChecklistJob{
		Checklist:       s.ChecklistService,
		Plans:           s.PlanService,
		PlanItemID:      item.ID,
		Topic:           item.Topic,
		DurationMinutes: item.EstimatedMinutes,
	})
	log.Info("checklist generation queued: plan_item_id=%s", id)
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}
