package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/unclip12/focusflow/internal/services"
	"github.com/unclip12/focusflow/internal/worker"
)

type Server struct {
	StudyService         services.StudyService
	KnowledgeBaseService services.KnowledgeBaseService
	PlanService          services.PlanService
	ChecklistService     services.ChecklistService
	StatsService         services.StatsService
	ChecklistPool        *worker.Pool
	Ping                 func() error
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/study-events", s.handleRecordStudyEvent)

		r.Get("/sessions", s.handleListSessions)
		r.Get("/sessions/{id}", s.handleGetSession)
		r.Delete("/sessions/{id}", s.handleDeleteSession)
		r.Post("/sessions/{id}/revisions", s.handleRecordRevision)
		r.Post("/sessions/{id}/tasks/{taskID}/toggle", s.handleToggleTask)

		r.Get("/knowledge-base", s.handleListKnowledgeBase)
		r.Get("/knowledge-base/{pageNumber}", s.handleGetKnowledgeBaseEntry)
		r.Put("/knowledge-base/{pageNumber}", s.handleUpdateKnowledgeBaseEntry)

		r.Get("/plan", s.handlePlanVisibility)
		r.Post("/plan", s.handleAddPlanItem)
		r.Put("/plan/{id}", s.handleUpdatePlanItem)
		r.Post("/plan/{id}/checklist", s.handleGenerateChecklist)

		r.Get("/stats", s.handleStats)
		r.Get("/stats/forecast", s.handleForecast)
	})

	return r
}
