package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/unclip12/focusflow/internal/errors"
	"github.com/unclip12/focusflow/internal/models"
)

func (s *Server) handleListKnowledgeBase(w http.ResponseWriter, r *http.Request) {
	entries, err := s.KnowledgeBaseService.List(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if entries == nil {
		entries = []models.KnowledgeBaseEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGetKnowledgeBaseEntry(w http.ResponseWriter, r *http.Request) {
	pageNumber := chi.URLParam(r, "pageNumber")

	entry, err := s.KnowledgeBaseService.FindByPage(r.Context(), pageNumber)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if entry == nil {
		handleError(w, r, errors.NewNotFoundError("knowledge base entry", pageNumber))
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

func (s *Server) handleUpdateKnowledgeBaseEntry(w http.ResponseWriter, r *http.Request) {
	var entry models.KnowledgeBaseEntry
	if err := decodeJSON(r, &entry); err != nil {
		handleError(w, r, err)
		return
	}
	entry.PageNumber = chi.URLParam(r, "pageNumber")

	if err := s.KnowledgeBaseService.UpdateEntry(r.Context(), entry); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, entry)
}
