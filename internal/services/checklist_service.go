package services

import (
	"context"

	"github.com/unclip12/focusflow/internal/gemini"
	"github.com/unclip12/focusflow/internal/logger"
)

// fallbackChecklist is returned whenever generation is unavailable or fails.
// Checklist generation never surfaces an error to the ledger.
var fallbackChecklist = []string{
	"Review core definitions",
	"Practice 3 basic problems",
	"Summarize key concepts",
}

// ChecklistService produces a study checklist for a topic and sitting length.
type ChecklistService interface {
	Generate(ctx context.Context, topic string, durationMinutes int) []string
}

type checklistService struct {
	client gemini.ClientInterface
}

// NewChecklistService creates a new ChecklistService. A nil client (no API
// key configured) degrades to the fixed fallback checklist.
func NewChecklistService(client gemini.ClientInterface) ChecklistService {
	return &checklistService{client: client}
}

func (s *checklistService) Generate(ctx context.Context, topic string, durationMinutes int) []string {
	log := logger.FromContext(ctx)

	if s.client == nil {
		log.Debug("no checklist generator configured, using fallback")
		return append([]string(nil), fallbackChecklist...)
	}

	items, err := s.client.GenerateChecklist(ctx, topic, durationMinutes)
	if err != nil || len(items) == 0 {
		log.Warn("checklist generation failed, using fallback: %v", err)
		return append([]string(nil), fallbackChecklist...)
	}
	return items
}
