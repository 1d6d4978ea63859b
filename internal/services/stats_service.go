package services

import (
	"context"
	"time"

	"github.com/unclip12/focusflow/internal/errors"
	"github.com/unclip12/focusflow/internal/models"
	"github.com/unclip12/focusflow/internal/repository"
)

// StatsService aggregates dashboard numbers over the session ledger.
type StatsService interface {
	Summary(ctx context.Context) (*models.StudyStats, error)
	Forecast(ctx context.Context, days int) ([]models.ForecastDay, error)
}

type statsService struct {
	sessions repository.SessionRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(sessions repository.SessionRepository) StatsService {
	return &statsService{sessions: sessions}
}

func (s *statsService) Summary(ctx context.Context) (*models.StudyStats, error) {
	stats, err := s.sessions.Stats(ctx, time.Now())
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return stats, nil
}

func (s *statsService) Forecast(ctx context.Context, days int) ([]models.ForecastDay, error) {
	if days <= 0 {
		return nil, errors.NewValidationError("days", "must be positive")
	}
	forecast, err := s.sessions.RevisionForecast(ctx, time.Now(), days)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return forecast, nil
}
