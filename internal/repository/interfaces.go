package repository

import (
	"context"
	"time"

	"github.com/unclip12/focusflow/internal/models"
)

// SessionRepository handles study session data access
type SessionRepository interface {
	Get(ctx context.Context, id string) (*models.StudySession, error)
	GetByPage(ctx context.Context, pageNumber string) (*models.StudySession, error)
	List(ctx context.Context, filter models.SessionFilter) ([]models.StudySession, error)
	Insert(ctx context.Context, session models.StudySession) error
	Update(ctx context.Context, session models.StudySession) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, now time.Time) (*models.StudyStats, error)
	RevisionForecast(ctx context.Context, from time.Time, days int) ([]models.ForecastDay, error)
}

// KnowledgeBaseRepository handles knowledge base entry data access
type KnowledgeBaseRepository interface {
	Get(ctx context.Context, pageNumber string) (*models.KnowledgeBaseEntry, error)
	List(ctx context.Context) ([]models.KnowledgeBaseEntry, error)
	Upsert(ctx context.Context, entry models.KnowledgeBaseEntry) error
}

// PlanRepository handles study plan item data access
type PlanRepository interface {
	Get(ctx context.Context, id string) (*models.StudyPlanItem, error)
	List(ctx context.Context) ([]models.StudyPlanItem, error)
	Insert(ctx context.Context, item models.StudyPlanItem) error
	Update(ctx context.Context, item models.StudyPlanItem) (bool, error)
}
