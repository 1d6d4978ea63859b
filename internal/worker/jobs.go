package worker

import (
	"context"

	"github.com/unclip12/focusflow/internal/services"
)

// ChecklistJob generates a study checklist for a plan item and attaches the
// result as fresh subtasks. Generation happens off the request path so a
// slow or failing model call never blocks ledger operations; the service
// falls back to a fixed list on failure, and a deleted plan item makes the
// whole job a no-op.
type ChecklistJob struct {
	Checklist       services.ChecklistService
	Plans           services.PlanService
	PlanItemID      string
	Topic           string
	DurationMinutes int
}

func (j *ChecklistJob) Name() string {
	return "generate-checklist"
}

func (j *ChecklistJob) Run(ctx context.Context) error {
	items := j.Checklist.Generate(ctx, j.Topic, j.DurationMinutes)
	return j.Plans.AttachChecklist(ctx, j.PlanItemID, items)
}
