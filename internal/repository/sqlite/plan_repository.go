package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/unclip12/focusflow/internal/logger"
	"github.com/unclip12/focusflow/internal/models"
	"github.com/unclip12/focusflow/internal/repository"
)

const planColumns = `id, date, type, page_number, topic, video_url, anki_count, estimated_minutes,
is_completed, sub_tasks, logs, total_minutes_spent, created_at`

type planRepository struct {
	db *sql.DB
}

// NewPlanRepository creates a new PlanRepository implementation
func NewPlanRepository(db *sql.DB) repository.PlanRepository {
	return &planRepository{db: db}
}

func scanPlanItem(scan func(dest ...any) error) (*models.StudyPlanItem, error) {
	var p models.StudyPlanItem
	var subTasks, logs sql.NullString

	err := scan(&p.ID, &p.Date, &p.Type, &p.PageNumber, &p.Topic, &p.VideoURL,
		&p.AnkiCount, &p.EstimatedMinutes, &p.IsCompleted, &subTasks, &logs,
		&p.TotalMinutesSpent, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := unmarshalColumn(subTasks, &p.SubTasks); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(logs, &p.Logs); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepository) Get(ctx context.Context, id string) (*models.StudyPlanItem, error) {
	log := logger.FromContext(ctx).WithPrefix("plan_repo")
	log.Debug("getting plan item: id=%s", id)

	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plan_items WHERE id = ?`, id)
	p, err := scanPlanItem(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("plan item not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get plan item: %v", err)
		return nil, err
	}
	return p, nil
}

func (r *planRepository) List(ctx context.Context) ([]models.StudyPlanItem, error) {
	log := logger.FromContext(ctx).WithPrefix("plan_repo")
	log.Debug("listing plan items")

	rows, err := r.db.QueryContext(ctx, `SELECT `+planColumns+` FROM plan_items ORDER BY date ASC, page_number ASC`)
	if err != nil {
		log.Error("failed to list plan items: %v", err)
		return nil, err
	}
	defer rows.Close()

	var items []models.StudyPlanItem
	for rows.Next() {
		p, err := scanPlanItem(rows.Scan)
		if err != nil {
			log.Error("failed to scan plan item row: %v", err)
			return nil, err
		}
		items = append(items, *p)
	}
	log.Debug("found %d plan items", len(items))
	return items, rows.Err()
}

func (r *planRepository) Insert(ctx context.Context, p models.StudyPlanItem) error {
	log := logger.FromContext(ctx).WithPrefix("plan_repo")
	log.Debug("inserting plan item: id=%s, date=%s, type=%s", p.ID, p.Date, p.Type)

	subTasks, err := marshalColumn(p.SubTasks)
	if err != nil {
		return err
	}
	logs, err := marshalColumn(p.Logs)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO plan_items (id, date, type, page_number, topic, video_url, anki_count, estimated_minutes,
    is_completed, sub_tasks, logs, total_minutes_spent)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, p.ID, p.Date, p.Type, p.PageNumber, p.Topic, p.VideoURL, p.AnkiCount, p.EstimatedMinutes,
		p.IsCompleted, subTasks, logs, p.TotalMinutesSpent)
	if err != nil {
		log.Error("failed to insert plan item: %v", err)
	}
	return err
}

func (r *planRepository) Update(ctx context.Context, p models.StudyPlanItem) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("plan_repo")
	log.Debug("updating plan item: id=%s, completed=%t, minutes=%d", p.ID, p.IsCompleted, p.TotalMinutesSpent)

	subTasks, err := marshalColumn(p.SubTasks)
	if err != nil {
		return false, err
	}
	logs, err := marshalColumn(p.Logs)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE plan_items
SET date = ?, type = ?, page_number = ?, topic = ?, video_url = ?, anki_count = ?, estimated_minutes = ?,
    is_completed = ?, sub_tasks = ?, logs = ?, total_minutes_spent = ?
WHERE id = ?
`, p.Date, p.Type, p.PageNumber, p.Topic, p.VideoURL, p.AnkiCount, p.EstimatedMinutes,
		p.IsCompleted, subTasks, logs, p.TotalMinutesSpent, p.ID)
	if err != nil {
		log.Error("failed to update plan item: %v", err)
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
