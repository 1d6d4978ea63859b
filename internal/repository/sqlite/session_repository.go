package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/unclip12/focusflow/internal/logger"
	"github.com/unclip12/focusflow/internal/models"
	"github.com/unclip12/focusflow/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const sessionColumns = `id, page_number, topic, category, system, anki_covered, anki_total, anki_done, notes,
revision_intervals, current_interval_index, next_revision_date, history, todo_list, last_studied, created_at`

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository implementation
func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func scanSession(scan func(dest ...any) error) (*models.StudySession, error) {
	var s models.StudySession
	var intervals, history string
	var todoList sql.NullString
	var nextRevision sql.NullTime

	err := scan(&s.ID, &s.PageNumber, &s.Topic, &s.Category, &s.System,
		&s.AnkiCovered, &s.AnkiTotal, &s.AnkiDone, &s.Notes,
		&intervals, &s.CurrentIntervalIndex, &nextRevision,
		&history, &todoList, &s.LastStudied, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if nextRevision.Valid {
		t := nextRevision.Time
		s.NextRevisionDate = &t
	}
	if err := unmarshalColumn(sql.NullString{String: intervals, Valid: true}, &s.RevisionIntervals); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(sql.NullString{String: history, Valid: true}, &s.History); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(todoList, &s.ToDoList); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*models.StudySession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("getting session: id=%s", id)

	row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	s, err := scanSession(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("session not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get session: %v", err)
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) GetByPage(ctx context.Context, pageNumber string) (*models.StudySession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("getting session by page: page_number=%s", pageNumber)

	row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE page_number = ?`, pageNumber)
	s, err := scanSession(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no session for page: page_number=%s", pageNumber)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get session by page: %v", err)
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) List(ctx context.Context, filter models.SessionFilter) ([]models.StudySession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("listing sessions: filter=%s", filter.Filter)

	query := sqlBuilder.Select(
		"id", "page_number", "topic", "category", "system", "anki_covered",
		"anki_total", "anki_done", "notes", "revision_intervals",
		"current_interval_index", "next_revision_date", "history", "todo_list",
		"last_studied", "created_at",
	).From("sessions")

	switch filter.Filter {
	case models.FilterDueToday:
		query = query.Where("next_revision_date IS NOT NULL").
			Where(squirrel.LtOrEq{"next_revision_date": filter.Now})
	case models.FilterUpcoming:
		query = query.Where("next_revision_date IS NOT NULL")
	case models.FilterMastered:
		query = query.Where("next_revision_date IS NULL").
			Where(squirrel.Gt{"current_interval_index": 0})
	}

	// Soonest revision first; mastered sessions (null due date) sort last.
	query = query.OrderBy("next_revision_date IS NULL", "next_revision_date ASC", "page_number ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []models.StudySession
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			log.Error("failed to scan session row: %v", err)
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	log.Debug("found %d sessions", len(sessions))
	return sessions, rows.Err()
}

func (r *sessionRepository) Insert(ctx context.Context, s models.StudySession) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("inserting session: id=%s, page_number=%s", s.ID, s.PageNumber)

	intervals, err := marshalColumn(s.RevisionIntervals)
	if err != nil {
		return err
	}
	history, err := marshalColumn(s.History)
	if err != nil {
		return err
	}
	todoList, err := marshalColumn(s.ToDoList)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO sessions (id, page_number, topic, category, system, anki_covered, anki_total, anki_done, notes,
    revision_intervals, current_interval_index, next_revision_date, history, todo_list, last_studied)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, s.ID, s.PageNumber, s.Topic, s.Category, s.System, s.AnkiCovered, s.AnkiTotal, s.AnkiDone, s.Notes,
		intervals, s.CurrentIntervalIndex, nullableTime(s.NextRevisionDate), history, todoList, s.LastStudied)
	if err != nil {
		log.Error("failed to insert session: %v", err)
	}
	return err
}

func (r *sessionRepository) Update(ctx context.Context, s models.StudySession) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("updating session: id=%s, interval_index=%d", s.ID, s.CurrentIntervalIndex)

	intervals, err := marshalColumn(s.RevisionIntervals)
	if err != nil {
		return err
	}
	history, err := marshalColumn(s.History)
	if err != nil {
		return err
	}
	todoList, err := marshalColumn(s.ToDoList)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
UPDATE sessions
SET topic = ?, category = ?, system = ?, anki_covered = ?, anki_total = ?, anki_done = ?, notes = ?,
    revision_intervals = ?, current_interval_index = ?, next_revision_date = ?, history = ?, todo_list = ?, last_studied = ?
WHERE id = ?
`, s.Topic, s.Category, s.System, s.AnkiCovered, s.AnkiTotal, s.AnkiDone, s.Notes,
		intervals, s.CurrentIntervalIndex, nullableTime(s.NextRevisionDate), history, todoList, s.LastStudied, s.ID)
	if err != nil {
		log.Error("failed to update session: %v", err)
	}
	return err
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("deleting session: id=%s", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete session: %v", err)
	}
	return err
}

func (r *sessionRepository) Stats(ctx context.Context, now time.Time) (*models.StudyStats, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("computing session stats")

	var stats models.StudyStats
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*),
       COALESCE(SUM(CASE WHEN next_revision_date IS NOT NULL AND next_revision_date <= ? THEN 1 ELSE 0 END), 0),
       COALESCE(SUM(CASE WHEN next_revision_date IS NULL AND current_interval_index > 0 THEN 1 ELSE 0 END), 0)
FROM sessions
`, now).Scan(&stats.TotalSessions, &stats.DueCount, &stats.MasteredCount)
	if err != nil {
		log.Error("failed to compute counts: %v", err)
		return nil, err
	}

	// Total minutes lives inside the history JSON, so sum it here.
	rows, err := r.db.QueryContext(ctx, `SELECT history FROM sessions`)
	if err != nil {
		log.Error("failed to read histories: %v", err)
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var history []models.StudyLog
		if err := unmarshalColumn(sql.NullString{String: raw, Valid: true}, &history); err != nil {
			return nil, err
		}
		for _, l := range history {
			stats.TotalMinutes += l.DurationMinutes
		}
	}
	return &stats, rows.Err()
}

func (r *sessionRepository) RevisionForecast(ctx context.Context, from time.Time, days int) ([]models.ForecastDay, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("computing revision forecast: days=%d", days)

	until := from.AddDate(0, 0, days)
	rows, err := r.db.QueryContext(ctx, `
SELECT date(next_revision_date), COUNT(*)
FROM sessions
WHERE next_revision_date IS NOT NULL
  AND date(next_revision_date) >= date(?)
  AND date(next_revision_date) < date(?)
GROUP BY date(next_revision_date)
`, from, until)
	if err != nil {
		log.Error("failed to query forecast: %v", err)
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		counts[day] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One entry per day, zero-filled.
	forecast := make([]models.ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i).Format("2006-01-02")
		forecast = append(forecast, models.ForecastDay{Date: day, Count: counts[day]})
	}
	return forecast, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
