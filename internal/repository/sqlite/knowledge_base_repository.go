package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/unclip12/focusflow/internal/logger"
	"github.com/unclip12/focusflow/internal/models"
	"github.com/unclip12/focusflow/internal/repository"
)

type knowledgeBaseRepository struct {
	db *sql.DB
}

// NewKnowledgeBaseRepository creates a new KnowledgeBaseRepository implementation
func NewKnowledgeBaseRepository(db *sql.DB) repository.KnowledgeBaseRepository {
	return &knowledgeBaseRepository{db: db}
}

func scanEntry(scan func(dest ...any) error) (*models.KnowledgeBaseEntry, error) {
	var e models.KnowledgeBaseEntry
	var videoLinks, tags sql.NullString

	err := scan(&e.PageNumber, &e.Topic, &e.Subject, &e.System, &e.AnkiTotal, &videoLinks, &tags, &e.Notes)
	if err != nil {
		return nil, err
	}
	if err := unmarshalColumn(videoLinks, &e.VideoLinks); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(tags, &e.Tags); err != nil {
		return nil, err
	}
	if e.VideoLinks == nil {
		e.VideoLinks = []models.VideoResource{}
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return &e, nil
}

func (r *knowledgeBaseRepository) Get(ctx context.Context, pageNumber string) (*models.KnowledgeBaseEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("kb_repo")
	log.Debug("getting knowledge base entry: page_number=%s", pageNumber)

	row := r.db.QueryRowContext(ctx, `
SELECT page_number, topic, subject, system, anki_total, video_links, tags, notes
FROM knowledge_base
WHERE page_number = ?
`, pageNumber)
	e, err := scanEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("knowledge base entry not found: page_number=%s", pageNumber)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get knowledge base entry: %v", err)
		return nil, err
	}
	return e, nil
}

func (r *knowledgeBaseRepository) List(ctx context.Context) ([]models.KnowledgeBaseEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("kb_repo")
	log.Debug("listing knowledge base entries")

	rows, err := r.db.QueryContext(ctx, `
SELECT page_number, topic, subject, system, anki_total, video_links, tags, notes
FROM knowledge_base
ORDER BY page_number ASC
`)
	if err != nil {
		log.Error("failed to list knowledge base entries: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.KnowledgeBaseEntry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			log.Error("failed to scan knowledge base row: %v", err)
			return nil, err
		}
		entries = append(entries, *e)
	}
	log.Debug("found %d knowledge base entries", len(entries))
	return entries, rows.Err()
}

func (r *knowledgeBaseRepository) Upsert(ctx context.Context, e models.KnowledgeBaseEntry) error {
	log := logger.FromContext(ctx).WithPrefix("kb_repo")
	log.Debug("upserting knowledge base entry: page_number=%s", e.PageNumber)

	videoLinks, err := marshalColumn(e.VideoLinks)
	if err != nil {
		return err
	}
	tags, err := marshalColumn(e.Tags)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO knowledge_base (page_number, topic, subject, system, anki_total, video_links, tags, notes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(page_number) DO UPDATE SET
    topic = excluded.topic,
    subject = excluded.subject,
    system = excluded.system,
    anki_total = excluded.anki_total,
    video_links = excluded.video_links,
    tags = excluded.tags,
    notes = excluded.notes,
    updated_at = CURRENT_TIMESTAMP
`, e.PageNumber, e.Topic, e.Subject, e.System, e.AnkiTotal, videoLinks, tags, e.Notes)
	if err != nil {
		log.Error("failed to upsert knowledge base entry: %v", err)
	}
	return err
}
