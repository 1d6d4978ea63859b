package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/unclip12/focusflow/internal/models"
	"github.com/unclip12/focusflow/internal/repository"
	"github.com/unclip12/focusflow/internal/repository/sqlite"
	"github.com/unclip12/focusflow/internal/testutil"
)

type KnowledgeBaseRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.KnowledgeBaseRepository
}

func (s *KnowledgeBaseRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewKnowledgeBaseRepository(s.db)
}

func (s *KnowledgeBaseRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *KnowledgeBaseRepositorySuite) TestUpsertInsertsThenUpdates() {
	ctx := context.Background()
	entry := models.KnowledgeBaseEntry{
		PageNumber: "142",
		Topic:      "Cardiac physiology",
		Subject:    "Physiology",
		System:     "Cardiovascular",
		AnkiTotal:  20,
		VideoLinks: []models.VideoResource{{ID: "v1", Title: "Lecture", URL: "https://example.com/v1"}},
		Tags:       []string{"high-yield"},
		Notes:      "first pass",
	}
	s.Require().NoError(s.repo.Upsert(ctx, entry))

	entry.Notes = "second pass"
	entry.AnkiTotal = 25
	s.Require().NoError(s.repo.Upsert(ctx, entry))

	got, err := s.repo.Get(ctx, "142")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("second pass", got.Notes)
	s.Equal(25, got.AnkiTotal)
	s.Require().Len(got.VideoLinks, 1)
	s.Equal([]string{"high-yield"}, got.Tags)
}

func (s *KnowledgeBaseRepositorySuite) TestGetMissingReturnsNil() {
	got, err := s.repo.Get(context.Background(), "nope")
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *KnowledgeBaseRepositorySuite) TestNilCollectionsScanAsEmpty() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Upsert(ctx, models.KnowledgeBaseEntry{PageNumber: "200", Topic: "Renal"}))

	got, err := s.repo.Get(ctx, "200")
	s.Require().NoError(err)
	s.NotNil(got.VideoLinks)
	s.NotNil(got.Tags)
	s.Empty(got.VideoLinks)
	s.Empty(got.Tags)
}

func (s *KnowledgeBaseRepositorySuite) TestListOrderedByPage() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Upsert(ctx, models.KnowledgeBaseEntry{PageNumber: "200"}))
	s.Require().NoError(s.repo.Upsert(ctx, models.KnowledgeBaseEntry{PageNumber: "100"}))

	entries, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("100", entries[0].PageNumber)
	s.Equal("200", entries[1].PageNumber)
}

func TestKnowledgeBaseRepositorySuite(t *testing.T) {
	suite.Run(t, new(KnowledgeBaseRepositorySuite))
}
