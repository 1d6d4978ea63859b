package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/unclip12/focusflow/internal/models"
	"github.com/unclip12/focusflow/internal/repository"
	"github.com/unclip12/focusflow/internal/repository/sqlite"
	"github.com/unclip12/focusflow/internal/testutil"
)

type SessionRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.SessionRepository
}

func (s *SessionRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewSessionRepository(s.db)
}

func (s *SessionRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *SessionRepositorySuite) newSession(id, page string, due *time.Time, idx int) models.StudySession {
	return models.StudySession{
		ID:                   id,
		PageNumber:           page,
		Topic:                "Topic " + page,
		Category:             "Physiology",
		System:               "Cardiovascular",
		RevisionIntervals:    []int{24, 72, 168, 336},
		CurrentIntervalIndex: idx,
		NextRevisionDate:     due,
		History: []models.StudyLog{
			{ID: "log-" + id, Date: time.Now().UTC(), DurationMinutes: 45, Type: models.LogTypeInitial},
		},
		ToDoList:    []models.ToDoItem{{ID: "t1", Text: "Read", Done: false}},
		LastStudied: time.Now().UTC(),
	}
}

func (s *SessionRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()
	due := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	session := s.newSession("s1", "142", &due, 0)
	session.Notes = "first pass notes"

	s.Require().NoError(s.repo.Insert(ctx, session))

	got, err := s.repo.Get(ctx, "s1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("142", got.PageNumber)
	s.Equal("first pass notes", got.Notes)
	s.Equal([]int{24, 72, 168, 336}, got.RevisionIntervals)
	s.Equal(0, got.CurrentIntervalIndex)
	s.Require().NotNil(got.NextRevisionDate)
	s.WithinDuration(due, *got.NextRevisionDate, time.Second)
	s.Require().Len(got.History, 1)
	s.Equal(45, got.History[0].DurationMinutes)
	s.Require().Len(got.ToDoList, 1)
	s.Equal("Read", got.ToDoList[0].Text)
}

func (s *SessionRepositorySuite) TestGetMissingReturnsNil() {
	got, err := s.repo.Get(context.Background(), "nope")
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *SessionRepositorySuite) TestGetByPage() {
	ctx := context.Background()
	due := time.Now().UTC().Add(24 * time.Hour)
	s.Require().NoError(s.repo.Insert(ctx, s.newSession("s1", "142", &due, 0)))

	got, err := s.repo.GetByPage(ctx, "142")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("s1", got.ID)

	missing, err := s.repo.GetByPage(ctx, "999")
	s.Require().NoError(err)
	s.Nil(missing)
}

func (s *SessionRepositorySuite) TestUpdate() {
	ctx := context.Background()
	due := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	session := s.newSession("s1", "142", &due, 0)
	s.Require().NoError(s.repo.Insert(ctx, session))

	session.CurrentIntervalIndex = 1
	newDue := due.Add(72 * time.Hour)
	session.NextRevisionDate = &newDue
	session.History = append([]models.StudyLog{
		{ID: "log-rev", Date: time.Now().UTC(), DurationMinutes: 20, Type: models.LogTypeRevision},
	}, session.History...)
	s.Require().NoError(s.repo.Update(ctx, session))

	got, err := s.repo.Get(ctx, "s1")
	s.Require().NoError(err)
	s.Equal(1, got.CurrentIntervalIndex)
	s.Require().Len(got.History, 2)
	s.Equal(models.LogTypeRevision, got.History[0].Type)
}

func (s *SessionRepositorySuite) TestNullDueDateRoundTrips() {
	ctx := context.Background()
	session := s.newSession("s1", "142", nil, 4)
	s.Require().NoError(s.repo.Insert(ctx, session))

	got, err := s.repo.Get(ctx, "s1")
	s.Require().NoError(err)
	s.Nil(got.NextRevisionDate)
	s.True(got.Mastered())
}

func (s *SessionRepositorySuite) TestDelete() {
	ctx := context.Background()
	due := time.Now().UTC()
	s.Require().NoError(s.repo.Insert(ctx, s.newSession("s1", "142", &due, 0)))

	s.Require().NoError(s.repo.Delete(ctx, "s1"))

	got, err := s.repo.Get(ctx, "s1")
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *SessionRepositorySuite) seedForFilters(now time.Time) {
	ctx := context.Background()
	past := now.Add(-2 * time.Hour)
	future := now.Add(48 * time.Hour)

	s.Require().NoError(s.repo.Insert(ctx, s.newSession("due", "100", &past, 1)))
	s.Require().NoError(s.repo.Insert(ctx, s.newSession("upcoming", "101", &future, 1)))
	s.Require().NoError(s.repo.Insert(ctx, s.newSession("mastered", "102", nil, 4)))
}

func (s *SessionRepositorySuite) TestListAllOrdersMasteredLast() {
	now := time.Now().UTC()
	s.seedForFilters(now)

	sessions, err := s.repo.List(context.Background(), models.SessionFilter{Filter: models.FilterAll, Now: now})
	s.Require().NoError(err)
	s.Require().Len(sessions, 3)
	s.Equal("due", sessions[0].ID)
	s.Equal("upcoming", sessions[1].ID)
	s.Equal("mastered", sessions[2].ID)
}

func (s *SessionRepositorySuite) TestListDueToday() {
	now := time.Now().UTC()
	s.seedForFilters(now)

	sessions, err := s.repo.List(context.Background(), models.SessionFilter{Filter: models.FilterDueToday, Now: now})
	s.Require().NoError(err)
	s.Require().Len(sessions, 1)
	s.Equal("due", sessions[0].ID)
}

func (s *SessionRepositorySuite) TestListUpcoming() {
	now := time.Now().UTC()
	s.seedForFilters(now)

	sessions, err := s.repo.List(context.Background(), models.SessionFilter{Filter: models.FilterUpcoming, Now: now})
	s.Require().NoError(err)
	s.Require().Len(sessions, 2, "upcoming covers every unmastered session")
}

func (s *SessionRepositorySuite) TestListMastered() {
	now := time.Now().UTC()
	s.seedForFilters(now)

	sessions, err := s.repo.List(context.Background(), models.SessionFilter{Filter: models.FilterMastered, Now: now})
	s.Require().NoError(err)
	s.Require().Len(sessions, 1)
	s.Equal("mastered", sessions[0].ID)
}

func (s *SessionRepositorySuite) TestStats() {
	now := time.Now().UTC()
	s.seedForFilters(now)

	stats, err := s.repo.Stats(context.Background(), now)
	s.Require().NoError(err)
	s.Equal(3, stats.TotalSessions)
	s.Equal(1, stats.DueCount)
	s.Equal(1, stats.MasteredCount)
	s.Equal(135, stats.TotalMinutes, "45 minutes per seeded history entry")
}

func (s *SessionRepositorySuite) TestRevisionForecast() {
	ctx := context.Background()
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	day1 := from.Add(26 * time.Hour)
	day1b := from.Add(30 * time.Hour)
	day3 := from.Add(3*24*time.Hour + time.Hour)
	s.Require().NoError(s.repo.Insert(ctx, s.newSession("a", "100", &day1, 0)))
	s.Require().NoError(s.repo.Insert(ctx, s.newSession("b", "101", &day1b, 0)))
	s.Require().NoError(s.repo.Insert(ctx, s.newSession("c", "102", &day3, 0)))

	forecast, err := s.repo.RevisionForecast(ctx, from, 7)
	s.Require().NoError(err)
	s.Require().Len(forecast, 7, "one entry per day, zero-filled")
	s.Equal("2024-06-01", forecast[0].Date)
	s.Equal(0, forecast[0].Count)
	s.Equal(2, forecast[1].Count)
	s.Equal(0, forecast[2].Count)
	s.Equal(1, forecast[3].Count)
}

func TestSessionRepositorySuite(t *testing.T) {
	suite.Run(t, new(SessionRepositorySuite))
}
