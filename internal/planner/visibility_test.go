package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unclip12/focusflow/internal/models"
	"github.com/unclip12/focusflow/internal/planner"
)

func TestRecompute_SplitsAroundToday(t *testing.T) {
	items := []models.StudyPlanItem{
		{ID: "a", Date: "2024-03-10", PageNumber: "100"},
		{ID: "b", Date: "2024-03-12", PageNumber: "101"},
		{ID: "c", Date: "2024-03-08", PageNumber: "102", IsCompleted: false},
		{ID: "d", Date: "2024-03-08", PageNumber: "103", IsCompleted: true},
	}

	v := planner.Recompute(items, "2024-03-10")

	require.Len(t, v.Todays, 2)
	assert.Equal(t, "c", v.Todays[0].ID, "overdue incomplete item carries forward ahead of today's")
	assert.Equal(t, "a", v.Todays[1].ID)

	require.Len(t, v.Upcoming, 1)
	assert.Equal(t, "b", v.Upcoming[0].ID)
}

func TestRecompute_SuppressesCompletedPastItems(t *testing.T) {
	items := []models.StudyPlanItem{
		{ID: "done", Date: "2024-03-01", IsCompleted: true},
	}

	v := planner.Recompute(items, "2024-03-10")

	assert.Empty(t, v.Todays, "completed past items do not resurface")
	assert.Empty(t, v.Upcoming)
}

func TestRecompute_CompletedTodayStaysVisible(t *testing.T) {
	items := []models.StudyPlanItem{
		{ID: "a", Date: "2024-03-10", IsCompleted: true},
	}

	v := planner.Recompute(items, "2024-03-10")

	require.Len(t, v.Todays, 1, "completion only suppresses items from past days")
	assert.Equal(t, "a", v.Todays[0].ID)
}

func TestRecompute_TodaysOrderedByDateThenPage(t *testing.T) {
	items := []models.StudyPlanItem{
		{ID: "a", Date: "2024-03-10", PageNumber: "205"},
		{ID: "b", Date: "2024-03-09", PageNumber: "300"},
		{ID: "c", Date: "2024-03-10", PageNumber: "104"},
		{ID: "d", Date: "2024-03-09", PageNumber: "150"},
	}

	v := planner.Recompute(items, "2024-03-10")

	require.Len(t, v.Todays, 4)
	assert.Equal(t, []string{"d", "b", "c", "a"}, []string{v.Todays[0].ID, v.Todays[1].ID, v.Todays[2].ID, v.Todays[3].ID})
}

func TestRecompute_UpcomingOrderedByDate(t *testing.T) {
	items := []models.StudyPlanItem{
		{ID: "far", Date: "2024-04-01"},
		{ID: "near", Date: "2024-03-11"},
	}

	v := planner.Recompute(items, "2024-03-10")

	require.Len(t, v.Upcoming, 2)
	assert.Equal(t, "near", v.Upcoming[0].ID)
	assert.Equal(t, "far", v.Upcoming[1].ID)
}

func TestRecompute_EmptyInput(t *testing.T) {
	v := planner.Recompute(nil, "2024-03-10")

	assert.NotNil(t, v.Todays)
	assert.NotNil(t, v.Upcoming)
	assert.Empty(t, v.Todays)
	assert.Empty(t, v.Upcoming)
}
