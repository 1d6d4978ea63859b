package planner

import (
	"sort"

	"github.com/unclip12/focusflow/internal/models"
)

// Visibility is the day-scoped split of the study plan. Todays carries the
// current day's items plus incomplete items from past days (carry-forward);
// completed past items are suppressed from both lists.
type Visibility struct {
	Todays   []models.StudyPlanItem `json:"todays"`
	Upcoming []models.StudyPlanItem `json:"upcoming"`
}

// Recompute splits items around today, a YYYY-MM-DD date. ISO dates compare
// lexicographically, so plain string comparison is day comparison.
// Todays is ordered by date then page number: oldest overdue work surfaces
// first, ties break stably by page.
func Recompute(items []models.StudyPlanItem, today string) Visibility {
	v := Visibility{
		Todays:   []models.StudyPlanItem{},
		Upcoming: []models.StudyPlanItem{},
	}

	for _, item := range items {
		switch {
		case item.Date == today:
			v.Todays = append(v.Todays, item)
		case item.Date < today && !item.IsCompleted:
			v.Todays = append(v.Todays, item)
		case item.Date > today:
			v.Upcoming = append(v.Upcoming, item)
		}
	}

	sort.SliceStable(v.Todays, func(i, j int) bool {
		if v.Todays[i].Date != v.Todays[j].Date {
			return v.Todays[i].Date < v.Todays[j].Date
		}
		return v.Todays[i].PageNumber < v.Todays[j].PageNumber
	})
	sort.SliceStable(v.Upcoming, func(i, j int) bool {
		return v.Upcoming[i].Date < v.Upcoming[j].Date
	})

	return v
}
