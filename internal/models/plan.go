package models

import "time"

// Plan item types.
const (
	PlanTypePage  = "PAGE"
	PlanTypeVideo = "VIDEO"
)

type PlanLog struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"durationMinutes"`
	Notes           string    `json:"notes,omitempty"`
}

// StudyPlanItem is one planned daily target. Date is calendar-day
// granularity, stored as YYYY-MM-DD. Linkage to a session is transient: the
// caller passes the item's id alongside a study event, nothing is persisted
// on the session side.
type StudyPlanItem struct {
	ID                string     `json:"id"`
	Date              string     `json:"date"`
	Type              string     `json:"type"`
	PageNumber        string     `json:"pageNumber"`
	Topic             string     `json:"topic"`
	VideoURL          string     `json:"videoUrl,omitempty"`
	AnkiCount         int        `json:"ankiCount,omitempty"`
	EstimatedMinutes  int        `json:"estimatedMinutes"`
	IsCompleted       bool       `json:"isCompleted"`
	SubTasks          []ToDoItem `json:"subTasks,omitempty"`
	Logs              []PlanLog  `json:"logs,omitempty"`
	TotalMinutesSpent int        `json:"totalMinutesSpent"`
	CreatedAt         time.Time  `json:"createdAt"`
}
