package models

import "time"

// Log kinds for a session's history.
const (
	LogTypeInitial  = "INITIAL"
	LogTypeRevision = "REVISION"
)

type StudyLog struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Type            string    `json:"type"`
}

type ToDoItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// StudySession tracks one reference page ever studied. pageNumber is the
// natural key: at most one session per page.
type StudySession struct {
	ID                   string     `json:"id"`
	Topic                string     `json:"topic"`
	PageNumber           string     `json:"pageNumber"`
	Category             string     `json:"category"`
	System               string     `json:"system"`
	RevisionIntervals    []int      `json:"revisionIntervals"`
	CurrentIntervalIndex int        `json:"currentIntervalIndex"`
	NextRevisionDate     *time.Time `json:"nextRevisionDate"`
	AnkiDone             bool       `json:"ankiDone"`
	AnkiTotal            int        `json:"ankiTotal"`
	AnkiCovered          int        `json:"ankiCovered"`
	History              []StudyLog `json:"history"`
	Notes                string     `json:"notes"`
	ToDoList             []ToDoItem `json:"toDoList"`
	LastStudied          time.Time  `json:"lastStudied"`
	CreatedAt            time.Time  `json:"createdAt"`
}

// Mastered reports whether the session's interval ladder is exhausted.
func (s *StudySession) Mastered() bool {
	return s.NextRevisionDate == nil && s.CurrentIntervalIndex > 0
}

// Session list filters for the dashboard.
const (
	FilterAll      = "ALL"
	FilterDueToday = "DUE_TODAY"
	FilterUpcoming = "UPCOMING"
	FilterMastered = "MASTERED"
)

type SessionFilter struct {
	Filter string
	Now    time.Time
}

type StudyStats struct {
	TotalSessions int `json:"totalSessions"`
	DueCount      int `json:"dueCount"`
	MasteredCount int `json:"masteredCount"`
	TotalMinutes  int `json:"totalMinutes"`
}

type ForecastDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
