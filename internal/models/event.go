package models

import "time"

// StudyEvent is the input to the ledger: one recorded study sitting against a
// page, optionally linked to a plan item by id.
type StudyEvent struct {
	Topic             string     `json:"topic"`
	PageNumber        string     `json:"pageNumber"`
	Category          string     `json:"category"`
	System            string     `json:"system"`
	AnkiCovered       int        `json:"ankiCovered"`
	AnkiTotal         int        `json:"ankiTotal"`
	Notes             string     `json:"notes"`
	ToDoList          []ToDoItem `json:"toDoList"`
	StartTime         time.Time  `json:"startTime"`
	EndTime           time.Time  `json:"endTime"`
	RevisionIntervals []int      `json:"revisionIntervals"`

	// Plan linkage. Empty PlanItemID means the event was not launched from a
	// plan item and the reconciler is skipped entirely.
	PlanItemID          string   `json:"planItemId,omitempty"`
	CompletedSubTaskIDs []string `json:"completedSubTaskIds,omitempty"`
	IsFinished          bool     `json:"isFinished,omitempty"`
}
