package scheduler

import (
	"time"

	"github.com/unclip12/focusflow/internal/errors"
)

// Interval ladder scheduling. Intervals are hours; the index walks the ladder
// one rung per completed revision. A nil due date with a positive index means
// the ladder is exhausted (mastered).

func due(endTime time.Time, hours int) *time.Time {
	t := endTime.Add(time.Duration(hours) * time.Hour)
	return &t
}

// Next computes the schedule after a study event is applied to a session.
//
// Seeding: with no existing schedule the ladder starts at index 0 and the
// first revision lands intervals[0] hours after the event's end time.
// A schedule that is due at or before now advances one rung, clamped at the
// last interval. A schedule that is not yet due is left untouched: the event
// updates metadata only.
func Next(endTime time.Time, intervals []int, currentIndex int, nextDue *time.Time, now time.Time) (int, *time.Time, error) {
	if len(intervals) == 0 {
		return 0, nil, errors.NewInvalidConfigError("revision interval ladder is empty")
	}

	if nextDue != nil && !nextDue.After(now) {
		idx := currentIndex + 1
		if idx > len(intervals)-1 {
			idx = len(intervals) - 1
		}
		return idx, due(endTime, intervals[idx]), nil
	}

	if nextDue == nil {
		return 0, due(endTime, intervals[0]), nil
	}

	return currentIndex, nextDue, nil
}

// Advance moves the ladder one rung unconditionally. Used by the revision
// path, where being due is assumed by construction. Past the last rung the
// due date becomes nil and the session counts as mastered.
func Advance(endTime time.Time, intervals []int, currentIndex int) (int, *time.Time, error) {
	if len(intervals) == 0 {
		return 0, nil, errors.NewInvalidConfigError("revision interval ladder is empty")
	}
	if currentIndex >= len(intervals) {
		return 0, nil, errors.NewValidationError("currentIntervalIndex", "interval ladder already exhausted")
	}

	idx := currentIndex + 1
	if idx < len(intervals) {
		return idx, due(endTime, intervals[idx]), nil
	}
	return idx, nil, nil
}
