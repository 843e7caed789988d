package lastplanner

import (
	"time"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"
)

// BuildTimelineWindow computes the smallest day interval containing every
// task's start and end date, padded with one full day on each side so the
// grid always shows a blank column before the first task and after the last.
//
// An empty task list yields a degenerate interval at the current instant.
// Tasks with a zero start or end date are skipped while widening the bounds;
// the reduction is seeded with the first task's own dates, so a single-task
// list always produces a usable window. Dates are taken as given, a task
// whose start lies after its end widens nothing but must not panic.
func BuildTimelineWindow(tasks []model.Task) Interval {
	if len(tasks) == 0 {
		now := time.Now()
		return Interval{Start: now, End: now}
	}

	earliest := tasks[0].StartDate
	latest := tasks[0].EndDate
	for _, t := range tasks[1:] {
		if !t.StartDate.IsZero() && t.StartDate.Before(earliest) {
			earliest = t.StartDate
		}
		if !t.EndDate.IsZero() && t.EndDate.After(latest) {
			latest = t.EndDate
		}
	}

	return Interval{
		Start: startOfDay(earliest).AddDate(0, 0, -1),
		End:   endOfDay(latest).AddDate(0, 0, 1),
	}
}
