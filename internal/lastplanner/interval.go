package lastplanner

import (
	"time"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"
)

// Interval is a closed range of calendar days. Start is normalized to the
// first instant of its day and End to the last instant of its day, so two
// tasks scheduled on the same date always overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewDayInterval builds a day-granular interval from two timestamps,
// discarding their time-of-day components.
func NewDayInterval(start, end time.Time) Interval {
	return Interval{Start: startOfDay(start), End: endOfDay(end)}
}

// Overlaps reports whether the two closed intervals share at least one instant.
func (i Interval) Overlaps(other Interval) bool {
	return !i.Start.After(other.End) && !other.Start.After(i.End)
}

// Days returns the number of calendar days the interval covers, both ends
// inclusive. A single-day interval counts as 1.
func (i Interval) Days() int {
	return daysBetween(i.Start, i.End) + 1
}

// Degenerate reports whether the interval is a single instant, the shape
// BuildTimelineWindow returns for an empty task list. There is nothing to
// lay out inside a degenerate window.
func (i Interval) Degenerate() bool {
	return i.Start.Equal(i.End)
}

// TaskInterval pairs a task with its day-granular interval. It is derived
// fresh for every layout pass and never stored.
type TaskInterval struct {
	Task     model.Task
	Interval Interval
}

// WithIntervals wraps each task with the interval spanned by its start and
// end dates.
func WithIntervals(tasks []model.Task) []TaskInterval {
	items := make([]TaskInterval, len(tasks))
	for i, t := range tasks {
		items[i] = TaskInterval{Task: t, Interval: NewDayInterval(t.StartDate, t.EndDate)}
	}
	return items
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// daysBetween returns the distance in whole calendar days between the days
// containing a and b. Rounding absorbs DST shifts.
func daysBetween(a, b time.Time) int {
	hours := startOfDay(b).Sub(startOfDay(a)).Hours()
	if hours >= 0 {
		return int(hours/24 + 0.5)
	}
	return -int(-hours/24 + 0.5)
}
