package lastplanner_test

import (
	"testing"
	"time"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/lastplanner"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testTask(name string, start, end time.Time, assignees ...model.User) model.Task {
	return model.Task{
		ID:        uuid.New(),
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Status:    model.TaskStatusNotStarted,
		Assignees: assignees,
	}
}

func TestNewDayInterval_NormalizesTimeOfDay(t *testing.T) {
	iv := lastplanner.NewDayInterval(
		time.Date(2024, time.June, 1, 14, 30, 0, 0, time.UTC),
		time.Date(2024, time.June, 3, 9, 15, 0, 0, time.UTC),
	)

	assert.Equal(t, day(2024, time.June, 1), iv.Start)
	assert.Equal(t, 2024, iv.End.Year())
	assert.Equal(t, time.June, iv.End.Month())
	assert.Equal(t, 3, iv.End.Day())
	assert.Equal(t, 23, iv.End.Hour())
	assert.Equal(t, 3, iv.Days())
}

func TestInterval_Overlaps(t *testing.T) {
	a := lastplanner.NewDayInterval(day(2024, time.June, 1), day(2024, time.June, 5))

	tests := []struct {
		name    string
		other   lastplanner.Interval
		overlap bool
	}{
		{"contained", lastplanner.NewDayInterval(day(2024, time.June, 2), day(2024, time.June, 3)), true},
		{"shared last day", lastplanner.NewDayInterval(day(2024, time.June, 5), day(2024, time.June, 8)), true},
		{"shared first day", lastplanner.NewDayInterval(day(2024, time.May, 28), day(2024, time.June, 1)), true},
		{"adjacent after", lastplanner.NewDayInterval(day(2024, time.June, 6), day(2024, time.June, 8)), false},
		{"adjacent before", lastplanner.NewDayInterval(day(2024, time.May, 28), day(2024, time.May, 31)), false},
		{"identical", a, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, a.Overlaps(tt.other))
			assert.Equal(t, tt.overlap, tt.other.Overlaps(a))
		})
	}
}

func TestInterval_Days_SingleDay(t *testing.T) {
	iv := lastplanner.NewDayInterval(day(2024, time.June, 1), day(2024, time.June, 1))
	assert.Equal(t, 1, iv.Days())
}

func TestInterval_Days_AcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Helsinki")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// DST starts March 31 2024 in Helsinki; the span must still count
	// calendar days, not 24h blocks.
	iv := lastplanner.NewDayInterval(
		time.Date(2024, time.March, 30, 12, 0, 0, 0, loc),
		time.Date(2024, time.April, 2, 12, 0, 0, 0, loc),
	)
	assert.Equal(t, 4, iv.Days())
}

func TestWithIntervals_PreservesOrder(t *testing.T) {
	tasks := []model.Task{
		testTask("A", day(2024, time.June, 1), day(2024, time.June, 5)),
		testTask("B", day(2024, time.June, 10), day(2024, time.June, 12)),
	}

	items := lastplanner.WithIntervals(tasks)

	assert.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Task.Name)
	assert.Equal(t, "B", items[1].Task.Name)
	assert.Equal(t, 5, items[0].Interval.Days())
	assert.Equal(t, 3, items[1].Interval.Days())
}
