package lastplanner_test

import (
	"testing"
	"time"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/lastplanner"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"

	"github.com/stretchr/testify/assert"
)

func totalDays(cells []lastplanner.Cell) int {
	total := 0
	for _, cell := range cells {
		total += cell.Days
	}
	return total
}

func TestRenderRow_FillsGapsAndPadding(t *testing.T) {
	tasks := []model.Task{
		testTask("A", day(2024, time.June, 1), day(2024, time.June, 5)),
		testTask("B", day(2024, time.June, 10), day(2024, time.June, 12)),
	}
	window := lastplanner.BuildTimelineWindow(tasks)
	render := lastplanner.RenderRow(window, false, lastplanner.CellHandlers{})

	cells := render(lastplanner.WithIntervals(tasks))

	// blank, A(5), 4 blanks, B(3), blank
	assert.Len(t, cells, 8)
	assert.True(t, cells[0].Blank())
	assert.Equal(t, "A", cells[1].Task.Name)
	assert.Equal(t, 5, cells[1].Days)
	for i := 2; i < 6; i++ {
		assert.True(t, cells[i].Blank())
		assert.Equal(t, 1, cells[i].Days)
	}
	assert.Equal(t, "B", cells[6].Task.Name)
	assert.Equal(t, 3, cells[6].Days)
	assert.True(t, cells[7].Blank())

	assert.Equal(t, window.Days(), totalDays(cells))
}

func TestRenderRow_AdjacentTasksProduceNoGapCells(t *testing.T) {
	tasks := []model.Task{
		testTask("A", day(2024, time.June, 1), day(2024, time.June, 5)),
		testTask("B", day(2024, time.June, 6), day(2024, time.June, 8)),
	}
	window := lastplanner.BuildTimelineWindow(tasks)
	render := lastplanner.RenderRow(window, false, lastplanner.CellHandlers{})

	cells := render(lastplanner.WithIntervals(tasks))

	// blank, A(5), B(3), blank
	assert.Len(t, cells, 4)
	assert.Equal(t, "A", cells[1].Task.Name)
	assert.Equal(t, "B", cells[2].Task.Name)
	assert.Equal(t, window.Days(), totalDays(cells))
}

func TestRenderRow_EmptyRowIsAllBlanks(t *testing.T) {
	window := lastplanner.NewDayInterval(day(2024, time.June, 1), day(2024, time.June, 7))
	render := lastplanner.RenderRow(window, false, lastplanner.CellHandlers{})

	cells := render(nil)

	assert.Len(t, cells, 7)
	for _, cell := range cells {
		assert.True(t, cell.Blank())
		assert.Equal(t, 1, cell.Days)
	}
}

func TestRenderRow_TotalDaysAlwaysMatchWindow(t *testing.T) {
	tests := []struct {
		name  string
		tasks []model.Task
	}{
		{"single task", []model.Task{
			testTask("A", day(2024, time.June, 5), day(2024, time.June, 7)),
		}},
		{"three spread tasks", []model.Task{
			testTask("A", day(2024, time.June, 1), day(2024, time.June, 2)),
			testTask("B", day(2024, time.June, 5), day(2024, time.June, 5)),
			testTask("C", day(2024, time.June, 9), day(2024, time.June, 14)),
		}},
		{"task filling the whole span", []model.Task{
			testTask("A", day(2024, time.June, 1), day(2024, time.June, 30)),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := lastplanner.BuildTimelineWindow(tt.tasks)
			render := lastplanner.RenderRow(window, false, lastplanner.CellHandlers{})

			cells := render(lastplanner.WithIntervals(tt.tasks))

			assert.Equal(t, window.Days(), totalDays(cells))
		})
	}
}

func TestRenderRow_ClickCallbackInReadOnlyMode(t *testing.T) {
	task := testTask("A", day(2024, time.June, 1), day(2024, time.June, 3))
	window := lastplanner.BuildTimelineWindow([]model.Task{task})

	var clicked, toggled []string
	handlers := lastplanner.CellHandlers{
		OnTaskClick:    func(t model.Task) { clicked = append(clicked, t.Name) },
		OnStatusToggle: func(t model.Task) { toggled = append(toggled, t.Name) },
	}
	render := lastplanner.RenderRow(window, false, handlers)

	cells := render(lastplanner.WithIntervals([]model.Task{task}))

	taskCell := cells[1]
	assert.NotNil(t, taskCell.OnClick)
	assert.Nil(t, taskCell.OnToggle)

	taskCell.OnClick()
	assert.Equal(t, []string{"A"}, clicked)
	assert.Empty(t, toggled)
}

func TestRenderRow_ToggleCallbackInEditMode(t *testing.T) {
	task := testTask("A", day(2024, time.June, 1), day(2024, time.June, 3))
	window := lastplanner.BuildTimelineWindow([]model.Task{task})

	var clicked, toggled []string
	handlers := lastplanner.CellHandlers{
		OnTaskClick:    func(t model.Task) { clicked = append(clicked, t.Name) },
		OnStatusToggle: func(t model.Task) { toggled = append(toggled, t.Name) },
	}
	render := lastplanner.RenderRow(window, true, handlers)

	cells := render(lastplanner.WithIntervals([]model.Task{task}))

	taskCell := cells[1]
	assert.Nil(t, taskCell.OnClick)
	assert.NotNil(t, taskCell.OnToggle)

	taskCell.OnToggle()
	assert.Equal(t, []string{"A"}, toggled)
	assert.Empty(t, clicked)
}

func TestRenderRow_NilHandlersLeaveCallbacksNil(t *testing.T) {
	task := testTask("A", day(2024, time.June, 1), day(2024, time.June, 3))
	window := lastplanner.BuildTimelineWindow([]model.Task{task})
	render := lastplanner.RenderRow(window, false, lastplanner.CellHandlers{})

	cells := render(lastplanner.WithIntervals([]model.Task{task}))

	assert.Nil(t, cells[1].OnClick)
	assert.Nil(t, cells[1].OnToggle)
}

func TestRenderRow_MalformedTaskDoesNotPanic(t *testing.T) {
	// start after end collapses the gap arithmetic below zero; the renderer
	// clamps instead of panicking.
	tasks := []model.Task{
		testTask("reversed", day(2024, time.June, 10), day(2024, time.June, 2)),
		testTask("B", day(2024, time.June, 4), day(2024, time.June, 5)),
	}
	window := lastplanner.NewDayInterval(day(2024, time.June, 1), day(2024, time.June, 15))
	render := lastplanner.RenderRow(window, false, lastplanner.CellHandlers{})

	assert.NotPanics(t, func() {
		render(lastplanner.WithIntervals(tasks))
	})
}
