package lastplanner

import "github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"

// CellHandlers carries the callbacks the consuming layer wants attached to
// task cells. The renderer never invokes them, it only binds them to the
// cells they belong to.
type CellHandlers struct {
	OnTaskClick    func(model.Task)
	OnStatusToggle func(model.Task)
}

// Cell is one run of columns in a rendered planner row. A blank cell covers
// exactly one uncovered day; a task cell spans the task's full day range and
// carries the task payload plus whichever callback is active for the current
// mode.
type Cell struct {
	Days     int
	Task     *model.Task
	OnClick  func()
	OnToggle func()
}

// Blank reports whether the cell is a one-day filler with no task attached.
func (c Cell) Blank() bool {
	return c.Task == nil
}

// RenderRow returns a renderer bound to a timeline window. The returned
// function walks a row of non-overlapping tasks, already sorted by start
// date, and emits the complete cell sequence for it: one blank cell per
// uncovered day before, between and after the tasks, and one spanning cell
// per task. The total day count of the emitted cells always equals the
// window's day count.
//
// OnClick is attached when the grid is read-only, OnToggle when it is in
// edit mode. Gaps that come out negative on malformed input are clamped to
// zero rather than rejected.
func RenderRow(window Interval, editMode bool, handlers CellHandlers) func(row []TaskInterval) []Cell {
	return func(row []TaskInterval) []Cell {
		if len(row) == 0 {
			return blankCells(nil, window.Days())
		}

		cells := make([]Cell, 0, 2*len(row)+1)
		cells = blankCells(cells, daysBetween(window.Start, row[0].Interval.Start))

		for i, item := range row {
			if i > 0 {
				cells = blankCells(cells, daysBetween(row[i-1].Interval.End, item.Interval.Start)-1)
			}
			cells = append(cells, taskCell(item, editMode, handlers))
		}

		last := row[len(row)-1]
		cells = blankCells(cells, daysBetween(last.Interval.End, window.End))

		return cells
	}
}

func taskCell(item TaskInterval, editMode bool, handlers CellHandlers) Cell {
	cell := Cell{Days: item.Interval.Days()}
	task := item.Task
	cell.Task = &task

	if editMode {
		if handlers.OnStatusToggle != nil {
			toggle := handlers.OnStatusToggle
			cell.OnToggle = func() { toggle(task) }
		}
	} else if handlers.OnTaskClick != nil {
		click := handlers.OnTaskClick
		cell.OnClick = func() { click(task) }
	}

	return cell
}

// blankCells appends n single-day filler cells, treating negative n as zero.
func blankCells(cells []Cell, n int) []Cell {
	for i := 0; i < n; i++ {
		cells = append(cells, Cell{Days: 1})
	}
	return cells
}
