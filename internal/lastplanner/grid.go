package lastplanner

import (
	"sort"

	"github.com/google/uuid"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/model"
)

// UserRows is one user's slice of the planner grid: every display row of
// their tasks, fully rendered into cells. A user with no tasks gets an empty
// Rows slice; the consuming layer draws the placeholder line.
type UserRows struct {
	User model.User
	Rows [][]Cell
}

// BuildGrid lays the given tasks out per assignee inside a shared timeline
// window. Tasks are grouped by assignee (a task assigned to several users
// appears in each of their sections), clustered by overlap, packed into
// rows, sorted chronologically within each row and rendered into cells.
//
// The users slice controls section order. Inputs are never mutated.
func BuildGrid(window Interval, users []model.User, tasks []model.Task, editMode bool, handlers CellHandlers) []UserRows {
	byAssignee := make(map[uuid.UUID][]TaskInterval)
	for _, t := range tasks {
		item := TaskInterval{Task: t, Interval: NewDayInterval(t.StartDate, t.EndDate)}
		for _, assignee := range t.Assignees {
			byAssignee[assignee.ID] = append(byAssignee[assignee.ID], item)
		}
	}

	render := RenderRow(window, editMode, handlers)

	grid := make([]UserRows, 0, len(users))
	for _, user := range users {
		rows := PackClustersIntoRows(ClusterByOverlap(byAssignee[user.ID]))

		rendered := make([][]Cell, 0, len(rows))
		for _, row := range rows {
			rendered = append(rendered, render(sortedByStart(row)))
		}

		grid = append(grid, UserRows{User: user, Rows: rendered})
	}

	return grid
}

// sortedByStart returns a chronologically ordered copy of a row.
func sortedByStart(row []TaskInterval) []TaskInterval {
	sorted := make([]TaskInterval, len(row))
	copy(sorted, row)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Interval.Start.Before(sorted[j].Interval.Start)
	})
	return sorted
}
