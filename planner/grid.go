package planner

import (
	"strings"

	"clocking/models"
)

// HiddenUserName is the roster entry that never appears as a planner row.
const HiddenUserName = "Admin"

type AllocationSpan struct {
	models.Allocation
	FirstDay bool `json:"firstDay"`
}

type Cell struct {
	Date        models.Date      `json:"date"`
	Load        DailyLoad        `json:"load"`
	Capacity    Capacity         `json:"capacity"`
	Allocations []AllocationSpan `json:"allocations"`
	Logs        []models.TimeLog `json:"logs"`
	Weekend     bool             `json:"weekend"`
	Today       bool             `json:"today"`
}

type Row struct {
	User  models.User `json:"user"`
	Cells []Cell      `json:"cells"`
}

type Grid struct {
	Window Window        `json:"window"`
	Days   []models.Date `json:"days"`
	Rows   []Row         `json:"rows"`
}

// PlannableUsers drops the administrative account from a roster.
func PlannableUsers(users []models.User) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.EqualFold(u.Name, HiddenUserName) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// BuildGrid lays out one row per plannable user and one cell per day of the
// window. Every cell load is computed independently with ComputeDailyLoad.
func BuildGrid(users []models.User, allocations []models.Allocation, logs []models.TimeLog, window Window, today models.Date) Grid {
	days := window.Days()
	grid := Grid{Window: window, Days: days}

	for _, u := range PlannableUsers(users) {
		row := Row{User: u, Cells: make([]Cell, 0, len(days))}
		for _, d := range days {
			load := ComputeDailyLoad(u.ID, d, allocations, logs)
			cell := Cell{
				Date:        d,
				Load:        load,
				Capacity:    load.Capacity(),
				Allocations: []AllocationSpan{},
				Logs:        []models.TimeLog{},
				Weekend:     d.IsWeekend(),
				Today:       d == today,
			}
			for i := range allocations {
				a := &allocations[i]
				if a.UserID == u.ID && a.Covers(d) {
					cell.Allocations = append(cell.Allocations, AllocationSpan{Allocation: *a, FirstDay: a.StartDate == d})
				}
			}
			for i := range logs {
				if logs[i].CollaboratorID == u.ID && logs[i].Date == d {
					cell.Logs = append(cell.Logs, logs[i])
				}
			}
			row.Cells = append(row.Cells, cell)
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}
