// Package planner computes daily capacity load and the resource planner grid.
package planner

import "clocking/models"

// DailyLoad is the hours booked for one user on one day.
type DailyLoad struct {
	Planned float64 `json:"planned"`
	Actual  float64 `json:"actual"`
	Total   float64 `json:"total"`
}

// ComputeDailyLoad sums the hoursPerDay of the user's allocations covering
// date (planned) and the hours the user logged on date (actual). It is
// recomputed from scratch on every call.
func ComputeDailyLoad(userID string, date models.Date, allocations []models.Allocation, logs []models.TimeLog) DailyLoad {
	var load DailyLoad
	for i := range allocations {
		a := &allocations[i]
		if a.UserID == userID && a.Covers(date) {
			load.Planned += a.HoursPerDay
		}
	}
	for i := range logs {
		l := &logs[i]
		if l.CollaboratorID == userID && l.Date == date {
			load.Actual += l.Hours
		}
	}
	load.Total = load.Planned + load.Actual
	return load
}

func (l DailyLoad) Capacity() Capacity {
	return Classify(l.Total)
}

type Capacity string

const (
	CapacityNeutral Capacity = "neutral"
	CapacityUnder   Capacity = "under"
	CapacityNominal Capacity = "nominal"
	CapacityOver    Capacity = "over"
)

const (
	NominalMinHours = 6.0
	NominalMaxHours = 9.0
)

// Classify maps a daily total to its capacity band. Bands are a visual hint
// and never block a booking.
func Classify(total float64) Capacity {
	switch {
	case total == 0:
		return CapacityNeutral
	case total < NominalMinHours:
		return CapacityUnder
	case total <= NominalMaxHours:
		return CapacityNominal
	default:
		return CapacityOver
	}
}
