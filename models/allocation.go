package models

import (
	"errors"
	"math"
	"strings"
)

// AllocationPalette holds the colors handed out to new allocations.
var AllocationPalette = []string{"#003057", "#0058a3", "#001b31", "#0e7490", "#334155"}

var (
	ErrAllocationUserRequired    = errors.New("allocation requires a user")
	ErrAllocationProjectRequired = errors.New("allocation requires a project")
	ErrAllocationStartRequired   = errors.New("allocation requires a start date")
	ErrInvalidDuration           = errors.New("duration must be a positive number of days")
	ErrInvalidHoursPerDay        = errors.New("hours per day must be a number")
)

// Allocation plans HoursPerDay of a user's time on a project for
// DurationDays consecutive calendar days starting at StartDate.
type Allocation struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	ProjectID    string  `json:"projectId"`
	ProjectName  string  `json:"projectName"`
	StartDate    Date    `json:"startDate"`
	DurationDays int     `json:"durationDays"`
	HoursPerDay  float64 `json:"hoursPerDay"`
	Color        string  `json:"color"`
}

// Covers reports whether d lies in [StartDate, StartDate+DurationDays).
func (a *Allocation) Covers(d Date) bool {
	offset := d.DaysSince(a.StartDate)
	return offset >= 0 && offset < a.DurationDays
}

func (a *Allocation) EndDate() Date {
	return a.StartDate.AddDays(a.DurationDays - 1)
}

type AllocationDraft struct {
	UserID       string  `json:"userId"`
	ProjectID    string  `json:"projectId"`
	ProjectName  string  `json:"projectName"`
	StartDate    Date    `json:"startDate"`
	DurationDays int     `json:"durationDays"`
	HoursPerDay  float64 `json:"hoursPerDay"`
	Color        string  `json:"color"`
}

// Validate checks required-field presence only; overlaps are allowed.
func (d AllocationDraft) Validate() error {
	if strings.TrimSpace(d.UserID) == "" {
		return ErrAllocationUserRequired
	}
	if strings.TrimSpace(d.ProjectID) == "" {
		return ErrAllocationProjectRequired
	}
	if d.StartDate.IsZero() {
		return ErrAllocationStartRequired
	}
	if d.DurationDays <= 0 {
		return ErrInvalidDuration
	}
	if math.IsNaN(d.HoursPerDay) || math.IsInf(d.HoursPerDay, 0) {
		return ErrInvalidHoursPerDay
	}
	return nil
}
