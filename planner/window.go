package planner

import (
	"errors"
	"fmt"

	"clocking/models"
)

var ErrInvalidViewMode = errors.New("unknown view mode")

type ViewMode string

const (
	ViewWeek      ViewMode = "week"
	ViewFortnight ViewMode = "fortnight"
	ViewMonth     ViewMode = "month"
)

func ParseViewMode(s string) (ViewMode, error) {
	switch m := ViewMode(s); m {
	case ViewWeek, ViewFortnight, ViewMonth:
		return m, nil
	case "":
		return ViewFortnight, nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidViewMode, s)
}

// Days is the number of columns the mode shows.
func (m ViewMode) Days() int {
	switch m {
	case ViewWeek:
		return 7
	case ViewMonth:
		return 31
	default:
		return 14
	}
}

// Step is how far one navigation click moves the window.
func (m ViewMode) Step() int {
	switch m {
	case ViewWeek:
		return 7
	case ViewMonth:
		return 30
	default:
		return 14
	}
}

// Window is the span of days shown by the planner.
type Window struct {
	Start models.Date `json:"start"`
	Mode  ViewMode    `json:"mode"`
}

func DefaultWindow(today models.Date) Window {
	return Window{Start: today, Mode: ViewFortnight}
}

func (w Window) Days() []models.Date {
	n := w.Mode.Days()
	days := make([]models.Date, n)
	for i := 0; i < n; i++ {
		days[i] = w.Start.AddDays(i)
	}
	return days
}

func (w Window) End() models.Date {
	return w.Start.AddDays(w.Mode.Days() - 1)
}

// Navigate moves the window by direction steps (negative goes back).
func (w Window) Navigate(direction int) Window {
	w.Start = w.Start.AddDays(direction * w.Mode.Step())
	return w
}

func (w Window) WithMode(mode ViewMode) Window {
	w.Mode = mode
	return w
}
