package planner

import (
	"testing"

	"clocking/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeDailyLoad(t *testing.T) {
	allocations := []models.Allocation{
		{ID: "a1", UserID: "u-1", StartDate: models.NewDate(2025, 1, 10), DurationDays: 3, HoursPerDay: 8},
		{ID: "a2", UserID: "u-1", StartDate: models.NewDate(2025, 1, 11), DurationDays: 1, HoursPerDay: 2},
		{ID: "a3", UserID: "u-2", StartDate: models.NewDate(2025, 1, 10), DurationDays: 5, HoursPerDay: 4},
	}
	logs := []models.TimeLog{
		{ID: "l1", CollaboratorID: "u-1", Date: models.NewDate(2025, 1, 11), Hours: 1.5},
		{ID: "l2", CollaboratorID: "u-1", Date: models.NewDate(2025, 1, 11), Hours: 0.5},
		{ID: "l3", CollaboratorID: "u-1", Date: models.NewDate(2025, 1, 12), Hours: 3},
		{ID: "l4", CollaboratorID: "u-2", Date: models.NewDate(2025, 1, 11), Hours: 7},
	}

	t.Run("overlapping allocations are summed", func(t *testing.T) {
		load := ComputeDailyLoad("u-1", models.NewDate(2025, 1, 11), allocations, logs)
		assert.Equal(t, DailyLoad{Planned: 10, Actual: 2, Total: 12}, load)
		assert.Equal(t, CapacityOver, load.Capacity())
	})

	t.Run("right edge is open", func(t *testing.T) {
		load := ComputeDailyLoad("u-1", models.NewDate(2025, 1, 13), allocations, logs)
		assert.Equal(t, DailyLoad{}, load)
	})

	t.Run("left edge is closed", func(t *testing.T) {
		load := ComputeDailyLoad("u-1", models.NewDate(2025, 1, 10), allocations, logs)
		assert.Equal(t, DailyLoad{Planned: 8, Total: 8}, load)
	})

	t.Run("no matches gives zero", func(t *testing.T) {
		assert.Equal(t, DailyLoad{}, ComputeDailyLoad("u-9", models.NewDate(2025, 1, 11), allocations, logs))
		assert.Equal(t, DailyLoad{}, ComputeDailyLoad("u-1", models.NewDate(2025, 1, 11), nil, nil))
	})
}

func TestComputeDailyLoad_Additive(t *testing.T) {
	a := []models.Allocation{
		{ID: "a1", UserID: "u-1", StartDate: models.NewDate(2025, 1, 1), DurationDays: 10, HoursPerDay: 3},
		{ID: "a2", UserID: "u-1", StartDate: models.NewDate(2025, 1, 4), DurationDays: 2, HoursPerDay: 1.5},
	}
	b := []models.Allocation{
		{ID: "b1", UserID: "u-1", StartDate: models.NewDate(2025, 1, 5), DurationDays: 1, HoursPerDay: 4},
		{ID: "b2", UserID: "u-2", StartDate: models.NewDate(2025, 1, 5), DurationDays: 1, HoursPerDay: 6},
	}
	union := append(append([]models.Allocation{}, a...), b...)

	for d := 1; d <= 12; d++ {
		date := models.NewDate(2025, 1, d)
		la := ComputeDailyLoad("u-1", date, a, nil)
		lb := ComputeDailyLoad("u-1", date, b, nil)
		lu := ComputeDailyLoad("u-1", date, union, nil)
		assert.Equal(t, la.Planned+lb.Planned, lu.Planned, "day %s", date)
		assert.Equal(t, la.Total+lb.Total, lu.Total, "day %s", date)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		total float64
		want  Capacity
	}{
		{0, CapacityNeutral},
		{0.25, CapacityUnder},
		{5.75, CapacityUnder},
		{6, CapacityNominal},
		{9, CapacityNominal},
		{9.25, CapacityOver},
		{24, CapacityOver},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.total), "total %v", tt.total)
	}
}
