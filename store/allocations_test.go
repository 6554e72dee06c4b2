package store

import (
	"context"
	"testing"

	"clocking/models"
	"clocking/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddAllocation(t *testing.T) {
	p := newMemPersister()
	s := newTestStore(t, p)
	ctx := context.Background()

	a, err := s.AddAllocation(ctx, models.AllocationDraft{
		UserID:       "u-7",
		ProjectID:    "p-14",
		StartDate:    models.NewDate(2025, 1, 13),
		DurationDays: 2,
		HoursPerDay:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, "id1", a.ID)
	assert.Equal(t, "Metrô BH", a.ProjectName)
	assert.Equal(t, models.AllocationPalette[0], a.Color)

	var stored []models.Allocation
	p.decode(t, KeyAllocations, &stored)
	assert.Len(t, stored, 4)

	a, err = s.AddAllocation(ctx, models.AllocationDraft{
		UserID:       "u-7",
		ProjectID:    "p-gone",
		StartDate:    models.NewDate(2025, 1, 13),
		DurationDays: 1,
		HoursPerDay:  2,
		Color:        "#123456",
	})
	require.NoError(t, err, "overlapping allocations are allowed")
	assert.Equal(t, "Projeto", a.ProjectName)
	assert.Equal(t, "#123456", a.Color)

	load := planner.ComputeDailyLoad("u-7", models.NewDate(2025, 1, 13), s.Allocations(), nil)
	assert.Equal(t, 6.0, load.Planned)
}

func TestStore_AddAllocationValidation(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()
	valid := models.AllocationDraft{
		UserID:       "u-7",
		ProjectID:    "p-1",
		StartDate:    models.NewDate(2025, 1, 13),
		DurationDays: 1,
		HoursPerDay:  8,
	}

	d := valid
	d.UserID = ""
	_, err := s.AddAllocation(ctx, d)
	assert.ErrorIs(t, err, models.ErrAllocationUserRequired)

	d = valid
	d.DurationDays = 0
	_, err = s.AddAllocation(ctx, d)
	assert.ErrorIs(t, err, models.ErrInvalidDuration)

	assert.Len(t, s.Allocations(), 3)
}

func TestStore_MoveAllocation(t *testing.T) {
	p := newMemPersister()
	s := newTestStore(t, p)
	ctx := context.Background()

	moved, found := s.MoveAllocation(ctx, "a1", "u-9", models.NewDate(2025, 2, 1))
	require.True(t, found)
	assert.Equal(t, "u-9", moved.UserID)
	assert.Equal(t, 3, moved.DurationDays)
	assert.Equal(t, 8.0, moved.HoursPerDay)

	allocations := s.Allocations()
	load := planner.ComputeDailyLoad("u-9", models.NewDate(2025, 2, 2), allocations, nil)
	assert.Equal(t, 8.0, load.Planned)
	load = planner.ComputeDailyLoad("u-1", models.NewDate(2025, 1, 10), allocations, nil)
	assert.Zero(t, load.Planned)

	var stored []models.Allocation
	p.decode(t, KeyAllocations, &stored)
	require.Len(t, stored, 3)
	assert.Equal(t, "u-9", stored[0].UserID)

	_, found = s.MoveAllocation(ctx, "missing", "u-9", models.NewDate(2025, 2, 1))
	assert.False(t, found)
}

func TestStore_DeleteAllocation(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	assert.True(t, s.DeleteAllocation(ctx, "a2"))
	assert.False(t, s.DeleteAllocation(ctx, "a2"))

	allocations := s.Allocations()
	require.Len(t, allocations, 2)
	for _, a := range allocations {
		assert.NotEqual(t, "a2", a.ID)
	}
}
