package store

import (
	"context"

	"clocking/models"

	"go.uber.org/zap"
)

const fallbackProjectName = "Projeto"

func (s *Store) Allocations() []models.Allocation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Allocation(nil), s.allocations...)
}

// Snapshot returns copies of the collections the planner reads.
func (s *Store) Snapshot() ([]models.User, []models.Allocation, []models.TimeLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.User(nil), s.users...),
		append([]models.Allocation(nil), s.allocations...),
		append([]models.TimeLog(nil), s.logs...)
}

func (s *Store) allocationIndex(id string) int {
	for i := range s.allocations {
		if s.allocations[i].ID == id {
			return i
		}
	}
	return -1
}

// AddAllocation appends a new allocation. Only required fields are checked;
// overlapping allocations for the same user are allowed.
func (s *Store) AddAllocation(ctx context.Context, draft models.AllocationDraft) (models.Allocation, error) {
	if err := draft.Validate(); err != nil {
		return models.Allocation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := draft.ProjectName
	if name == "" {
		name = fallbackProjectName
		if p := s.findProject(draft.ProjectID); p != nil {
			name = p.Name
		}
	}
	color := draft.Color
	if color == "" {
		color = s.color()
	}

	a := models.Allocation{
		ID:           s.newID(),
		UserID:       draft.UserID,
		ProjectID:    draft.ProjectID,
		ProjectName:  name,
		StartDate:    draft.StartDate,
		DurationDays: draft.DurationDays,
		HoursPerDay:  draft.HoursPerDay,
		Color:        color,
	}
	s.allocations = append(s.allocations, a)
	s.persist(ctx)

	s.logger.Info("allocation added",
		zap.String("allocation_id", a.ID),
		zap.String("user_id", a.UserID),
		zap.String("start", a.StartDate.String()),
		zap.Int("days", a.DurationDays),
	)
	return a, nil
}

// MoveAllocation reassigns the user and start date of an allocation, keeping
// its duration and daily hours. Unknown ids are ignored.
func (s *Store) MoveAllocation(ctx context.Context, id, newUserID string, newDate models.Date) (models.Allocation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.allocationIndex(id)
	if i < 0 {
		return models.Allocation{}, false
	}
	s.allocations[i].UserID = newUserID
	s.allocations[i].StartDate = newDate
	s.persist(ctx)

	s.logger.Info("allocation moved",
		zap.String("allocation_id", id),
		zap.String("user_id", newUserID),
		zap.String("start", newDate.String()),
	)
	return s.allocations[i], true
}

func (s *Store) DeleteAllocation(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.allocationIndex(id)
	if i < 0 {
		return false
	}
	s.allocations = append(s.allocations[:i], s.allocations[i+1:]...)
	s.persist(ctx)

	s.logger.Info("allocation deleted", zap.String("allocation_id", id))
	return true
}
