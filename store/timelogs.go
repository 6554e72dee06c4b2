package store

import (
	"context"

	"clocking/models"

	"go.uber.org/zap"
)

// Logs returns the entries matching filter, newest entry first.
func (s *Store) Logs(filter models.TimeLogFilter) []models.TimeLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.TimeLog{}
	for i := range s.logs {
		if filter.Match(&s.logs[i]) {
			out = append(out, s.logs[i])
		}
	}
	return out
}

func (s *Store) GetLog(id string) (models.TimeLog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.logIndex(id); i >= 0 {
		return s.logs[i], true
	}
	return models.TimeLog{}, false
}

// DayTotal is the hours collaboratorID has logged on date.
func (s *Store) DayTotal(collaboratorID string, date models.Date) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dayTotal(collaboratorID, date)
}

func (s *Store) dayTotal(collaboratorID string, date models.Date) float64 {
	var total float64
	for i := range s.logs {
		if s.logs[i].CollaboratorID == collaboratorID && s.logs[i].Date == date {
			total += s.logs[i].Hours
		}
	}
	return total
}

func (s *Store) logIndex(id string) int {
	for i := range s.logs {
		if s.logs[i].ID == id {
			return i
		}
	}
	return -1
}

// AddLog records a new entry for actor. The demand-type defaults are applied
// first, then the field rules and the 24h same-day cap. A rejected entry
// leaves the collection untouched.
func (s *Store) AddLog(ctx context.Context, actor models.User, draft models.TimeLogDraft) (models.TimeLog, error) {
	if actor.ID == "" {
		return models.TimeLog{}, ErrNotSignedIn
	}

	draft = draft.WithDemandDefaults()
	if err := draft.Validate(); err != nil {
		return models.TimeLog{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if draft.HasProject() {
		draft.ProjectName = ""
	}
	if err := s.resolveProject(&draft); err != nil {
		return models.TimeLog{}, err
	}
	if s.dayTotal(actor.ID, draft.Date)+draft.Hours > models.MaxDailyHours {
		return models.TimeLog{}, models.ErrDailyCapExceeded
	}

	now := s.now()
	log := models.TimeLog{
		ID:               s.newID(),
		CollaboratorID:   actor.ID,
		CollaboratorName: actor.Name,
		Date:             draft.Date,
		DemandType:       draft.DemandType,
		ProjectID:        draft.ProjectID,
		ProjectName:      draft.ProjectName,
		Phase:            draft.Phase,
		ActivityType:     draft.ActivityType,
		Hours:            draft.Hours,
		Observation:      draft.Observation,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.logs = append([]models.TimeLog{log}, s.logs...)
	s.persist(ctx)

	s.logger.Info("time log added",
		zap.String("log_id", log.ID),
		zap.String("collaborator_id", actor.ID),
		zap.String("date", log.Date.String()),
		zap.Float64("hours", log.Hours),
	)
	return log, nil
}

// UpdateLog edits an entry owned by actor, or any entry when actor is a
// coordinator. The daily cap is only enforced on creation. The bool is false
// when id is unknown.
func (s *Store) UpdateLog(ctx context.Context, actor models.User, id string, patch models.TimeLogPatch) (models.TimeLog, bool, error) {
	if actor.ID == "" {
		return models.TimeLog{}, false, ErrNotSignedIn
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.logIndex(id)
	if i < 0 {
		return models.TimeLog{}, false, nil
	}
	current := s.logs[i]
	if !actor.CanManageLogOf(current.CollaboratorID) {
		return models.TimeLog{}, true, ErrForbidden
	}

	draft := patch.Apply(current.Draft()).WithDemandDefaults()
	if err := draft.Validate(); err != nil {
		return models.TimeLog{}, true, err
	}
	if err := s.resolveProject(&draft); err != nil {
		return models.TimeLog{}, true, err
	}

	updated := current
	updated.Date = draft.Date
	updated.DemandType = draft.DemandType
	updated.ProjectID = draft.ProjectID
	updated.ProjectName = draft.ProjectName
	updated.Phase = draft.Phase
	updated.ActivityType = draft.ActivityType
	updated.Hours = draft.Hours
	updated.Observation = draft.Observation
	updated.UpdatedAt = s.now()
	s.logs[i] = updated
	s.persist(ctx)

	s.logger.Info("time log updated", zap.String("log_id", id), zap.String("actor_id", actor.ID))
	return updated, true, nil
}

func (s *Store) DeleteLog(ctx context.Context, actor models.User, id string) (bool, error) {
	if actor.ID == "" {
		return false, ErrNotSignedIn
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.logIndex(id)
	if i < 0 {
		return false, nil
	}
	if !actor.CanManageLogOf(s.logs[i].CollaboratorID) {
		return true, ErrForbidden
	}
	s.logs = append(s.logs[:i], s.logs[i+1:]...)
	s.persist(ctx)

	s.logger.Info("time log deleted", zap.String("log_id", id), zap.String("actor_id", actor.ID))
	return true, nil
}

// resolveProject fills the project snapshot of draft. An empty ProjectName
// is looked up from the project list; a non-empty one is kept as recorded.
func (s *Store) resolveProject(draft *models.TimeLogDraft) error {
	if !draft.HasProject() {
		draft.ProjectID = models.NoProjectID
		draft.ProjectName = models.NotApplicable
		return nil
	}
	p := s.findProject(draft.ProjectID)
	if p == nil {
		if draft.DemandType == models.DemandProject {
			return models.ErrProjectRequired
		}
		if draft.ProjectName == "" {
			draft.ProjectName = models.NotApplicable
		}
		return nil
	}
	if draft.ProjectName == "" {
		draft.ProjectName = p.Name
	}
	return nil
}
