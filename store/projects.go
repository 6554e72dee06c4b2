package store

import (
	"context"
	"errors"
	"strings"

	"clocking/models"

	"go.uber.org/zap"
)

var ErrInvalidProjectStatus = errors.New("invalid project status")

func (s *Store) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Project(nil), s.projects...)
}

// ActiveProjects are the projects offered for new entries.
func (s *Store) ActiveProjects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Project
	for _, p := range s.projects {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) GetProject(id string) (models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(id)
	if p == nil {
		return models.Project{}, false
	}
	return *p, true
}

func (s *Store) findProject(id string) *models.Project {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return &s.projects[i]
		}
	}
	return nil
}

func (s *Store) AddProject(ctx context.Context, name, code string) (models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Project{}, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Project{
		ID:     "p-" + s.newID(),
		Name:   name,
		Code:   strings.TrimSpace(code),
		Status: models.ProjectActive,
	}
	s.projects = append(s.projects, p)
	s.persist(ctx)

	s.logger.Info("project added", zap.String("project_id", p.ID))
	return p, nil
}

// SetProjectStatus opens or closes a project. Status is the only field that
// changes once a project exists.
func (s *Store) SetProjectStatus(ctx context.Context, id string, status models.ProjectStatus) (models.Project, bool, error) {
	if !status.Valid() {
		return models.Project{}, false, ErrInvalidProjectStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(id)
	if p == nil {
		return models.Project{}, false, nil
	}
	p.Status = status
	s.persist(ctx)
	return *p, true, nil
}

func (s *Store) Activities() []string {
	return append([]string(nil), models.Activities...)
}
