package store

import (
	"context"
	"errors"
	"strings"

	"clocking/models"

	"go.uber.org/zap"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrInvalidRole  = errors.New("invalid role")
)

func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.User(nil), s.users...)
}

func (s *Store) GetUser(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.userIndex(id); i >= 0 {
		return s.users[i], true
	}
	return models.User{}, false
}

func (s *Store) userIndex(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) AddUser(ctx context.Context, name string, role models.Role, specialty string) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, ErrNameRequired
	}
	if role == "" {
		role = models.RoleCollaborator
	}
	if !role.Valid() {
		return models.User{}, ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := models.User{
		ID:        "u-" + s.newID(),
		Name:      name,
		Role:      role,
		Active:    true,
		Specialty: specialty,
	}
	s.users = append(s.users, u)
	s.sortUsers()
	s.persist(ctx)

	s.logger.Info("user added", zap.String("user_id", u.ID), zap.String("role", string(role)))
	return u, nil
}

// UpdateUser applies patch to the user with id and keeps the signed-in
// session record in step with the roster. The bool is false when no user has
// that id, in which case nothing changes.
func (s *Store) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, bool, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return models.User{}, false, ErrNameRequired
	}
	if patch.Role != nil && !patch.Role.Valid() {
		return models.User{}, false, ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return models.User{}, false, nil
	}
	updated := patch.Apply(s.users[i])
	s.users[i] = updated
	s.sortUsers()
	s.persist(ctx)

	if s.session != nil && s.session.User.ID == id {
		s.session.User = patch.Apply(s.session.User)
		s.persistSession(ctx)
	}
	return updated, true, nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return false
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	s.sortUsers()
	s.persist(ctx)

	s.logger.Info("user deleted", zap.String("user_id", id))
	return true
}

// ParseRoster splits a pasted block into names, one per line, trimming
// spaces and skipping blank lines.
func ParseRoster(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ImportUsers adds every name of the block as an active collaborator.
func (s *Store) ImportUsers(ctx context.Context, text string) []models.User {
	names := ParseRoster(text)
	if len(names) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	imported := make([]models.User, 0, len(names))
	for _, name := range names {
		imported = append(imported, models.User{
			ID:     "u-" + s.newID(),
			Name:   name,
			Role:   models.RoleCollaborator,
			Active: true,
		})
	}
	s.users = append(s.users, imported...)
	s.sortUsers()
	s.persist(ctx)

	s.logger.Info("users imported", zap.Int("count", len(imported)))
	return imported
}

func (s *Store) ToggleUserStatus(ctx context.Context, id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return models.User{}, false
	}
	s.users[i].Active = !s.users[i].Active
	toggled := s.users[i]
	s.sortUsers()
	s.persist(ctx)
	return toggled, true
}
