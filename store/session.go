package store

import (
	"context"
	"errors"
	"strings"

	"clocking/models"
	"clocking/planner"

	"go.uber.org/zap"
)

var (
	ErrUserNotFound = errors.New("collaborator not found, check the name")
	ErrNotSignedIn  = errors.New("no collaborator signed in")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidTab   = errors.New("tab not available for this profile")
)

type Tab string

const (
	TabMyDay    Tab = "my-day"
	TabHistory  Tab = "history"
	TabTeam     Tab = "team"
	TabPlanning Tab = "planning"
	TabReports  Tab = "reports"
)

// TabRoles lists which profiles see each tab.
var TabRoles = map[Tab][]models.Role{
	TabMyDay:    {models.RoleCollaborator, models.RoleCoordinator},
	TabHistory:  {models.RoleCollaborator, models.RoleCoordinator},
	TabTeam:     {models.RoleCoordinator, models.RoleDirector},
	TabPlanning: {models.RoleCoordinator, models.RoleDirector},
	TabReports:  {models.RoleCoordinator, models.RoleDirector},
}

func (t Tab) AllowedFor(role models.Role) bool {
	for _, r := range TabRoles[t] {
		if r == role {
			return true
		}
	}
	return false
}

// Session is the signed-in user together with the view it is looking at.
type Session struct {
	User   models.User    `json:"user"`
	Tab    Tab            `json:"tab"`
	Window planner.Window `json:"window"`
}

func newSession(u models.User, today models.Date) *Session {
	return &Session{
		User:   u,
		Tab:    landingTab(u.Role),
		Window: planner.DefaultWindow(today),
	}
}

// Directors have no personal day view and land on the team tab.
func landingTab(role models.Role) Tab {
	if role == models.RoleDirector {
		return TabTeam
	}
	return TabMyDay
}

// Login signs in the first roster entry whose name matches name, ignoring
// case and surrounding spaces.
func (s *Store) Login(ctx context.Context, name string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := strings.ToLower(strings.TrimSpace(name))
	if wanted == "" {
		return models.User{}, ErrUserNotFound
	}
	for _, u := range s.users {
		if strings.ToLower(u.Name) == wanted {
			s.session = newSession(u, s.today())
			s.persistSession(ctx)
			s.logger.Info("collaborator signed in", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	s.persistSession(ctx)
}

// Session returns a copy of the current session.
func (s *Store) Session() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

func (s *Store) CurrentUser() (models.User, bool) {
	sess, ok := s.Session()
	return sess.User, ok
}

func (s *Store) SetTab(tab Tab) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return Session{}, ErrNotSignedIn
	}
	if !tab.AllowedFor(s.session.User.Role) {
		return *s.session, ErrInvalidTab
	}
	s.session.Tab = tab
	return *s.session, nil
}

func (s *Store) SetWindow(w planner.Window) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return Session{}, ErrNotSignedIn
	}
	if w.Start.IsZero() {
		w.Start = s.today()
	}
	if w.Mode == "" {
		w.Mode = planner.ViewFortnight
	}
	s.session.Window = w
	return *s.session, nil
}

// NavigateWindow moves the planner window; direction 0 jumps back to today.
func (s *Store) NavigateWindow(direction int) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return Session{}, ErrNotSignedIn
	}
	if direction == 0 {
		s.session.Window.Start = s.today()
	} else {
		s.session.Window = s.session.Window.Navigate(direction)
	}
	return *s.session, nil
}
