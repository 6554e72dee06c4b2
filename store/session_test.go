package store

import (
	"context"
	"testing"

	"clocking/models"
	"clocking/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Login(t *testing.T) {
	p := newMemPersister()
	s := newTestStore(t, p)
	ctx := context.Background()

	u, err := s.Login(ctx, "  alexandre MENEGHEL ")
	require.NoError(t, err)
	assert.Equal(t, "u-5", u.ID)

	sess, ok := s.Session()
	require.True(t, ok)
	assert.Equal(t, TabMyDay, sess.Tab)
	assert.Equal(t, planner.DefaultWindow(models.NewDate(2025, 1, 10)), sess.Window)

	var stored models.User
	p.decode(t, KeyCurrentUser, &stored)
	assert.Equal(t, "u-5", stored.ID)

	_, err = s.Login(ctx, "Alexandre")
	assert.ErrorIs(t, err, ErrUserNotFound, "partial names do not match")

	_, err = s.Login(ctx, "   ")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStore_LoginDirectorLandsOnTeam(t *testing.T) {
	s := newTestStore(t, nil)

	_, err := s.Login(context.Background(), "admin")
	require.NoError(t, err)

	sess, _ := s.Session()
	assert.Equal(t, TabTeam, sess.Tab)
}

func TestStore_LoginFirstMatchWins(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	first := s.ImportUsers(ctx, "Pedro Melo")
	require.Len(t, first, 1)

	u, err := s.Login(ctx, "pedro melo")
	require.NoError(t, err)

	users := s.Users()
	var firstMatch models.User
	for _, candidate := range users {
		if candidate.Name == "Pedro Melo" {
			firstMatch = candidate
			break
		}
	}
	assert.Equal(t, firstMatch.ID, u.ID)
}

func TestStore_Logout(t *testing.T) {
	p := newMemPersister()
	s := newTestStore(t, p)
	ctx := context.Background()

	_, err := s.Login(ctx, "Raphael")
	require.NoError(t, err)
	s.Logout(ctx)

	_, ok := s.Session()
	assert.False(t, ok)

	var stored *models.User
	p.decode(t, KeyCurrentUser, &stored)
	assert.Nil(t, stored)
}

func TestStore_ViewState(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	_, err := s.SetTab(TabPlanning)
	assert.ErrorIs(t, err, ErrNotSignedIn)

	_, err = s.Login(ctx, "Raphael")
	require.NoError(t, err)

	_, err = s.SetTab(TabReports)
	assert.ErrorIs(t, err, ErrInvalidTab, "collaborators have no reports tab")

	sess, err := s.SetTab(TabHistory)
	require.NoError(t, err)
	assert.Equal(t, TabHistory, sess.Tab)

	sess, err = s.SetWindow(planner.Window{Mode: planner.ViewWeek})
	require.NoError(t, err)
	assert.Equal(t, models.NewDate(2025, 1, 10), sess.Window.Start)

	sess, err = s.NavigateWindow(2)
	require.NoError(t, err)
	assert.Equal(t, models.NewDate(2025, 1, 24), sess.Window.Start)

	sess, err = s.NavigateWindow(0)
	require.NoError(t, err)
	assert.Equal(t, models.NewDate(2025, 1, 10), sess.Window.Start)
}

func TestTab_AllowedFor(t *testing.T) {
	assert.True(t, TabMyDay.AllowedFor(models.RoleCollaborator))
	assert.False(t, TabMyDay.AllowedFor(models.RoleDirector))
	assert.True(t, TabPlanning.AllowedFor(models.RoleDirector))
	assert.True(t, TabPlanning.AllowedFor(models.RoleCoordinator))
	assert.False(t, TabPlanning.AllowedFor(models.RoleCollaborator))
	assert.False(t, Tab("settings").AllowedFor(models.RoleCoordinator))
}
