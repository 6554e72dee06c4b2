// Package store holds the in-memory entity collections and every operation
// that mutates them. A Store is created once per process and injected into
// its callers; each mutation rewrites the affected snapshots through a
// Persister.
package store

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"clocking/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Keys of the persisted snapshot records.
const (
	KeyCurrentUser = "current_user"
	KeyUsers       = "users"
	KeyLogs        = "logs"
	KeyProjects    = "projects"
	KeyAllocations = "allocations"
)

// Persister reads and writes whole-collection snapshots by key.
type Persister interface {
	Load(ctx context.Context, key string, dest any) (bool, error)
	Save(ctx context.Context, key string, value any) error
}

type Store struct {
	mu        sync.Mutex
	persister Persister
	logger    *zap.Logger
	collator  *collate.Collator
	now       func() time.Time
	newID     func() string
	color     func() string

	users       []models.User
	projects    []models.Project
	logs        []models.TimeLog
	allocations []models.Allocation
	session     *Session
}

type Option func(*Store)

// WithLocale sets the collation used to order the roster.
func WithLocale(tag language.Tag) Option {
	return func(s *Store) {
		s.collator = collate.New(tag, collate.Loose)
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// WithColorPicker replaces the random palette choice for new allocations.
func WithColorPicker(pick func() string) Option {
	return func(s *Store) {
		s.color = pick
	}
}

// New builds a Store from the persisted snapshots. Users, projects and
// allocations fall back to seed data when their record is absent; logs fall
// back to an empty list. A nil persister keeps everything in memory.
func New(ctx context.Context, persister Persister, logger *zap.Logger, opts ...Option) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		persister: persister,
		logger:    logger,
		collator:  collate.New(language.BrazilianPortuguese, collate.Loose),
		now:       time.Now,
		newID:     uuid.NewString,
		color: func() string {
			return models.AllocationPalette[rand.IntN(len(models.AllocationPalette))]
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	s.sortUsers()
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	today := models.DateOf(s.now())

	found, err := s.loadKey(ctx, KeyUsers, &s.users)
	if err != nil {
		return err
	}
	if !found {
		s.users = models.SeedUsers()
	}

	if found, err = s.loadKey(ctx, KeyProjects, &s.projects); err != nil {
		return err
	}
	if !found {
		s.projects = models.SeedProjects()
	}

	if found, err = s.loadKey(ctx, KeyAllocations, &s.allocations); err != nil {
		return err
	}
	if !found {
		s.allocations = models.SeedAllocations(today)
	}

	if _, err = s.loadKey(ctx, KeyLogs, &s.logs); err != nil {
		return err
	}
	if s.logs == nil {
		s.logs = []models.TimeLog{}
	}

	var current *models.User
	if _, err = s.loadKey(ctx, KeyCurrentUser, &current); err != nil {
		return err
	}
	if current != nil {
		s.session = newSession(*current, today)
	}
	return nil
}

func (s *Store) loadKey(ctx context.Context, key string, dest any) (bool, error) {
	if s.persister == nil {
		return false, nil
	}
	found, err := s.persister.Load(ctx, key, dest)
	if err != nil {
		return false, fmt.Errorf("load %s snapshot: %w", key, err)
	}
	return found, nil
}

// persist rewrites the four collection snapshots. Failures are logged and
// otherwise ignored.
func (s *Store) persist(ctx context.Context) {
	s.save(ctx, KeyUsers, s.users)
	s.save(ctx, KeyLogs, s.logs)
	s.save(ctx, KeyProjects, s.projects)
	s.save(ctx, KeyAllocations, s.allocations)
}

func (s *Store) persistSession(ctx context.Context) {
	var current *models.User
	if s.session != nil {
		u := s.session.User
		current = &u
	}
	s.save(ctx, KeyCurrentUser, current)
}

func (s *Store) save(ctx context.Context, key string, value any) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(context.WithoutCancel(ctx), key, value); err != nil {
		s.logger.Warn("snapshot write failed", zap.String("key", key), zap.Error(err))
	}
}

// sortUsers orders the roster by name with the configured collation.
func (s *Store) sortUsers() {
	sort.SliceStable(s.users, func(i, j int) bool {
		return s.collator.CompareString(s.users[i].Name, s.users[j].Name) < 0
	})
}

func (s *Store) today() models.Date {
	return models.DateOf(s.now())
}
