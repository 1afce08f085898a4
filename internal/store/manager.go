package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pedrolmns/big-lambda/internal/blobstore"
	"github.com/pedrolmns/big-lambda/internal/calendar"
	"github.com/pedrolmns/big-lambda/internal/client"
	"github.com/pedrolmns/big-lambda/internal/config"
	"github.com/pedrolmns/big-lambda/internal/draft"
	"github.com/pedrolmns/big-lambda/internal/job"
	"github.com/pedrolmns/big-lambda/internal/migration"
	"github.com/pedrolmns/big-lambda/internal/settings"
)

// Manager owns one Session per signed-in user. A session is created on first
// use (loading and migrating the user's collections) and discarded on
// sign-out; a different user id always gets a fresh, fully reloaded session.
type Manager struct {
	store     blobstore.Store
	provider  calendar.Provider
	notifier  Notifier
	syncDelay time.Duration

	mtx      sync.Mutex
	sessions map[string]*Session
}

func NewManager(store blobstore.Store, provider calendar.Provider, notifier Notifier) *Manager {
	if notifier == nil {
		notifier = logNotifier{}
	}
	return &Manager{
		store:     store,
		provider:  provider,
		notifier:  notifier,
		syncDelay: DefaultSyncDelay,
		sessions:  make(map[string]*Session),
	}
}

// SetSyncDelay overrides the reconciliation debounce, used by tests.
func (m *Manager) SetSyncDelay(d time.Duration) {
	m.syncDelay = d
}

func (m *Manager) GetOrCreate(ctx context.Context, userID string) (*Session, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s, nil
	}

	s, err := m.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	m.sessions[userID] = s
	return s, nil
}

// Discard drops the user's session. In-memory state is thrown away after any
// in-flight persists finish; the next access reloads from storage.
func (m *Manager) Discard(userID string) {
	m.mtx.Lock()
	s, ok := m.sessions[userID]
	delete(m.sessions, userID)
	m.mtx.Unlock()

	if ok {
		s.mtx.Lock()
		if s.syncTimer != nil {
			s.syncTimer.Stop()
			s.syncTimer = nil
		}
		s.mtx.Unlock()
		s.Flush()
	}
}

// load reads all five collections, running every record through the migration
// layer. A collection whose blob cannot be parsed falls back to its default
// and is reported through the notifier; the rest of the session loads
// normally.
func (m *Manager) load(ctx context.Context, userID string) (*Session, error) {
	log := config.WithContext(ctx).WithField("user_id", userID)

	s := &Session{
		userID:    userID,
		store:     m.store,
		provider:  m.provider,
		notifier:  m.notifier,
		syncDelay: m.syncDelay,
		jobs:      []job.Job{},
		clients:   []client.Client{},
		drafts:    []draft.DraftNote{},
		settings:  settings.Default(),
		events:    []calendar.Event{},
	}

	fallback := func(collection string, err error) {
		log.WithError(err).WithField("collection", collection).
			Warn("Corrupt collection, falling back to defaults")
		m.notifier.Notify(fmt.Sprintf("dados de %s corrompidos foram ignorados", collection))
	}

	if data, found, err := m.store.Load(ctx, userID, blobstore.CollectionJobs); err != nil {
		return nil, err
	} else if found {
		if jobs, err := migration.Jobs(data); err != nil {
			fallback(blobstore.CollectionJobs, err)
		} else {
			s.jobs = jobs
		}
	}

	if data, found, err := m.store.Load(ctx, userID, blobstore.CollectionClients); err != nil {
		return nil, err
	} else if found {
		if clients, err := migration.Clients(data); err != nil {
			fallback(blobstore.CollectionClients, err)
		} else {
			s.clients = clients
		}
	}

	if data, found, err := m.store.Load(ctx, userID, blobstore.CollectionDraftNotes); err != nil {
		return nil, err
	} else if found {
		if drafts, err := migration.Drafts(data); err != nil {
			fallback(blobstore.CollectionDraftNotes, err)
		} else {
			s.drafts = drafts
		}
	}

	if data, found, err := m.store.Load(ctx, userID, blobstore.CollectionSettings); err != nil {
		return nil, err
	} else if found {
		if cfg, err := migration.Settings(data); err != nil {
			fallback(blobstore.CollectionSettings, err)
		} else {
			s.settings = cfg
		}
	}

	if data, found, err := m.store.Load(ctx, userID, blobstore.CollectionCalendarEvents); err != nil {
		return nil, err
	} else if found {
		if events, err := migration.Events(data); err != nil {
			fallback(blobstore.CollectionCalendarEvents, err)
		} else {
			s.events = events
		}
	}

	log.WithField("jobs", len(s.jobs)).Info("Session loaded")
	return s, nil
}
