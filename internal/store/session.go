package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pedrolmns/big-lambda/internal/blobstore"
	"github.com/pedrolmns/big-lambda/internal/calendar"
	"github.com/pedrolmns/big-lambda/internal/client"
	"github.com/pedrolmns/big-lambda/internal/config"
	"github.com/pedrolmns/big-lambda/internal/draft"
	"github.com/pedrolmns/big-lambda/internal/job"
	"github.com/pedrolmns/big-lambda/internal/settings"
)

// Session is the in-memory source of truth for one signed-in user. Every
// mutation updates memory under the session mutex, then persists the affected
// collection asynchronously; a read right after a write always sees the new
// state regardless of whether the persist finished. The mutex is the Go
// rendition of the original app's single-threaded model: no two mutations
// interleave their in-memory updates.
type Session struct {
	userID    string
	store     blobstore.Store
	provider  calendar.Provider
	notifier  Notifier
	syncDelay time.Duration

	mtx      sync.Mutex
	jobs     []job.Job
	clients  []client.Client
	drafts   []draft.DraftNote
	settings settings.Settings
	events   []calendar.Event

	syncTimer *time.Timer
	persistWG sync.WaitGroup
}

func (s *Session) UserID() string {
	return s.userID
}

// persist marshals the named collection and schedules the write. Callers must
// hold the mutex. Failures go to the notifier; the mutation has already
// succeeded in memory.
func (s *Session) persist(collection string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.notifier.Notify(fmt.Sprintf("falha ao serializar coleção %s: %v", collection, err))
		return
	}
	s.persistWG.Add(1)
	go func() {
		defer s.persistWG.Done()
		if err := s.store.Save(context.Background(), s.userID, collection, data); err != nil {
			config.Logger().WithError(err).WithField("collection", collection).
				Error("Failed to persist collection")
			s.notifier.Notify(fmt.Sprintf("não foi possível salvar %s — os dados seguem disponíveis nesta sessão", collection))
		}
	}()
}

// Flush waits for in-flight persists. Mutations never wait on it; it exists
// for shutdown and tests.
func (s *Session) Flush() {
	s.persistWG.Wait()
}

// --- Jobs ---

func (s *Session) Jobs(includeDeleted bool) []job.Job {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]job.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if !includeDeleted && j.IsDeleted {
			continue
		}
		out = append(out, j)
	}
	return out
}

func (s *Session) GetJobByID(id string) (job.Job, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, j := range s.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return job.Job{}, false
}

func (s *Session) AddJob(j job.Job) job.Job {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	j.ID = uuid.NewString()
	j.CreatedAt = time.Now()
	j.IsDeleted = false
	j.ObservationsLog = []job.Observation{}
	j.Payments = []job.Payment{}
	j.CalendarEventID = ""
	if j.CloudLinks == nil {
		j.CloudLinks = []string{}
	}
	if j.Status == "" {
		j.Status = job.StatusBriefing
	}

	s.jobs = append(s.jobs, j)
	s.persist(blobstore.CollectionJobs, s.jobs)
	s.scheduleSync()
	return j
}

// UpdateJob replaces the stored record wholesale. Unknown ids are a no-op.
// Entering Pago with the recurrence flag set spawns the follow-up job, once
// per transition.
func (s *Session) UpdateJob(updated job.Job) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	idx := s.jobIndex(updated.ID)
	if idx < 0 {
		return
	}
	prev := s.jobs[idx]
	s.jobs[idx] = updated

	if updated.Status == job.StatusPaid && prev.Status != job.StatusPaid && updated.IsRecurring {
		s.jobs = append(s.jobs, spawnRecurring(updated))
	}

	s.persist(blobstore.CollectionJobs, s.jobs)
	s.scheduleSync()
}

// spawnRecurring clones a job that just got paid into next month's edition:
// fresh id and creation time, deadline one calendar month ahead, board reset
// to Briefing, payments and log cleared, calendar link cleared, recurrence
// flag kept.
func spawnRecurring(paid job.Job) job.Job {
	next := paid
	next.ID = uuid.NewString()
	next.CreatedAt = time.Now()
	next.Deadline = paid.Deadline.AddMonth()
	next.Status = job.StatusBriefing
	next.Payments = []job.Payment{}
	next.ObservationsLog = []job.Observation{}
	next.CalendarEventID = ""
	return next
}

func (s *Session) DeleteJob(id string) {
	s.setJobDeleted(id, true)
}

func (s *Session) RestoreJob(id string) {
	s.setJobDeleted(id, false)
}

func (s *Session) setJobDeleted(id string, deleted bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	idx := s.jobIndex(id)
	if idx < 0 {
		return
	}
	s.jobs[idx].IsDeleted = deleted
	s.persist(blobstore.CollectionJobs, s.jobs)
	s.scheduleSync()
}

func (s *Session) PermanentlyDeleteJob(id string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	idx := s.jobIndex(id)
	if idx < 0 {
		return
	}
	s.jobs = append(s.jobs[:idx], s.jobs[idx+1:]...)
	s.persist(blobstore.CollectionJobs, s.jobs)
	s.scheduleSync()
}

func (s *Session) AddJobObservation(id, text string) (job.Observation, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	idx := s.jobIndex(id)
	if idx < 0 {
		return job.Observation{}, false
	}
	obs := job.NewObservation(text)
	s.jobs[idx].ObservationsLog = append(s.jobs[idx].ObservationsLog, obs)
	s.persist(blobstore.CollectionJobs, s.jobs)
	return obs, true
}

// RegisterPayment is the only way a payment comes into existence.
func (s *Session) RegisterPayment(jobID string, p job.Payment) (job.Payment, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	idx := s.jobIndex(jobID)
	if idx < 0 {
		return job.Payment{}, false
	}
	p.ID = uuid.NewString()
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	s.jobs[idx].Payments = append(s.jobs[idx].Payments, p)
	s.persist(blobstore.CollectionJobs, s.jobs)
	return p, true
}

func (s *Session) jobIndex(id string) int {
	for i, j := range s.jobs {
		if j.ID == id {
			return i
		}
	}
	return -1
}

// --- Clients ---

func (s *Session) Clients() []client.Client {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]client.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *Session) GetClientByID(id string) (client.Client, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return client.Client{}, false
}

func (s *Session) AddClient(c client.Client) client.Client {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	s.clients = append(s.clients, c)
	s.persist(blobstore.CollectionClients, s.clients)
	return c
}

func (s *Session) UpdateClient(updated client.Client) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i, c := range s.clients {
		if c.ID == updated.ID {
			s.clients[i] = updated
			s.persist(blobstore.CollectionClients, s.clients)
			return
		}
	}
}

// DeleteClient removes the client outright. Jobs keep their clientId; the
// view resolves orphans to an unknown-client placeholder.
func (s *Session) DeleteClient(id string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i, c := range s.clients {
		if c.ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			s.persist(blobstore.CollectionClients, s.clients)
			return
		}
	}
}

// --- Draft notes ---

func (s *Session) DraftNotes() []draft.DraftNote {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]draft.DraftNote, len(s.drafts))
	copy(out, s.drafts)
	return out
}

func (s *Session) AddDraftNote(title string, noteType draft.Type) draft.DraftNote {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	now := time.Now()
	d := draft.DraftNote{
		ID:          uuid.NewString(),
		Title:       title,
		Type:        noteType,
		ScriptLines: []draft.ScriptLine{},
		Attachments: []draft.Attachment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if noteType == draft.TypeScript {
		d.ScriptLines = []draft.ScriptLine{{ID: uuid.NewString(), Scene: "1"}}
	}
	// Newest drafts go first, the order the editor lists them.
	s.drafts = append([]draft.DraftNote{d}, s.drafts...)
	s.persist(blobstore.CollectionDraftNotes, s.drafts)
	return d
}

func (s *Session) UpdateDraftNote(updated draft.DraftNote) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i, d := range s.drafts {
		if d.ID == updated.ID {
			updated.UpdatedAt = time.Now()
			s.drafts[i] = updated
			s.persist(blobstore.CollectionDraftNotes, s.drafts)
			return
		}
	}
}

func (s *Session) DeleteDraftNote(id string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i, d := range s.drafts {
		if d.ID == id {
			s.drafts = append(s.drafts[:i], s.drafts[i+1:]...)
			s.persist(blobstore.CollectionDraftNotes, s.drafts)
			return
		}
	}
}

// --- Settings ---

func (s *Session) Settings() settings.Settings {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.settings
}

func (s *Session) UpdateSettings(patch settings.Patch) settings.Settings {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.settings = patch.Apply(s.settings)
	s.persist(blobstore.CollectionSettings, s.settings)
	return s.settings
}

// --- Calendar events (reads; reconciliation lives in sync.go) ---

func (s *Session) CalendarEvents() []calendar.Event {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]calendar.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Snapshot serializes the business state for the assistant prompt.
func (s *Session) Snapshot() ([]byte, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return json.Marshal(map[string]interface{}{
		"jobs":    s.jobs,
		"clients": s.clients,
	})
}
