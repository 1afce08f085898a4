package store

import (
	"encoding/json"
	"time"

	"github.com/pedrolmns/big-lambda/internal/blobstore"
	"github.com/pedrolmns/big-lambda/internal/calendar"
	"github.com/pedrolmns/big-lambda/internal/client"
	"github.com/pedrolmns/big-lambda/internal/draft"
	"github.com/pedrolmns/big-lambda/internal/job"
	"github.com/pedrolmns/big-lambda/internal/migration"
	"github.com/pedrolmns/big-lambda/internal/settings"
)

// SnapshotVersion tags every export; imports accept any vintage because each
// record goes through the migration layer anyway.
const SnapshotVersion = "2.5"

type Snapshot struct {
	Version        string            `json:"version"`
	ExportedAt     time.Time         `json:"exportedAt"`
	Jobs           []job.Job         `json:"jobs"`
	Clients        []client.Client   `json:"clients"`
	DraftNotes     []draft.DraftNote `json:"draftNotes"`
	Settings       settings.Settings `json:"settings"`
	CalendarEvents []calendar.Event  `json:"calendarEvents"`
}

func (s *Session) Export() Snapshot {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	snap := Snapshot{
		Version:        SnapshotVersion,
		ExportedAt:     time.Now(),
		Jobs:           append([]job.Job{}, s.jobs...),
		Clients:        append([]client.Client{}, s.clients...),
		DraftNotes:     append([]draft.DraftNote{}, s.drafts...),
		Settings:       s.settings,
		CalendarEvents: append([]calendar.Event{}, s.events...),
	}
	return snap
}

// rawSnapshot defers record decoding so each one can be migrated individually.
type rawSnapshot struct {
	Version        string            `json:"version"`
	Jobs           []json.RawMessage `json:"jobs"`
	Clients        json.RawMessage   `json:"clients"`
	DraftNotes     []json.RawMessage `json:"draftNotes"`
	Settings       json.RawMessage   `json:"settings"`
	CalendarEvents json.RawMessage   `json:"calendarEvents"`
}

// Import applies the migration layer to every record of the snapshot, then
// merges by id: known ids are replaced, new ids appended. The settings record
// is replaced by the migrated snapshot settings.
func (s *Session) Import(data []byte) error {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	jobs := make([]job.Job, 0, len(raw.Jobs))
	for _, r := range raw.Jobs {
		j, err := migration.Job(r)
		if err != nil {
			return err
		}
		jobs = append(jobs, j)
	}

	drafts := make([]draft.DraftNote, 0, len(raw.DraftNotes))
	for _, r := range raw.DraftNotes {
		d, err := migration.Draft(r)
		if err != nil {
			return err
		}
		drafts = append(drafts, d)
	}

	var clients []client.Client
	if raw.Clients != nil {
		var err error
		clients, err = migration.Clients(raw.Clients)
		if err != nil {
			return err
		}
	}

	var events []calendar.Event
	if raw.CalendarEvents != nil {
		var err error
		events, err = migration.Events(raw.CalendarEvents)
		if err != nil {
			return err
		}
	}

	var cfg *settings.Settings
	if raw.Settings != nil {
		parsed, err := migration.Settings(raw.Settings)
		if err != nil {
			return err
		}
		cfg = &parsed
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, j := range jobs {
		if idx := s.jobIndex(j.ID); idx >= 0 {
			s.jobs[idx] = j
		} else {
			s.jobs = append(s.jobs, j)
		}
	}
	for _, c := range clients {
		replaced := false
		for i := range s.clients {
			if s.clients[i].ID == c.ID {
				s.clients[i] = c
				replaced = true
				break
			}
		}
		if !replaced {
			s.clients = append(s.clients, c)
		}
	}
	for _, d := range drafts {
		replaced := false
		for i := range s.drafts {
			if s.drafts[i].ID == d.ID {
				s.drafts[i] = d
				replaced = true
				break
			}
		}
		if !replaced {
			s.drafts = append(s.drafts, d)
		}
	}
	for _, ev := range events {
		replaced := false
		for i := range s.events {
			if s.events[i].ID == ev.ID {
				s.events[i] = ev
				replaced = true
				break
			}
		}
		if !replaced {
			s.events = append(s.events, ev)
		}
	}
	if cfg != nil {
		s.settings = *cfg
	}

	s.persist(blobstore.CollectionJobs, s.jobs)
	s.persist(blobstore.CollectionClients, s.clients)
	s.persist(blobstore.CollectionDraftNotes, s.drafts)
	s.persist(blobstore.CollectionSettings, s.settings)
	s.persist(blobstore.CollectionCalendarEvents, s.events)
	s.scheduleSync()
	return nil
}
