package store

import (
	"context"
	"time"

	"github.com/pedrolmns/big-lambda/internal/blobstore"
	"github.com/pedrolmns/big-lambda/internal/calendar"
	"github.com/pedrolmns/big-lambda/internal/config"
)

// DefaultSyncDelay coalesces bursts of job mutations into one reconciliation
// pass, like the original's debounced effect.
const DefaultSyncDelay = 500 * time.Millisecond

// scheduleSync arms (or re-arms) the debounced reconciliation. Callers hold
// the mutex. Only the last scheduled run in a burst executes.
func (s *Session) scheduleSync() {
	if !s.settings.GoogleCalendarConnected {
		return
	}
	if s.syncTimer != nil {
		s.syncTimer.Stop()
	}
	s.syncTimer = time.AfterFunc(s.syncDelay, func() {
		s.SyncNow(context.Background())
	})
}

// ConnectCalendar asks the provider for a connection; on success the connected
// flag is stored and a first sync runs immediately.
func (s *Session) ConnectCalendar(ctx context.Context) (bool, error) {
	ok, err := s.provider.Connect(ctx, s.userID)
	if err != nil || !ok {
		return false, err
	}

	s.mtx.Lock()
	s.settings.GoogleCalendarConnected = true
	s.persist(blobstore.CollectionSettings, s.settings)
	s.mtx.Unlock()

	s.SyncNow(ctx)
	return true, nil
}

// DisconnectCalendar clears every calendar event and every job's event link.
func (s *Session) DisconnectCalendar(ctx context.Context) {
	if err := s.provider.Disconnect(ctx, s.userID); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Calendar provider disconnect failed")
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.syncTimer != nil {
		s.syncTimer.Stop()
		s.syncTimer = nil
	}
	s.events = []calendar.Event{}
	for i := range s.jobs {
		s.jobs[i].CalendarEventID = ""
	}
	s.settings.GoogleCalendarConnected = false
	s.settings.GoogleCalendarLastSync = nil

	s.persist(blobstore.CollectionJobs, s.jobs)
	s.persist(blobstore.CollectionCalendarEvents, s.events)
	s.persist(blobstore.CollectionSettings, s.settings)
}

// SyncNow reconciles calendar events with the current jobs: one locally
// sourced event per live job that requested one, none for jobs that left the
// eligible set, and the external events replaced wholesale by the provider's
// latest fetch. A job whose event is removed gets its calendarEventId cleared,
// never left dangling.
func (s *Session) SyncNow(ctx context.Context) {
	s.mtx.Lock()
	connected := s.settings.GoogleCalendarConnected
	s.mtx.Unlock()
	if !connected {
		return
	}

	external, err := s.provider.FetchEvents(ctx, s.userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Failed to fetch external calendar events")
		s.notifier.Notify("não foi possível buscar eventos do Google Calendar")
		external = nil
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	// A disconnect may have landed while the fetch was in flight; its cleared
	// state must not be overwritten.
	if !s.settings.GoogleCalendarConnected {
		return
	}

	// Keep local events; replace the external ones with the fresh fetch. A
	// failed fetch keeps the previous external events instead.
	merged := make([]calendar.Event, 0, len(s.events)+len(external))
	for _, ev := range s.events {
		if ev.Source == calendar.SourceLocal {
			merged = append(merged, ev)
		} else if external == nil && err != nil {
			merged = append(merged, ev)
		}
	}
	merged = append(merged, external...)

	eligible := make(map[string]bool)
	for _, j := range s.jobs {
		if !j.IsDeleted && j.CreateCalendarEvent {
			eligible[j.ID] = true
		}
	}

	hasEvent := make(map[string]bool)
	for _, ev := range merged {
		if ev.Source == calendar.SourceLocal {
			hasEvent[ev.JobID] = true
		}
	}

	for i := range s.jobs {
		j := &s.jobs[i]
		if eligible[j.ID] && !hasEvent[j.ID] {
			ev := calendar.Event{
				ID:     "big_" + j.ID,
				Title:  "Entrega: " + j.Name,
				Start:  j.Deadline.Time,
				End:    j.Deadline.Time,
				AllDay: true,
				Source: calendar.SourceLocal,
				JobID:  j.ID,
			}
			merged = append(merged, ev)
			j.CalendarEventID = ev.ID
		}
	}

	kept := merged[:0]
	for _, ev := range merged {
		if ev.Source == calendar.SourceLocal && !eligible[ev.JobID] {
			continue
		}
		kept = append(kept, ev)
	}
	s.events = append([]calendar.Event{}, kept...)

	for i := range s.jobs {
		if s.jobs[i].CalendarEventID != "" && !eligible[s.jobs[i].ID] {
			s.jobs[i].CalendarEventID = ""
		}
	}

	if err == nil {
		now := time.Now()
		s.settings.GoogleCalendarLastSync = &now
	}

	s.persist(blobstore.CollectionJobs, s.jobs)
	s.persist(blobstore.CollectionCalendarEvents, s.events)
	s.persist(blobstore.CollectionSettings, s.settings)
}
