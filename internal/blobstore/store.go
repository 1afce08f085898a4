package blobstore

// Package blobstore persists each user's collections as one opaque JSON blob
// per (user, collection) key, mirroring the storage layout of the original app.

import "context"

const (
	CollectionJobs           = "jobs"
	CollectionClients        = "clients"
	CollectionDraftNotes     = "draftNotes"
	CollectionSettings       = "settings"
	CollectionCalendarEvents = "calendarEvents"
)

var Collections = []string{
	CollectionJobs,
	CollectionClients,
	CollectionDraftNotes,
	CollectionSettings,
	CollectionCalendarEvents,
}

// Store reads and writes whole-collection blobs. A missing key is reported as
// (nil, false, nil): absence is an expected result, not an error.
type Store interface {
	Load(ctx context.Context, userID, collection string) (data []byte, found bool, err error)
	Save(ctx context.Context, userID, collection string, data []byte) error
	Delete(ctx context.Context, userID, collection string) error
}
