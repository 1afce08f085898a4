package calendar

import "context"

// Provider is the external calendar integration. Connect reports whether the
// integration accepted the connection; FetchEvents returns the integration's
// current view, which replaces previously fetched external events wholesale.
type Provider interface {
	Connect(ctx context.Context, userID string) (bool, error)
	Disconnect(ctx context.Context, userID string) error
	FetchEvents(ctx context.Context, userID string) ([]Event, error)
}
