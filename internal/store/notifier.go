package store

import "github.com/pedrolmns/big-lambda/internal/config"

// Notifier receives non-blocking notifications: persistence failures and
// corrupt-collection recoveries. They never surface as errors of the mutation
// that produced them; the in-memory state stays authoritative.
type Notifier interface {
	Notify(message string)
}

type logNotifier struct{}

func (logNotifier) Notify(message string) {
	config.Logger().Warn(message)
}
