package calendar

import (
	"context"
	"math/rand"
	"time"

	"github.com/pedrolmns/big-lambda/internal/config"
)

// SimulatedProvider stands in for the Google integration when no OAuth
// credentials are configured. Connect succeeds ~80% of the time after a short
// delay, like a flaky network call.
type SimulatedProvider struct {
	ConnectDelay time.Duration
	AlwaysOK     bool
}

func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{ConnectDelay: 1500 * time.Millisecond}
}

func (p *SimulatedProvider) Connect(ctx context.Context, userID string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-time.After(p.ConnectDelay):
	}

	if p.AlwaysOK || rand.Float64() > 0.2 {
		config.WithContext(ctx).WithField("user_id", userID).Info("Simulated calendar connected")
		return true, nil
	}
	return false, nil
}

func (p *SimulatedProvider) Disconnect(ctx context.Context, userID string) error {
	return nil
}

func (p *SimulatedProvider) FetchEvents(ctx context.Context, userID string) ([]Event, error) {
	now := time.Now()
	return []Event{
		{
			ID:     "gcal_1",
			Title:  "Reunião de Alinhamento",
			Start:  now.AddDate(0, 0, 2),
			End:    now.AddDate(0, 0, 2).Add(time.Hour),
			Source: SourceGoogle,
		},
		{
			ID:     "gcal_2",
			Title:  "Aniversário Cliente X",
			Start:  now.AddDate(0, 0, -5),
			End:    now.AddDate(0, 0, -5),
			AllDay: true,
			Source: SourceGoogle,
		},
	}, nil
}
