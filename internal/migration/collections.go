package migration

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pedrolmns/big-lambda/internal/calendar"
	"github.com/pedrolmns/big-lambda/internal/client"
	"github.com/pedrolmns/big-lambda/internal/settings"
)

// Clients have kept the same shape since the first release; migration only
// guarantees ids.
func Clients(data []byte) ([]client.Client, error) {
	var clients []client.Client
	if err := json.Unmarshal(data, &clients); err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == "" {
			clients[i].ID = uuid.NewString()
		}
	}
	return clients, nil
}

func Events(data []byte) ([]calendar.Event, error) {
	var events []calendar.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Settings fills defaults the way the original loader did: stored blanks fall
// back to the stock theme and service URLs.
func Settings(data []byte) (settings.Settings, error) {
	s := settings.Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return settings.Default(), err
	}
	if s.PrimaryColor == "" {
		s.PrimaryColor = settings.DefaultPrimaryColor
	}
	if s.AccentColor == "" {
		s.AccentColor = settings.DefaultAccentColor
	}
	if s.SplashScreenBackgroundColor == "" {
		s.SplashScreenBackgroundColor = settings.DefaultSplashColor
	}
	if s.AsaasURL == "" {
		s.AsaasURL = settings.DefaultAsaasURL
	}
	return s, nil
}
