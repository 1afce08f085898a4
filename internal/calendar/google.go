package calendar

import (
	"context"
	"errors"
	"time"

	"github.com/pedrolmns/big-lambda/internal/config"
	"github.com/pedrolmns/big-lambda/internal/user"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var (
	ErrUserNotFound          = errors.New("user not found for calendar integration")
	ErrDecryptionFailed      = errors.New("failed to decrypt user's google token")
	ErrMissingCalendarTokens = errors.New("user has no google access token")
)

// GoogleProvider reads real events from the user's primary Google calendar
// using the OAuth tokens captured at login.
type GoogleProvider struct {
	userRepo    user.UserRepository
	oauthConfig *oauth2.Config
}

func NewGoogleProvider(userRepo user.UserRepository, oauthConfig *oauth2.Config) *GoogleProvider {
	return &GoogleProvider{userRepo: userRepo, oauthConfig: oauthConfig}
}

func (p *GoogleProvider) client(ctx context.Context, userID string) (*gcal.Service, error) {
	log := config.WithContext(ctx)

	u, err := p.userRepo.GetByID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to retrieve user for calendar client")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if u.EncryptedGoogleAccessToken == "" {
		return nil, ErrMissingCalendarTokens
	}

	accessToken, err := config.Decrypt(u.EncryptedGoogleAccessToken)
	if err != nil {
		log.WithError(err).Error("Failed to decrypt access token")
		return nil, ErrDecryptionFailed
	}
	refreshToken := ""
	if u.EncryptedGoogleRefreshToken != "" {
		refreshToken, err = config.Decrypt(u.EncryptedGoogleRefreshToken)
		if err != nil {
			log.WithError(err).Error("Failed to decrypt refresh token")
			return nil, ErrDecryptionFailed
		}
	}

	token := &oauth2.Token{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		RefreshToken: refreshToken,
		Expiry:       time.Now().Add(-time.Hour),
	}

	tokenSource := p.oauthConfig.TokenSource(ctx, token)
	if _, err := tokenSource.Token(); err != nil {
		log.WithError(err).Error("Failed to refresh Google token")
		return nil, err
	}

	srv, err := gcal.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, tokenSource)))
	if err != nil {
		log.WithError(err).Error("Failed to create Calendar service client")
		return nil, err
	}
	return srv, nil
}

func (p *GoogleProvider) Connect(ctx context.Context, userID string) (bool, error) {
	if _, err := p.client(ctx, userID); err != nil {
		if errors.Is(err, ErrMissingCalendarTokens) || errors.Is(err, ErrDecryptionFailed) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (p *GoogleProvider) Disconnect(ctx context.Context, userID string) error {
	return nil
}

func (p *GoogleProvider) FetchEvents(ctx context.Context, userID string) ([]Event, error) {
	log := config.WithContext(ctx)

	srv, err := p.client(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Window matches what the dashboard calendar renders.
	timeMin := time.Now().AddDate(0, -1, 0).Format(time.RFC3339)
	timeMax := time.Now().AddDate(0, 3, 0).Format(time.RFC3339)

	list, err := srv.Events.List("primary").
		TimeMin(timeMin).
		TimeMax(timeMax).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		log.WithError(err).Error("Failed to list Google Calendar events")
		return nil, err
	}

	events := make([]Event, 0, len(list.Items))
	for _, item := range list.Items {
		ev := Event{
			ID:     "gcal_" + item.Id,
			Title:  item.Summary,
			Source: SourceGoogle,
		}
		if item.Start != nil {
			if item.Start.DateTime != "" {
				ev.Start, _ = time.Parse(time.RFC3339, item.Start.DateTime)
			} else if item.Start.Date != "" {
				ev.Start, _ = time.Parse("2006-01-02", item.Start.Date)
				ev.AllDay = true
			}
		}
		if item.End != nil {
			if item.End.DateTime != "" {
				ev.End, _ = time.Parse(time.RFC3339, item.End.DateTime)
			} else if item.End.Date != "" {
				ev.End, _ = time.Parse("2006-01-02", item.End.Date)
			}
		}
		events = append(events, ev)
	}
	return events, nil
}
