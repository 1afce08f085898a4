package container

import (
	"context"
	"log"
	"os"

	"github.com/pedrolmns/big-lambda/internal/assistant"
	"github.com/pedrolmns/big-lambda/internal/auth"
	"github.com/pedrolmns/big-lambda/internal/backup"
	"github.com/pedrolmns/big-lambda/internal/blobstore"
	"github.com/pedrolmns/big-lambda/internal/calendar"
	"github.com/pedrolmns/big-lambda/internal/client"
	"github.com/pedrolmns/big-lambda/internal/config"
	"github.com/pedrolmns/big-lambda/internal/dashboard"
	"github.com/pedrolmns/big-lambda/internal/draft"
	"github.com/pedrolmns/big-lambda/internal/job"
	"github.com/pedrolmns/big-lambda/internal/settings"
	"github.com/pedrolmns/big-lambda/internal/store"
	"github.com/pedrolmns/big-lambda/internal/user"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
)

type Container struct {
	UserContainer    *user.UserContainer
	Sessions         *store.Manager
	JobHandler       *job.Handler
	ClientHandler    *client.Handler
	DraftHandler     *draft.Handler
	SettingsHandler  *settings.Handler
	CalendarHandler  *calendar.Handler
	DashboardHandler *dashboard.Handler
	BackupHandler    *backup.Handler
	AssistantHandler *assistant.Handler
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(&user.User{}, &blobstore.UserCollection{}); err != nil {
		log.Fatalf("failed to migrate DB schema: %v", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes:       []string{gcal.CalendarEventsScope, gcal.CalendarReadonlyScope, "openid", "email", "profile"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/auth",
			TokenURL: "https://oauth2.googleapis.com/token",
		},
	}

	userContainer := user.NewUserContainer(config.DB, oauthConfig)

	var provider calendar.Provider
	if oauthConfig.ClientID != "" {
		provider = calendar.NewGoogleProvider(userContainer.Repo, oauthConfig)
	} else {
		provider = calendar.NewSimulatedProvider()
	}

	blobs := blobstore.NewPostgresStore(config.DB)
	sessions := store.NewManager(blobs, provider, nil)

	assistantContainer := assistant.NewAssistantContainer(sessions)

	return &Container{
		UserContainer: userContainer,
		Sessions:      sessions,
		JobHandler: job.NewHandler(func(ctx context.Context, userID string) (job.Session, error) {
			return sessions.GetOrCreate(ctx, userID)
		}),
		ClientHandler: client.NewHandler(func(ctx context.Context, userID string) (client.Session, error) {
			return sessions.GetOrCreate(ctx, userID)
		}),
		DraftHandler: draft.NewHandler(func(ctx context.Context, userID string) (draft.Session, error) {
			return sessions.GetOrCreate(ctx, userID)
		}),
		SettingsHandler: settings.NewHandler(func(ctx context.Context, userID string) (settings.Session, error) {
			return sessions.GetOrCreate(ctx, userID)
		}),
		CalendarHandler: calendar.NewHandler(func(ctx context.Context, userID string) (calendar.Session, error) {
			return sessions.GetOrCreate(ctx, userID)
		}),
		DashboardHandler: dashboard.NewHandler(sessions),
		BackupHandler:    backup.NewHandler(sessions),
		AssistantHandler: assistantContainer.Handler,
	}
}
