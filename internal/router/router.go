package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pedrolmns/big-lambda/internal/assistant"
	"github.com/pedrolmns/big-lambda/internal/auth"
	"github.com/pedrolmns/big-lambda/internal/backup"
	"github.com/pedrolmns/big-lambda/internal/calendar"
	"github.com/pedrolmns/big-lambda/internal/client"
	"github.com/pedrolmns/big-lambda/internal/dashboard"
	"github.com/pedrolmns/big-lambda/internal/draft"
	"github.com/pedrolmns/big-lambda/internal/job"
	"github.com/pedrolmns/big-lambda/internal/middlewares"
	"github.com/pedrolmns/big-lambda/internal/settings"
	"github.com/pedrolmns/big-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	JobHandler       *job.Handler
	ClientHandler    *client.Handler
	DraftHandler     *draft.Handler
	SettingsHandler  *settings.Handler
	CalendarHandler  *calendar.Handler
	DashboardHandler *dashboard.Handler
	BackupHandler    *backup.Handler
	AssistantHandler *assistant.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/jobs", job.Routes(cfg.JobHandler))
		r.Mount("/clients", client.Routes(cfg.ClientHandler))
		r.Mount("/drafts", draft.Routes(cfg.DraftHandler))
		r.Mount("/settings", settings.Routes(cfg.SettingsHandler))
		r.Mount("/calendar", calendar.Routes(cfg.CalendarHandler))
		r.Mount("/dashboard", dashboard.Routes(cfg.DashboardHandler))
		r.Mount("/backup", backup.Routes(cfg.BackupHandler))
		r.Mount("/assistant", assistant.Routes(cfg.AssistantHandler))
		r.Mount("/users", user.Routes(cfg.UserHandler))

		r.Get("/financials", cfg.JobHandler.ListFinancials)
	})
	return r
}
