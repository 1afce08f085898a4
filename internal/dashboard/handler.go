package dashboard

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pedrolmns/big-lambda/internal/auth"
	"github.com/pedrolmns/big-lambda/internal/config"
	"github.com/pedrolmns/big-lambda/internal/store"
)

type Handler struct {
	sessions *store.Manager
}

func NewHandler(sessions *store.Manager) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	s, err := h.sessions.GetOrCreate(r.Context(), claims.UserID)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to load user session")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, Compute(s.Jobs(false), time.Now()))
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Stats)
	return r
}
