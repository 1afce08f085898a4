package calendar

import (
	"context"
	"net/http"

	"github.com/pedrolmns/big-lambda/internal/auth"
	"github.com/pedrolmns/big-lambda/internal/config"
)

// Session is the slice of the user's data store these handlers operate on.
type Session interface {
	CalendarEvents() []Event
	ConnectCalendar(ctx context.Context) (bool, error)
	DisconnectCalendar(ctx context.Context)
	SyncNow(ctx context.Context)
}

// Sessions resolves the signed-in user's session.
type Sessions func(ctx context.Context, userID string) (Session, error)

type Handler struct {
	sessions Sessions
}

func NewHandler(sessions Sessions) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (Session, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	s, err := h.sessions(r.Context(), claims.UserID)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to load user session")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return s, true
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	config.JSON(w, http.StatusOK, s.CalendarEvents())
}

func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	connected, err := s.ConnectCalendar(r.Context())
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Calendar connect failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, map[string]bool{"connected": connected})
}

func (h *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.DisconnectCalendar(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.SyncNow(r.Context())
	config.JSON(w, http.StatusOK, s.CalendarEvents())
}
