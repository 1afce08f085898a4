package settings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pedrolmns/big-lambda/internal/auth"
	"github.com/pedrolmns/big-lambda/internal/config"
)

// Session is the slice of the user's data store these handlers operate on.
type Session interface {
	Settings() Settings
	UpdateSettings(patch Patch) Settings
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

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	config.JSON(w, http.StatusOK, s.Settings())
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if patch.AsaasURL != nil && *patch.AsaasURL != "" {
		if u, err := url.Parse(*patch.AsaasURL); err != nil || u.Scheme == "" || u.Host == "" {
			http.Error(w, "invalid asaas url", http.StatusBadRequest)
			return
		}
	}

	config.JSON(w, http.StatusOK, s.UpdateSettings(patch))
}
