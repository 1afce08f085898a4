package assistant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pedrolmns/big-lambda/internal/auth"
	"github.com/pedrolmns/big-lambda/internal/config"
	"github.com/pedrolmns/big-lambda/internal/store"
)

type Handler struct {
	service  Service
	sessions *store.Manager
}

func NewHandler(service Service, sessions *store.Manager) *Handler {
	return &Handler{service: service, sessions: sessions}
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
		http.Error(w, "prompt is required", http.StatusBadRequest)
		return
	}

	session, err := h.sessions.GetOrCreate(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load user session")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	text, err := h.service.Complete(r.Context(), session, req)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			http.Error(w, "assistant unavailable", http.StatusServiceUnavailable)
			return
		}
		log.WithError(err).Error("Assistant completion failed")
		http.Error(w, "failed to generate completion", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, CompletionResponse{Text: text})
}
