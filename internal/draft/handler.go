package draft

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pedrolmns/big-lambda/internal/auth"
	"github.com/pedrolmns/big-lambda/internal/config"
)

type CreateDraftDTO struct {
	Title string `json:"title"`
	Type  Type   `json:"type"`
}

// Session is the slice of the user's data store these handlers operate on.
type Session interface {
	DraftNotes() []DraftNote
	AddDraftNote(title string, noteType Type) DraftNote
	UpdateDraftNote(d DraftNote)
	DeleteDraftNote(id string)
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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var dto CreateDraftDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	if dto.Type == "" {
		dto.Type = TypeScript
	}
	if !dto.Type.IsValid() {
		http.Error(w, "invalid draft type", http.StatusBadRequest)
		return
	}

	config.JSON(w, http.StatusCreated, s.AddDraftNote(dto.Title, dto.Type))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	config.JSON(w, http.StatusOK, s.DraftNotes())
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var d DraftNote
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	d.ID = chi.URLParam(r, "id")
	if d.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	s.UpdateDraftNote(d)
	for _, stored := range s.DraftNotes() {
		if stored.ID == d.ID {
			config.JSON(w, http.StatusOK, stored)
			return
		}
	}
	http.Error(w, "draft not found", http.StatusNotFound)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.DeleteDraftNote(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
