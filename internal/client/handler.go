package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pedrolmns/big-lambda/internal/auth"
	"github.com/pedrolmns/big-lambda/internal/config"
)

type CreateClientDTO struct {
	Name         string `json:"name"`
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CPF          string `json:"cpf"`
	Observations string `json:"observations"`
}

func (d CreateClientDTO) Validate() error {
	if d.Name == "" {
		return errors.New("name is required")
	}
	if d.Email == "" || !strings.Contains(d.Email, "@") {
		return errors.New("a valid email is required")
	}
	return nil
}

// Session is the slice of the user's data store these handlers operate on.
type Session interface {
	Clients() []Client
	GetClientByID(id string) (Client, bool)
	AddClient(c Client) Client
	UpdateClient(c Client)
	DeleteClient(id string)
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

	var dto CreateClientDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := dto.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created := s.AddClient(Client{
		Name:         dto.Name,
		Company:      dto.Company,
		Email:        dto.Email,
		Phone:        dto.Phone,
		CPF:          dto.CPF,
		Observations: dto.Observations,
	})
	config.JSON(w, http.StatusCreated, created)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	config.JSON(w, http.StatusOK, s.Clients())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	c, found := s.GetClientByID(chi.URLParam(r, "id"))
	if !found {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}
	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var c Client
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	c.ID = chi.URLParam(r, "id")
	if c.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	s.UpdateClient(c)
	updated, found := s.GetClientByID(c.ID)
	if !found {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}
	config.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.DeleteClient(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
