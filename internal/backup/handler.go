package backup

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pedrolmns/big-lambda/internal/auth"
	"github.com/pedrolmns/big-lambda/internal/config"
	"github.com/pedrolmns/big-lambda/internal/store"
)

// Imports are capped; a snapshot is small user data, not a file dump.
const maxImportSize = 16 << 20

type Handler struct {
	sessions *store.Manager
}

func NewHandler(sessions *store.Manager) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	s, err := h.sessions.GetOrCreate(r.Context(), claims.UserID)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to load user session")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return s, true
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="big-backup.json"`)
	config.JSON(w, http.StatusOK, s.Export())
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	if err := s.Import(data); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Rejected invalid backup snapshot")
		http.Error(w, "invalid snapshot", http.StatusBadRequest)
		return
	}

	config.WithContext(r.Context()).Info("Backup imported")
	config.JSON(w, http.StatusOK, map[string]string{"message": "import concluído"})
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Export)
	r.Post("/", h.Import)

	return r
}
