package job

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pedrolmns/big-lambda/internal/auth"
	"github.com/pedrolmns/big-lambda/internal/client"
	"github.com/pedrolmns/big-lambda/internal/config"
)

// Session is the slice of the user's data store these handlers operate on.
type Session interface {
	Jobs(includeDeleted bool) []Job
	GetJobByID(id string) (Job, bool)
	AddJob(j Job) Job
	UpdateJob(j Job)
	DeleteJob(id string)
	RestoreJob(id string)
	PermanentlyDeleteJob(id string)
	AddJobObservation(id, text string) (Observation, bool)
	RegisterPayment(jobID string, p Payment) (Payment, bool)
	GetClientByID(id string) (client.Client, bool)
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

	var dto CreateJobDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := dto.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created := s.AddJob(dto.ToJob())
	config.WithContext(r.Context()).WithField("job_id", created.ID).Info("Job created")
	config.JSON(w, http.StatusCreated, created)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	includeDeleted := r.URL.Query().Get("includeDeleted") == "true"
	config.JSON(w, http.StatusOK, s.Jobs(includeDeleted))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	j, found := s.GetJobByID(chi.URLParam(r, "id"))
	if !found {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}
	config.JSON(w, http.StatusOK, j)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var j Job
	if err := json.NewDecoder(r.Body).Decode(&j); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	j.ID = chi.URLParam(r, "id")
	if j.Value < 0 || (j.Status != "" && !j.Status.IsValid()) {
		http.Error(w, "invalid job payload", http.StatusBadRequest)
		return
	}

	s.UpdateJob(j)
	updated, found := s.GetJobByID(j.ID)
	if !found {
		// Unknown ids are a silent no-op in the store; report it here.
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}
	config.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.DeleteJob(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.RestoreJob(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) PermanentlyDelete(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.PermanentlyDeleteJob(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddObservation(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var dto AddObservationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	obs, found := s.AddJobObservation(chi.URLParam(r, "id"), dto.Text)
	if !found {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}
	config.JSON(w, http.StatusCreated, obs)
}

func (h *Handler) RegisterPayment(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var dto RegisterPaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := dto.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, found := s.RegisterPayment(chi.URLParam(r, "id"), Payment{
		Amount: dto.Amount,
		Date:   dto.Date,
		Method: dto.Method,
		Notes:  dto.Notes,
	})
	if !found {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}
	config.WithContext(r.Context()).WithField("job_id", chi.URLParam(r, "id")).Info("Payment registered")
	config.JSON(w, http.StatusCreated, p)
}

// ListFinancials serves finalized and paid jobs with their derived financial
// status and resolved client names.
func (h *Handler) ListFinancials(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	now := time.Now()
	records := []FinancialRecord{}
	for _, j := range s.Jobs(false) {
		if j.Status != StatusFinalized && j.Status != StatusPaid {
			continue
		}
		name := client.UnknownClientName
		if c, found := s.GetClientByID(j.ClientID); found {
			name = c.Name
		}
		records = append(records, FinancialRecord{
			Job:             j,
			FinancialStatus: ComputeFinancialStatus(&j, now),
			ClientName:      name,
		})
	}
	config.JSON(w, http.StatusOK, records)
}
