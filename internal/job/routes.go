package job

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/restore", h.Restore)
	r.Delete("/{id}/permanent", h.PermanentlyDelete)
	r.Post("/{id}/observations", h.AddObservation)
	r.Post("/{id}/payments", h.RegisterPayment)

	return r
}
