package handlers

import (
	"net/http"
)

func (h *Handlers) HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"service": "blog content api"}, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	status, err := h.StatusService.Check(r.Context())
	if err != nil {
		WriteError(w, "Database is unavailable.", http.StatusServiceUnavailable)
		return
	}

	WriteSuccess(w, status, http.StatusOK)
}
