package handlers

import (
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
)

// Image serves a stored render. Keys are sanitized by the file store, so a
// crafted job_id or file segment cannot escape the storage root.
func (a *App) Image(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job_id")
	file := chi.URLParam(r, "file")
	if jobID == "" || file == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "image path required")
		return
	}

	data, err := a.Files.Read(r.Context(), path.Join(jobID, file))
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "image not found")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
