package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"skygen/internal/genimage"
	"skygen/internal/infra"
	"skygen/internal/jobstore"
	"skygen/internal/storage"
)

// App bundles the dependencies behind the HTTP surface.
type App struct {
	Store         jobstore.Store
	Files         *storage.FileStore
	Logger        infra.Logger
	PublicBaseURL string

	// RenderDelay simulates generation latency before a job completes.
	// Keep it under the client's fixed six second wait so a single poll
	// finds the result.
	RenderDelay time.Duration

	// Render produces the image bytes for a prompt. Tests substitute a stub.
	Render func(prompt string, width, height int) ([]byte, error)
}

// NewApp wires an App with the default synthetic renderer.
func NewApp(store jobstore.Store, files *storage.FileStore, logger infra.Logger, publicBaseURL string, renderDelay time.Duration) *App {
	return &App{
		Store:         store,
		Files:         files,
		Logger:        logger,
		PublicBaseURL: publicBaseURL,
		RenderDelay:   renderDelay,
		Render:        genimage.Render,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, msg string) {
	a.json(w, code, map[string]any{"error": map[string]string{"code": kind, "message": msg}})
}
