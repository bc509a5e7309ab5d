package httpapi

import (
	stdhttp "net/http"
	"time"

	"skygen/internal/http/handlers"
	"skygen/internal/infra"
	mw "skygen/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the skygend HTTP surface: the two generation endpoints
// the mobile client calls, image serving, and a health probe.
func NewRouter(app *handlers.App, logger infra.Logger, genPerMin int) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP, chimw.Recoverer)
	r.Use(mw.RequestID)
	r.Use(mw.Logger(logger))

	r.Get("/healthz", app.Health)

	r.With(mw.RateLimit(genPerMin, time.Minute)).Post("/gen", app.Generate)
	r.Get("/check", app.Check)
	r.Get("/images/{job_id}/{file}", app.Image)

	return r
}
