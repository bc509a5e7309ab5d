package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"skygen/internal/genimage"
	"skygen/internal/jobstore"
)

type generateRequest struct {
	Query string `json:"q"`
}

// resultsEnvelope is the wire shape the mobile client expects from both
// endpoints: {"results":{"id":...}} for /gen, {"results":{"urls":[...]}}
// for /check.
type resultsEnvelope struct {
	Results map[string]any `json:"results"`
}

// Generate accepts a prompt, queues a job, and returns its id immediately.
// Rendering happens in the background; the client polls /check for the
// result.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	prompt := strings.TrimSpace(req.Query)
	if prompt == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "prompt is required")
		return
	}

	job := jobstore.Job{ID: uuid.NewString(), Prompt: prompt, Status: jobstore.StatusQueued}
	if err := a.Store.Create(r.Context(), job); err != nil {
		a.Logger.Error().Err(err).Msg("gen: failed to queue job")
		a.error(w, http.StatusInternalServerError, "internal", "failed to queue job")
		return
	}

	go a.renderJob(job.ID, prompt)

	a.json(w, http.StatusOK, resultsEnvelope{Results: map[string]any{"id": job.ID}})
}

// Check reports the result URLs for a job. Pending jobs answer with an empty
// list; the client treats that as "not ready".
func (a *App) Check(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "id is required")
		return
	}
	job, err := a.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, jobstore.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "job not found")
			return
		}
		a.Logger.Error().Err(err).Str("job_id", id).Msg("check: failed to load job")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load job")
		return
	}

	urls := job.URLs
	if urls == nil {
		urls = []string{}
	}
	a.json(w, http.StatusOK, resultsEnvelope{Results: map[string]any{"urls": urls}})
}

// renderJob runs after the HTTP response is written, so it carries its own
// context rather than the request's.
func (a *App) renderJob(jobID, prompt string) {
	ctx := context.Background()

	if a.RenderDelay > 0 {
		time.Sleep(a.RenderDelay)
	}

	data, err := a.Render(prompt, genimage.DefaultWidth, genimage.DefaultHeight)
	if err != nil {
		a.failJob(ctx, jobID, err)
		return
	}

	key := path.Join(jobID, genimage.Slug(prompt)+".png")
	stored, err := a.Files.Write(ctx, key, data)
	if err != nil {
		a.failJob(ctx, jobID, err)
		return
	}

	resultURL := strings.TrimRight(a.PublicBaseURL, "/") + "/images/" + stored
	if err := a.Store.SetResult(ctx, jobID, []string{resultURL}); err != nil {
		a.Logger.Error().Err(err).Str("job_id", jobID).Msg("gen: failed to record result")
		return
	}
	a.Logger.Info().Str("job_id", jobID).Str("url", resultURL).Msg("gen: job completed")
}

func (a *App) failJob(ctx context.Context, jobID string, cause error) {
	a.Logger.Error().Err(cause).Str("job_id", jobID).Msg("gen: job failed")
	if err := a.Store.SetFailed(ctx, jobID, cause.Error()); err != nil {
		a.Logger.Error().Err(err).Str("job_id", jobID).Msg("gen: failed to record failure")
	}
}
