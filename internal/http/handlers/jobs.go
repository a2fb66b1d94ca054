package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"storybook/internal/domain"
)

func (a *App) ListJobs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "limit must be an integer")
			return
		}
		limit = n
	}
	jobs, err := a.Tracker.GetAllJobs(r.Context(), limit)
	if err != nil {
		a.domainError(w, err)
		return
	}
	out := make([]jobView, len(jobs))
	for i := range jobs {
		out[i] = toJobView(&jobs[i])
	}
	a.json(w, http.StatusOK, map[string]any{"jobs": out})
}

func (a *App) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := a.Tracker.GetJob(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toJobView(job))
}

func (a *App) GetJobSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.Tracker.GetJobSummary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"job":   toJobView(&summary.Job),
		"pages": toPageViews(summary.Pages),
		"stats": summary.Stats,
	})
}

func (a *App) GetJobPages(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")
	if _, err := a.Tracker.GetJob(r.Context(), jobID); err != nil {
		a.domainError(w, err)
		return
	}
	pages, err := a.Tracker.GetJobPages(r.Context(), jobID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"pages": toPageViews(pages)})
}

type resumeRequest struct {
	PhotoB64 string `json:"photo_b64,omitempty"`
}

// ResumeJob re-enqueues the job's incomplete pages. Completed jobs have
// nothing to resume; everything else is fair game, including failed and
// paused jobs.
func (a *App) ResumeJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")
	job, err := a.Tracker.GetJob(r.Context(), jobID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	if !job.Resumable() {
		a.error(w, http.StatusConflict, "not_resumable", fmt.Sprintf("job is %s", job.Status))
		return
	}

	var req resumeRequest
	_ = jsonDecodeLenient(r, &req)

	if err := a.Queue.Submit(jobID, req.PhotoB64); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusAccepted, map[string]string{"job_id": jobID, "status": string(domain.JobStatusInProgress)})
}

func (a *App) DeleteJob(w http.ResponseWriter, r *http.Request) {
	if err := a.Tracker.DeleteJob(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.domainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DownloadBookPDF assembles the book on demand and streams it. Partially
// generated books still download; failed pages render as placeholders.
func (a *App) DownloadBookPDF(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")
	job, err := a.Tracker.GetJob(r.Context(), jobID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	pages, err := a.Tracker.GetJobPages(r.Context(), jobID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	out, err := a.Assembler.Build(job, pages)
	if err != nil {
		a.Logger.Error().Err(err).Str("job_id", jobID).Msg("pdf assembly failed")
		a.error(w, http.StatusInternalServerError, "pdf_failed", "could not assemble the book")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", bookFilename(job)))
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	_, _ = w.Write(out)
}

func bookFilename(job *domain.Job) string {
	name := job.ChildName
	if name == "" {
		name = "storybook"
	}
	return fmt.Sprintf("%s-book.pdf", name)
}
