package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/avast/retry-go/v4"

	"storybook/internal/domain"
)

// processJob walks the job's incomplete pages in order, generating one image
// per page. A failed page does not fail the job: the page is marked failed and
// the run moves on, leaving it retryable via resume or regenerate. MarkJobFailed
// is reserved for run-level faults such as the store going away mid-run.
func (r *Runner) processJob(ctx context.Context, req runRequest) {
	log := r.logger.With().Str("job_id", req.jobID).Logger()

	job, err := r.tracker.GetJob(ctx, req.jobID)
	if err != nil {
		log.Error().Err(err).Msg("cannot load job for run")
		return
	}
	if job.Status == domain.JobStatusCompleted {
		log.Info().Msg("job already completed, nothing to run")
		return
	}

	pages, err := r.tracker.GetIncompletePages(ctx, req.jobID)
	if err != nil {
		r.failRun(ctx, req.jobID, fmt.Errorf("list incomplete pages: %w", err), nil)
		return
	}
	completed := job.TotalPages - len(pages)

	// A prior run can die after the last page write but before the job row is
	// updated. Nothing is left to generate, so reconcile the job here.
	if len(pages) == 0 && completed == job.TotalPages {
		if err := r.tracker.UpdateJobProgress(ctx, req.jobID, job.TotalPages, completed, domain.JobStatusCompleted); err != nil {
			r.failRun(ctx, req.jobID, fmt.Errorf("finish fully generated job: %w", err), nil)
			return
		}
		log.Info().Int("completed", completed).Msg("all pages already generated, job finished")
		return
	}

	log.Info().Int("incomplete", len(pages)).Int("completed", completed).Msg("run started")

	for i := range pages {
		page := &pages[i]
		if ctx.Err() != nil {
			log.Warn().Int("page", page.PageNumber).Msg("run interrupted, job stays resumable")
			return
		}
		ok, err := r.generatePage(ctx, page, req.refImageB64)
		if err != nil {
			r.failRun(ctx, req.jobID, err, &page.PageNumber)
			return
		}
		if ok {
			completed++
		}
		status := domain.JobStatusInProgress
		if completed == job.TotalPages {
			status = domain.JobStatusCompleted
		}
		if err := r.tracker.UpdateJobProgress(ctx, req.jobID, page.PageNumber, completed, status); err != nil {
			r.failRun(ctx, req.jobID, fmt.Errorf("update progress: %w", err), &page.PageNumber)
			return
		}
	}

	log.Info().Int("completed", completed).Int("total", job.TotalPages).Msg("run finished")
}

// processPage regenerates a single page, then re-derives the job's completion
// count from the stored pages so a last-page regeneration can finish the job.
func (r *Runner) processPage(ctx context.Context, req runRequest) {
	log := r.logger.With().Str("job_id", req.jobID).Int("page", req.pageNumber).Logger()

	page, err := r.tracker.GetPage(ctx, req.jobID, req.pageNumber)
	if err != nil {
		log.Error().Err(err).Msg("cannot load page for regeneration")
		return
	}
	if _, err := r.generatePage(ctx, page, req.refImageB64); err != nil {
		log.Error().Err(err).Msg("regeneration aborted")
		return
	}

	summary, err := r.tracker.GetJobSummary(ctx, req.jobID)
	if err != nil {
		log.Error().Err(err).Msg("cannot summarize job after regeneration")
		return
	}
	status := domain.JobStatusInProgress
	if summary.Stats.Completed == summary.Job.TotalPages {
		status = domain.JobStatusCompleted
	}
	if err := r.tracker.UpdateJobProgress(ctx, req.jobID, req.pageNumber, summary.Stats.Completed, status); err != nil {
		log.Error().Err(err).Msg("cannot update progress after regeneration")
	}
}

// generatePage runs one page through mark-generating, bounded-retry image
// generation, and the final status write. The returned bool reports whether
// the page completed; a generation failure is recorded on the page and is not
// an error. Only store failures are returned.
func (r *Runner) generatePage(ctx context.Context, page *domain.Page, refImageB64 string) (bool, error) {
	if err := r.tracker.UpdatePageStatus(ctx, page.JobID, page.PageNumber, domain.PageStatusGenerating, "", ""); err != nil {
		return false, fmt.Errorf("mark page %d generating: %w", page.PageNumber, err)
	}

	imageURL, genErr := retry.DoWithData(
		func() (string, error) {
			return r.images.GenerateImage(ctx, page.ImagePrompt, refImageB64)
		},
		retry.Attempts(generateAttempts),
		retry.Delay(r.retryWait),
		retry.DelayType(retry.FixedDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if genErr != nil {
		if err := r.tracker.UpdatePageStatus(ctx, page.JobID, page.PageNumber, domain.PageStatusFailed, "", genErr.Error()); err != nil {
			return false, fmt.Errorf("mark page %d failed: %w", page.PageNumber, err)
		}
		r.logger.Warn().Err(genErr).Str("job_id", page.JobID).Int("page", page.PageNumber).Msg("page generation failed")
		return false, nil
	}

	if err := r.tracker.UpdatePageStatus(ctx, page.JobID, page.PageNumber, domain.PageStatusCompleted, imageURL, ""); err != nil {
		return false, fmt.Errorf("mark page %d completed: %w", page.PageNumber, err)
	}
	return true, nil
}

// failRun records a run-level fault on the job. Page rows keep whatever state
// they reached, so the job remains resumable once the fault clears.
func (r *Runner) failRun(ctx context.Context, jobID string, cause error, page *int) {
	r.logger.Error().Err(cause).Str("job_id", jobID).Msg("run aborted")
	if errors.Is(cause, domain.ErrNotFound) {
		// Job deleted mid-run; nothing left to mark.
		return
	}
	if err := r.tracker.MarkJobFailed(ctx, jobID, cause.Error(), page); err != nil {
		r.logger.Error().Err(err).Str("job_id", jobID).Msg("cannot mark job failed")
	}
}
