// Package tracker is the single point of read/write access to job and page
// records. It keeps book generation restartable: every page attempt and every
// progress step lands in the store before the driver moves on, so a run that
// dies mid-book can be resumed from the incomplete pages.
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"storybook/internal/domain"
)

// DefaultJobListLimit caps history listings when the caller passes no limit.
const DefaultJobListLimit = 50

// Tracker mediates all job/page persistence for the generation pipeline.
type Tracker struct {
	jobs   domain.JobRepository
	pages  domain.PageRepository
	logger zerolog.Logger
}

// New creates a Tracker over the given repositories.
func New(jobs domain.JobRepository, pages domain.PageRepository, logger zerolog.Logger) *Tracker {
	return &Tracker{jobs: jobs, pages: pages, logger: logger}
}

// CreateJobParams collects the inputs for a new book generation job.
type CreateJobParams struct {
	TemplateID   string
	TemplateName string
	ChildName    string
	ChildAge     int
	ChildGender  string
	TotalPages   int
}

func (p CreateJobParams) validate() error {
	if p.ChildName == "" {
		return fmt.Errorf("%w: child name is required", domain.ErrInvalidInput)
	}
	if p.TotalPages < 1 {
		return fmt.Errorf("%w: total pages must be at least 1", domain.ErrInvalidInput)
	}
	return nil
}

// PageSeed is the initial content of one page, created at status=pending.
type PageSeed struct {
	PageNumber      int
	ProfessionTitle string
	Text            string
	ImagePrompt     string
}

// CreateJob creates a new job (status=in_progress, zero progress) and returns
// its identifier.
func (t *Tracker) CreateJob(ctx context.Context, p CreateJobParams) (string, error) {
	if err := p.validate(); err != nil {
		return "", err
	}
	job := newJob(p)
	if err := t.jobs.Create(ctx, job); err != nil {
		return "", err
	}
	t.logger.Info().Str("job_id", job.ID).Str("child", p.ChildName).Int("total_pages", p.TotalPages).Msg("created job")
	return job.ID, nil
}

// CreateJobWithPages creates the job and all its pending page rows in one
// transaction and returns the job identifier. seeds must be ordered and
// contiguous starting at page 1.
func (t *Tracker) CreateJobWithPages(ctx context.Context, p CreateJobParams, seeds []PageSeed) (string, error) {
	if err := p.validate(); err != nil {
		return "", err
	}
	if len(seeds) != p.TotalPages {
		return "", fmt.Errorf("%w: %d page seeds for %d total pages", domain.ErrInvalidInput, len(seeds), p.TotalPages)
	}
	for i, s := range seeds {
		if s.PageNumber != i+1 {
			return "", fmt.Errorf("%w: page numbers must be contiguous from 1, got %d at index %d", domain.ErrInvalidInput, s.PageNumber, i)
		}
	}
	job := newJob(p)
	if err := t.jobs.CreateWithPages(ctx, job, seedPages(job.ID, seeds)); err != nil {
		return "", err
	}
	t.logger.Info().Str("job_id", job.ID).Int("pages", len(seeds)).Msg("created job with pages")
	return job.ID, nil
}

// CreatePageRecords bulk-inserts pending page rows for an existing job.
func (t *Tracker) CreatePageRecords(ctx context.Context, jobID string, seeds []PageSeed) error {
	if err := t.pages.CreateBatch(ctx, seedPages(jobID, seeds)); err != nil {
		return err
	}
	t.logger.Info().Str("job_id", jobID).Int("pages", len(seeds)).Msg("created page records")
	return nil
}

// UpdatePageStatus records the outcome of a page attempt. The attempt counter
// increments by exactly one per call; empty imageURL/errorMessage leave the
// stored values untouched.
func (t *Tracker) UpdatePageStatus(ctx context.Context, jobID string, pageNumber int, status domain.PageStatus, imageURL, errorMessage string) error {
	err := t.pages.UpdateStatus(ctx, jobID, pageNumber, status, optional(imageURL), optional(errorMessage))
	if err != nil {
		return err
	}
	t.logger.Debug().Str("job_id", jobID).Int("page", pageNumber).Str("status", string(status)).Msg("page status updated")
	return nil
}

// UpdateJobProgress overwrites the job's cursor, completion count and status.
// The tracker performs no validation against actual page rows; the driver is
// responsible for keeping pages_completed honest.
func (t *Tracker) UpdateJobProgress(ctx context.Context, jobID string, currentPage, pagesCompleted int, status domain.JobStatus) error {
	return t.jobs.UpdateProgress(ctx, jobID, currentPage, pagesCompleted, status)
}

// MarkJobFailed records a run-level failure. Page rows are not rolled back.
func (t *Tracker) MarkJobFailed(ctx context.Context, jobID, errorMessage string, errorPage *int) error {
	if err := t.jobs.MarkFailed(ctx, jobID, errorMessage, errorPage); err != nil {
		return err
	}
	evt := t.logger.Warn().Str("job_id", jobID).Str("error", errorMessage)
	if errorPage != nil {
		evt = evt.Int("error_page", *errorPage)
	}
	evt.Msg("job marked failed")
	return nil
}

// GetJob returns the job or domain.ErrNotFound.
func (t *Tracker) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	return t.jobs.GetByID(ctx, jobID)
}

// GetJobPages returns all pages of a job ordered by page number.
func (t *Tracker) GetJobPages(ctx context.Context, jobID string) ([]domain.Page, error) {
	return t.pages.ListByJob(ctx, jobID)
}

// GetPage returns a single page of a job.
func (t *Tracker) GetPage(ctx context.Context, jobID string, pageNumber int) (*domain.Page, error) {
	return t.pages.GetByNumber(ctx, jobID, pageNumber)
}

// GetIncompletePages returns pages with status other than completed, ordered
// by page number. Empty when the job is fully generated.
func (t *Tracker) GetIncompletePages(ctx context.Context, jobID string) ([]domain.Page, error) {
	return t.pages.ListIncomplete(ctx, jobID)
}

// UpdatePageContent replaces the editable text and image prompt of a page.
func (t *Tracker) UpdatePageContent(ctx context.Context, jobID string, pageNumber int, text, imagePrompt string) error {
	return t.pages.UpdateContent(ctx, jobID, pageNumber, text, imagePrompt)
}

// GetAllJobs returns job history, most recent first. A non-positive limit
// falls back to DefaultJobListLimit.
func (t *Tracker) GetAllJobs(ctx context.Context, limit int) ([]domain.Job, error) {
	if limit <= 0 || limit > DefaultJobListLimit {
		limit = DefaultJobListLimit
	}
	return t.jobs.List(ctx, limit)
}

// Stats aggregates page states of one job.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Pending   int `json:"pending"`
}

// Summary is the job together with its pages and aggregate stats.
type Summary struct {
	Job   domain.Job    `json:"job"`
	Pages []domain.Page `json:"pages"`
	Stats Stats         `json:"stats"`
}

// GetJobSummary aggregates GetJob and GetJobPages. Returns domain.ErrNotFound
// when the job does not exist.
func (t *Tracker) GetJobSummary(ctx context.Context, jobID string) (*Summary, error) {
	job, err := t.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	pages, err := t.pages.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	s := &Summary{Job: *job, Pages: pages, Stats: Stats{Total: len(pages)}}
	for i := range pages {
		switch pages[i].Status {
		case domain.PageStatusCompleted:
			s.Stats.Completed++
		case domain.PageStatusFailed:
			s.Stats.Failed++
		case domain.PageStatusPending:
			s.Stats.Pending++
		}
	}
	return s, nil
}

// DeleteJob hard-deletes the job; pages cascade at the store level.
func (t *Tracker) DeleteJob(ctx context.Context, jobID string) error {
	if err := t.jobs.Delete(ctx, jobID); err != nil {
		return err
	}
	t.logger.Info().Str("job_id", jobID).Msg("deleted job")
	return nil
}

// MarkStaleJobsPaused pauses jobs stuck in_progress since before the cutoff,
// typically because a run was abandoned without finishing.
func (t *Tracker) MarkStaleJobsPaused(ctx context.Context, olderThan time.Duration) (int, error) {
	n, err := t.jobs.MarkStalePaused(ctx, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		t.logger.Info().Int("jobs", n).Msg("paused stale jobs")
	}
	return n, nil
}

func newJob(p CreateJobParams) *domain.Job {
	return &domain.Job{
		ID:           uuid.NewString(),
		TemplateID:   p.TemplateID,
		TemplateName: p.TemplateName,
		ChildName:    p.ChildName,
		ChildAge:     p.ChildAge,
		ChildGender:  p.ChildGender,
		Status:       domain.JobStatusInProgress,
		TotalPages:   p.TotalPages,
	}
}

func seedPages(jobID string, seeds []PageSeed) []domain.Page {
	pages := make([]domain.Page, len(seeds))
	for i, s := range seeds {
		pages[i] = domain.Page{
			ID:              uuid.NewString(),
			JobID:           jobID,
			PageNumber:      s.PageNumber,
			ProfessionTitle: s.ProfessionTitle,
			Text:            s.Text,
			ImagePrompt:     s.ImagePrompt,
			Status:          domain.PageStatusPending,
		}
	}
	return pages
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
