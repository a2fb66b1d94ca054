package domain

import (
	"context"
	"time"
)

// JobRepository defines persistence for book generation jobs.
type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	// CreateWithPages inserts the job and all its page rows in a single
	// transaction so a job can never exist without its pages.
	CreateWithPages(ctx context.Context, job *Job, pages []Page) error
	UpdateProgress(ctx context.Context, jobID string, currentPage, pagesCompleted int, status JobStatus) error
	MarkFailed(ctx context.Context, jobID, errorMessage string, errorPage *int) error
	GetByID(ctx context.Context, jobID string) (*Job, error)
	List(ctx context.Context, limit int) ([]Job, error)
	Delete(ctx context.Context, jobID string) error
	// MarkStalePaused flips in_progress jobs untouched since the cutoff to
	// paused and returns how many rows changed.
	MarkStalePaused(ctx context.Context, cutoff time.Time) (int, error)
}

// PageRepository defines persistence for the pages of a job.
type PageRepository interface {
	CreateBatch(ctx context.Context, pages []Page) error
	// UpdateStatus writes the new status in one statement that also
	// increments generation_attempts, so concurrent callers cannot lose an
	// attempt count. Nil imageURL/errorMessage keep the stored values.
	UpdateStatus(ctx context.Context, jobID string, pageNumber int, status PageStatus, imageURL, errorMessage *string) error
	// UpdateContent replaces the editable text and image prompt of a page.
	UpdateContent(ctx context.Context, jobID string, pageNumber int, text, imagePrompt string) error
	GetByNumber(ctx context.Context, jobID string, pageNumber int) (*Page, error)
	ListByJob(ctx context.Context, jobID string) ([]Page, error)
	ListIncomplete(ctx context.Context, jobID string) ([]Page, error)
}

// TemplateRepository defines persistence for book templates and their pages.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *Template) error
	CreatePages(ctx context.Context, pages []TemplatePage) error
	List(ctx context.Context) ([]Template, error)
	GetByID(ctx context.Context, templateID string) (*Template, error)
	FindByName(ctx context.Context, name string) (*Template, error)
	ListPages(ctx context.Context, templateID string) ([]TemplatePage, error)
	HasPages(ctx context.Context, templateID string) (bool, error)
}
