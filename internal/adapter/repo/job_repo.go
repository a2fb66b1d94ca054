package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"storybook/internal/domain"
)

// JobRepositoryPG implements domain.JobRepository.
type JobRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewJobRepository creates a new job repository backed by PostgreSQL.
func NewJobRepository(pool *pgxpool.Pool) *JobRepositoryPG {
	return &JobRepositoryPG{pool: pool}
}

const jobColumns = `id, template_id, template_name, child_name, child_age, child_gender,
	status, total_pages, pages_completed, current_page, error_message, error_page,
	created_at, updated_at, completed_at`

// Create inserts a new job record.
func (r *JobRepositoryPG) Create(ctx context.Context, job *domain.Job) error {
	query := `
INSERT INTO book_generation_jobs
	(id, template_id, template_name, child_name, child_age, child_gender, status, total_pages, pages_completed, current_page)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`
	_, err := r.pool.Exec(ctx, query,
		job.ID,
		job.TemplateID,
		job.TemplateName,
		job.ChildName,
		job.ChildAge,
		job.ChildGender,
		job.Status,
		job.TotalPages,
		job.PagesCompleted,
		job.CurrentPage,
	)
	if err != nil {
		return storeErr("insert job", err)
	}
	return nil
}

// CreateWithPages inserts the job and its page rows in one transaction, so a
// partial write cannot leave a job without pages.
func (r *JobRepositoryPG) CreateWithPages(ctx context.Context, job *domain.Job, pages []domain.Page) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return storeErr("begin tx", err)
	}
	defer tx.Rollback(ctx) // safe no-op after commit

	_, err = tx.Exec(ctx, `
INSERT INTO book_generation_jobs
	(id, template_id, template_name, child_name, child_age, child_gender, status, total_pages, pages_completed, current_page)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`,
		job.ID, job.TemplateID, job.TemplateName, job.ChildName, job.ChildAge,
		job.ChildGender, job.Status, job.TotalPages, job.PagesCompleted, job.CurrentPage,
	)
	if err != nil {
		return storeErr("insert job", err)
	}

	for i := range pages {
		p := &pages[i]
		_, err = tx.Exec(ctx, `
INSERT INTO book_generation_pages
	(id, job_id, page_number, profession_title, text, image_prompt, status)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`,
			p.ID, p.JobID, p.PageNumber, p.ProfessionTitle, p.Text, p.ImagePrompt, p.Status,
		)
		if err != nil {
			return storeErr(fmt.Sprintf("insert page %d", p.PageNumber), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return storeErr("commit", err)
	}
	return nil
}

// UpdateProgress overwrites current_page, pages_completed and status, stamping
// completed_at when the job completes.
func (r *JobRepositoryPG) UpdateProgress(ctx context.Context, jobID string, currentPage, pagesCompleted int, status domain.JobStatus) error {
	query := `
UPDATE book_generation_jobs
SET current_page = $2,
    pages_completed = $3,
    status = $4,
    updated_at = NOW(),
    completed_at = CASE WHEN $4 = 'completed' THEN NOW() ELSE completed_at END
WHERE id = $1;
`
	tag, err := r.pool.Exec(ctx, query, jobID, currentPage, pagesCompleted, status)
	if err != nil {
		return storeErr("update job progress", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkFailed sets status=failed with the error details. Page rows are left
// untouched so they remain individually retryable.
func (r *JobRepositoryPG) MarkFailed(ctx context.Context, jobID, errorMessage string, errorPage *int) error {
	query := `
UPDATE book_generation_jobs
SET status = 'failed',
    error_message = $2,
    error_page = COALESCE($3, error_page),
    updated_at = NOW()
WHERE id = $1;
`
	tag, err := r.pool.Exec(ctx, query, jobID, errorMessage, errorPage)
	if err != nil {
		return storeErr("mark job failed", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID fetches a job by its identifier.
func (r *JobRepositoryPG) GetByID(ctx context.Context, jobID string) (*domain.Job, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM book_generation_jobs WHERE id = $1;`, jobID)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr("get job", err)
	}
	return job, nil
}

// List returns jobs most recent first, capped at limit.
func (r *JobRepositoryPG) List(ctx context.Context, limit int) ([]domain.Job, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+jobColumns+`
FROM book_generation_jobs
ORDER BY created_at DESC
LIMIT $1;
`, limit)
	if err != nil {
		return nil, storeErr("list jobs", err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, storeErr("scan job", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list jobs", err)
	}
	return jobs, nil
}

// Delete removes the job row; pages go with it via the cascade constraint.
func (r *JobRepositoryPG) Delete(ctx context.Context, jobID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM book_generation_jobs WHERE id = $1;`, jobID)
	if err != nil {
		return storeErr("delete job", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkStalePaused pauses in_progress jobs whose last write predates cutoff.
func (r *JobRepositoryPG) MarkStalePaused(ctx context.Context, cutoff time.Time) (int, error) {
	tag, err := r.pool.Exec(ctx, `
UPDATE book_generation_jobs
SET status = 'paused', updated_at = NOW()
WHERE status = 'in_progress' AND updated_at < $1;
`, cutoff)
	if err != nil {
		return 0, storeErr("pause stale jobs", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	var errMsg pgtype.Text
	var errPage pgtype.Int4
	var completedAt pgtype.Timestamptz
	if err := row.Scan(
		&job.ID,
		&job.TemplateID,
		&job.TemplateName,
		&job.ChildName,
		&job.ChildAge,
		&job.ChildGender,
		&job.Status,
		&job.TotalPages,
		&job.PagesCompleted,
		&job.CurrentPage,
		&errMsg,
		&errPage,
		&job.CreatedAt,
		&job.UpdatedAt,
		&completedAt,
	); err != nil {
		return nil, err
	}
	if errMsg.Valid {
		job.ErrorMessage = errMsg.String
	}
	if errPage.Valid {
		v := int(errPage.Int32)
		job.ErrorPage = &v
	}
	if completedAt.Valid {
		t := completedAt.Time
		job.CompletedAt = &t
	}
	return &job, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrStoreUnavailable, err))
}
