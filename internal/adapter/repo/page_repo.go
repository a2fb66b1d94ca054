package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"storybook/internal/domain"
)

// PageRepositoryPG implements domain.PageRepository.
type PageRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewPageRepository creates a new page repository backed by PostgreSQL.
func NewPageRepository(pool *pgxpool.Pool) *PageRepositoryPG {
	return &PageRepositoryPG{pool: pool}
}

const pageColumns = `id, job_id, page_number, profession_title, text, image_prompt,
	status, image_url, error_message, generation_attempts, completed_at`

// CreateBatch bulk-inserts page rows, all expected to be status=pending.
func (r *PageRepositoryPG) CreateBatch(ctx context.Context, pages []domain.Page) error {
	batch := &pgx.Batch{}
	for i := range pages {
		p := &pages[i]
		batch.Queue(`
INSERT INTO book_generation_pages
	(id, job_id, page_number, profession_title, text, image_prompt, status)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`,
			p.ID, p.JobID, p.PageNumber, p.ProfessionTitle, p.Text, p.ImagePrompt, p.Status,
		)
	}
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range pages {
		if _, err := results.Exec(); err != nil {
			return storeErr("insert pages", err)
		}
	}
	return nil
}

// UpdateStatus writes the new status and increments generation_attempts in a
// single statement. Nil imageURL/errorMessage preserve the stored values;
// completed_at is stamped when the page completes.
func (r *PageRepositoryPG) UpdateStatus(ctx context.Context, jobID string, pageNumber int, status domain.PageStatus, imageURL, errorMessage *string) error {
	query := `
UPDATE book_generation_pages
SET status = $3,
    generation_attempts = generation_attempts + 1,
    image_url = COALESCE($4, image_url),
    error_message = COALESCE($5, error_message),
    completed_at = CASE WHEN $3 = 'completed' THEN NOW() ELSE completed_at END
WHERE job_id = $1 AND page_number = $2;
`
	tag, err := r.pool.Exec(ctx, query, jobID, pageNumber, status, imageURL, errorMessage)
	if err != nil {
		return storeErr("update page status", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateContent replaces the editable text and image prompt of a page.
func (r *PageRepositoryPG) UpdateContent(ctx context.Context, jobID string, pageNumber int, text, imagePrompt string) error {
	query := `
UPDATE book_generation_pages
SET text = $3, image_prompt = $4
WHERE job_id = $1 AND page_number = $2;
`
	tag, err := r.pool.Exec(ctx, query, jobID, pageNumber, text, imagePrompt)
	if err != nil {
		return storeErr("update page content", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByNumber fetches a single page of a job.
func (r *PageRepositoryPG) GetByNumber(ctx context.Context, jobID string, pageNumber int) (*domain.Page, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+pageColumns+`
FROM book_generation_pages
WHERE job_id = $1 AND page_number = $2;
`, jobID, pageNumber)
	page, err := scanPage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr("get page", err)
	}
	return page, nil
}

// ListByJob returns all pages of a job ordered by page number.
func (r *PageRepositoryPG) ListByJob(ctx context.Context, jobID string) ([]domain.Page, error) {
	return r.list(ctx, `
SELECT `+pageColumns+`
FROM book_generation_pages
WHERE job_id = $1
ORDER BY page_number;
`, jobID)
}

// ListIncomplete returns pages of a job not yet completed, ordered by page number.
func (r *PageRepositoryPG) ListIncomplete(ctx context.Context, jobID string) ([]domain.Page, error) {
	return r.list(ctx, `
SELECT `+pageColumns+`
FROM book_generation_pages
WHERE job_id = $1 AND status <> 'completed'
ORDER BY page_number;
`, jobID)
}

func (r *PageRepositoryPG) list(ctx context.Context, query, jobID string) ([]domain.Page, error) {
	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, storeErr("list pages", err)
	}
	defer rows.Close()

	var pages []domain.Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, storeErr("scan page", err)
		}
		pages = append(pages, *page)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list pages", err)
	}
	return pages, nil
}

func scanPage(row pgx.Row) (*domain.Page, error) {
	var page domain.Page
	var imageURL, errMsg pgtype.Text
	var completedAt pgtype.Timestamptz
	if err := row.Scan(
		&page.ID,
		&page.JobID,
		&page.PageNumber,
		&page.ProfessionTitle,
		&page.Text,
		&page.ImagePrompt,
		&page.Status,
		&imageURL,
		&errMsg,
		&page.GenerationAttempts,
		&completedAt,
	); err != nil {
		return nil, err
	}
	if imageURL.Valid {
		page.ImageURL = imageURL.String
	}
	if errMsg.Valid {
		page.ErrorMessage = errMsg.String
	}
	if completedAt.Valid {
		t := completedAt.Time
		page.CompletedAt = &t
	}
	return &page, nil
}
