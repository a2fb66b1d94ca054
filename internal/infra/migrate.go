package infra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migrations are applied in order on startup. Statements must stay
// idempotent; there is no version table.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS book_generation_jobs (
		id UUID PRIMARY KEY,
		template_id TEXT NOT NULL,
		template_name TEXT NOT NULL,
		child_name TEXT NOT NULL,
		child_age INT NOT NULL,
		child_gender TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'in_progress',
		total_pages INT NOT NULL,
		pages_completed INT NOT NULL DEFAULT 0,
		current_page INT NOT NULL DEFAULT 0,
		error_message TEXT,
		error_page INT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		completed_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS book_generation_pages (
		id UUID PRIMARY KEY,
		job_id UUID NOT NULL REFERENCES book_generation_jobs(id) ON DELETE CASCADE,
		page_number INT NOT NULL,
		profession_title TEXT NOT NULL DEFAULT '',
		text TEXT NOT NULL DEFAULT '',
		image_prompt TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		image_url TEXT,
		error_message TEXT,
		generation_attempts INT NOT NULL DEFAULT 0,
		completed_at TIMESTAMPTZ,
		UNIQUE (job_id, page_number)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_book_generation_pages_job
		ON book_generation_pages (job_id, page_number)`,
	`CREATE INDEX IF NOT EXISTS idx_book_generation_jobs_created
		ON book_generation_jobs (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS templates (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		total_pages INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS template_pages (
		id UUID PRIMARY KEY,
		template_id UUID NOT NULL REFERENCES templates(id) ON DELETE CASCADE,
		page_number INT NOT NULL,
		profession_title TEXT NOT NULL DEFAULT '',
		text_template TEXT NOT NULL DEFAULT '',
		image_prompt_template TEXT NOT NULL DEFAULT '',
		UNIQUE (template_id, page_number)
	)`,
}

// RunMigrations applies the schema migrations against the pool.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
