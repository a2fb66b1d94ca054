package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storybook/internal/domain"
)

// TemplateRepositoryPG implements domain.TemplateRepository.
type TemplateRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository creates a new template repository backed by PostgreSQL.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepositoryPG {
	return &TemplateRepositoryPG{pool: pool}
}

// Create inserts a new template row.
func (r *TemplateRepositoryPG) Create(ctx context.Context, tpl *domain.Template) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO templates (id, name, description, total_pages)
VALUES ($1, $2, $3, $4);
`, tpl.ID, tpl.Name, tpl.Description, tpl.TotalPages)
	if err != nil {
		return storeErr("insert template", err)
	}
	return nil
}

// CreatePages bulk-inserts template page rows.
func (r *TemplateRepositoryPG) CreatePages(ctx context.Context, pages []domain.TemplatePage) error {
	batch := &pgx.Batch{}
	for i := range pages {
		p := &pages[i]
		batch.Queue(`
INSERT INTO template_pages (id, template_id, page_number, profession_title, text_template, image_prompt_template)
VALUES ($1, $2, $3, $4, $5, $6);
`, p.ID, p.TemplateID, p.PageNumber, p.ProfessionTitle, p.TextTemplate, p.ImagePromptTemplate)
	}
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range pages {
		if _, err := results.Exec(); err != nil {
			return storeErr("insert template pages", err)
		}
	}
	return nil
}

// List returns every template.
func (r *TemplateRepositoryPG) List(ctx context.Context) ([]domain.Template, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, name, description, total_pages, created_at
FROM templates
ORDER BY name;
`)
	if err != nil {
		return nil, storeErr("list templates", err)
	}
	defer rows.Close()

	var templates []domain.Template
	for rows.Next() {
		var tpl domain.Template
		if err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.Description, &tpl.TotalPages, &tpl.CreatedAt); err != nil {
			return nil, storeErr("scan template", err)
		}
		templates = append(templates, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list templates", err)
	}
	return templates, nil
}

// GetByID fetches one template.
func (r *TemplateRepositoryPG) GetByID(ctx context.Context, templateID string) (*domain.Template, error) {
	return r.get(ctx, `
SELECT id, name, description, total_pages, created_at
FROM templates WHERE id = $1;
`, templateID)
}

// FindByName fetches one template by its unique name.
func (r *TemplateRepositoryPG) FindByName(ctx context.Context, name string) (*domain.Template, error) {
	return r.get(ctx, `
SELECT id, name, description, total_pages, created_at
FROM templates WHERE name = $1;
`, name)
}

func (r *TemplateRepositoryPG) get(ctx context.Context, query, arg string) (*domain.Template, error) {
	var tpl domain.Template
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&tpl.ID, &tpl.Name, &tpl.Description, &tpl.TotalPages, &tpl.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr("get template", err)
	}
	return &tpl, nil
}

// ListPages returns the pages of a template ordered by page number.
func (r *TemplateRepositoryPG) ListPages(ctx context.Context, templateID string) ([]domain.TemplatePage, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, template_id, page_number, profession_title, text_template, image_prompt_template
FROM template_pages
WHERE template_id = $1
ORDER BY page_number;
`, templateID)
	if err != nil {
		return nil, storeErr("list template pages", err)
	}
	defer rows.Close()

	var pages []domain.TemplatePage
	for rows.Next() {
		var p domain.TemplatePage
		if err := rows.Scan(&p.ID, &p.TemplateID, &p.PageNumber, &p.ProfessionTitle, &p.TextTemplate, &p.ImagePromptTemplate); err != nil {
			return nil, storeErr("scan template page", err)
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list template pages", err)
	}
	return pages, nil
}

// HasPages reports whether any page rows exist for the template.
func (r *TemplateRepositoryPG) HasPages(ctx context.Context, templateID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
SELECT EXISTS (SELECT 1 FROM template_pages WHERE template_id = $1);
`, templateID).Scan(&exists)
	if err != nil {
		return false, storeErr("check template pages", err)
	}
	return exists, nil
}
