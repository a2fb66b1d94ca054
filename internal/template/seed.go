package template

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"storybook/internal/domain"
)

// SeedDefaults makes sure every built-in template exists without touching
// user content. Templates are matched by name; pages are only inserted when
// the template has none yet, so edited copies are never overwritten.
func SeedDefaults(ctx context.Context, repo domain.TemplateRepository, logger zerolog.Logger) error {
	for _, def := range Defaults() {
		tpl, err := repo.FindByName(ctx, def.Name)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			tpl = &domain.Template{
				ID:          uuid.NewString(),
				Name:        def.Name,
				Description: def.Description,
				TotalPages:  len(def.Pages),
			}
			if err := repo.Create(ctx, tpl); err != nil {
				return fmt.Errorf("seed template %q: %w", def.Name, err)
			}
			logger.Info().Str("template", def.Name).Msg("seeded built-in template")
		case err != nil:
			return fmt.Errorf("look up template %q: %w", def.Name, err)
		}

		hasPages, err := repo.HasPages(ctx, tpl.ID)
		if err != nil {
			return fmt.Errorf("check pages for %q: %w", def.Name, err)
		}
		if hasPages {
			continue
		}

		pages := make([]domain.TemplatePage, 0, len(def.Pages))
		for _, p := range def.Pages {
			pages = append(pages, domain.TemplatePage{
				ID:                  uuid.NewString(),
				TemplateID:          tpl.ID,
				PageNumber:          p.PageNumber,
				ProfessionTitle:     p.ProfessionTitle,
				TextTemplate:        p.TextTemplate,
				ImagePromptTemplate: p.ImagePromptTemplate,
			})
		}
		if err := repo.CreatePages(ctx, pages); err != nil {
			return fmt.Errorf("seed pages for %q: %w", def.Name, err)
		}
		logger.Info().Str("template", def.Name).Int("pages", len(pages)).Msg("seeded template pages")
	}
	return nil
}
