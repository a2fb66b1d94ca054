package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type templateView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TotalPages  int       `json:"total_pages"`
	CreatedAt   time.Time `json:"created_at"`
}

type templatePageView struct {
	PageNumber          int    `json:"page_number"`
	ProfessionTitle     string `json:"profession_title"`
	TextTemplate        string `json:"text_template"`
	ImagePromptTemplate string `json:"image_prompt_template"`
}

func (a *App) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := a.Templates.List(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	out := make([]templateView, len(templates))
	for i, t := range templates {
		out[i] = templateView{ID: t.ID, Name: t.Name, Description: t.Description, TotalPages: t.TotalPages, CreatedAt: t.CreatedAt}
	}
	a.json(w, http.StatusOK, map[string]any{"templates": out})
}

func (a *App) ListTemplatePages(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "id")
	if _, err := a.Templates.GetByID(r.Context(), templateID); err != nil {
		a.domainError(w, err)
		return
	}
	pages, err := a.Templates.ListPages(r.Context(), templateID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	out := make([]templatePageView, len(pages))
	for i, p := range pages {
		out[i] = templatePageView{
			PageNumber:          p.PageNumber,
			ProfessionTitle:     p.ProfessionTitle,
			TextTemplate:        p.TextTemplate,
			ImagePromptTemplate: p.ImagePromptTemplate,
		}
	}
	a.json(w, http.StatusOK, map[string]any{"pages": out})
}
