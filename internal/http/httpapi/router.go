// Package httpapi wires the handlers into the chi router.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"storybook/internal/http/handlers"
	"storybook/internal/middleware"
)

// Config carries the router-level knobs.
type Config struct {
	AllowedOrigins  []string
	RateLimitPerMin int
}

// NewRouter builds the full route table.
func NewRouter(app *handlers.App, logger zerolog.Logger, cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.AllowedOrigins),
	)
	if cfg.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
	}

	r.Get("/v1/healthz", app.Health)

	r.Route("/templates", func(r chi.Router) {
		r.Get("/", app.ListTemplates)
		r.Get("/{id}/pages", app.ListTemplatePages)
	})

	r.Route("/books", func(r chi.Router) {
		r.Post("/template", app.CreateTemplateBook)
		r.Post("/freeform", app.CreateFreeformBook)
	})

	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", app.ListJobs)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.GetJob)
			r.Get("/summary", app.GetJobSummary)
			r.Get("/pages", app.GetJobPages)
			r.Post("/resume", app.ResumeJob)
			r.Delete("/", app.DeleteJob)
			r.Get("/book.pdf", app.DownloadBookPDF)
			r.Patch("/pages/{n}", app.UpdatePage)
			r.Post("/pages/{n}/regenerate", app.RegeneratePage)
		})
	})

	return r
}
