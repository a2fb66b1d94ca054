// Package handlers implements the HTTP endpoints of the storybook API.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"storybook/internal/domain"
	"storybook/internal/tracker"
)

// StoryGenerator produces raw story text from a prompt.
type StoryGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// RunQueue enqueues generation work for the background runner.
type RunQueue interface {
	Submit(jobID, refImageB64 string) error
	SubmitPage(jobID string, pageNumber int, refImageB64 string) error
}

// BookAssembler renders a job's pages into a PDF document.
type BookAssembler interface {
	Build(job *domain.Job, pages []domain.Page) ([]byte, error)
}

// App carries every dependency the handlers need.
type App struct {
	Tracker   *tracker.Tracker
	Templates domain.TemplateRepository
	Stories   StoryGenerator
	Queue     RunQueue
	Assembler BookAssembler
	Logger    zerolog.Logger
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, slug, message string) {
	a.json(w, code, map[string]any{"error": map[string]string{"code": slug, "message": message}})
}

// domainError maps domain sentinel errors onto HTTP responses. Unknown errors
// become 500 without leaking internals.
func (a *App) domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrInvalidInput):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		a.error(w, http.StatusServiceUnavailable, "store_unavailable", "storage temporarily unavailable")
	case errors.Is(err, domain.ErrGenerationFailed):
		a.error(w, http.StatusBadGateway, "generation_failed", "content generation failed")
	case errors.Is(err, domain.ErrRunnerBusy):
		a.error(w, http.StatusConflict, "busy", "a generation run is already queued, try again shortly")
	default:
		a.Logger.Error().Err(err).Msg("unhandled handler error")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

// jobView is the wire shape of a job.
type jobView struct {
	ID             string     `json:"id"`
	TemplateID     string     `json:"template_id,omitempty"`
	TemplateName   string     `json:"template_name,omitempty"`
	ChildName      string     `json:"child_name"`
	ChildAge       int        `json:"child_age"`
	ChildGender    string     `json:"child_gender"`
	Status         string     `json:"status"`
	TotalPages     int        `json:"total_pages"`
	PagesCompleted int        `json:"pages_completed"`
	CurrentPage    int        `json:"current_page"`
	ErrorMessage   string     `json:"error_message,omitempty"`
	ErrorPage      *int       `json:"error_page,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	Resumable      bool       `json:"resumable"`
}

func toJobView(j *domain.Job) jobView {
	return jobView{
		ID:             j.ID,
		TemplateID:     j.TemplateID,
		TemplateName:   j.TemplateName,
		ChildName:      j.ChildName,
		ChildAge:       j.ChildAge,
		ChildGender:    j.ChildGender,
		Status:         string(j.Status),
		TotalPages:     j.TotalPages,
		PagesCompleted: j.PagesCompleted,
		CurrentPage:    j.CurrentPage,
		ErrorMessage:   j.ErrorMessage,
		ErrorPage:      j.ErrorPage,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
		CompletedAt:    j.CompletedAt,
		Resumable:      j.Resumable(),
	}
}

// pageView is the wire shape of a page.
type pageView struct {
	PageNumber         int        `json:"page_number"`
	ProfessionTitle    string     `json:"profession_title,omitempty"`
	Text               string     `json:"text"`
	ImagePrompt        string     `json:"image_prompt"`
	Status             string     `json:"status"`
	ImageURL           string     `json:"image_url,omitempty"`
	ErrorMessage       string     `json:"error_message,omitempty"`
	GenerationAttempts int        `json:"generation_attempts"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

func toPageViews(pages []domain.Page) []pageView {
	out := make([]pageView, len(pages))
	for i, p := range pages {
		out[i] = pageView{
			PageNumber:         p.PageNumber,
			ProfessionTitle:    p.ProfessionTitle,
			Text:               p.Text,
			ImagePrompt:        p.ImagePrompt,
			Status:             string(p.Status),
			ImageURL:           p.ImageURL,
			ErrorMessage:       p.ErrorMessage,
			GenerationAttempts: p.GenerationAttempts,
			CompletedAt:        p.CompletedAt,
		}
	}
	return out
}
