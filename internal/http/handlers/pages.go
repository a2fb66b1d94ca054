package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"storybook/internal/domain"
)

type updatePageRequest struct {
	Text        *string `json:"text,omitempty"`
	ImagePrompt *string `json:"image_prompt,omitempty"`
}

// UpdatePage edits the text and/or image prompt of a page before (re)generation.
// Fields left out of the payload keep their stored values.
func (a *App) UpdatePage(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")
	pageNumber, err := pageParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "page number must be a positive integer")
		return
	}

	var req updatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Text == nil && req.ImagePrompt == nil {
		a.error(w, http.StatusBadRequest, "bad_request", "nothing to update")
		return
	}

	page, err := a.Tracker.GetPage(r.Context(), jobID, pageNumber)
	if err != nil {
		a.domainError(w, err)
		return
	}
	text := page.Text
	if req.Text != nil {
		text = *req.Text
	}
	prompt := page.ImagePrompt
	if req.ImagePrompt != nil {
		prompt = *req.ImagePrompt
	}

	if err := a.Tracker.UpdatePageContent(r.Context(), jobID, pageNumber, text, prompt); err != nil {
		a.domainError(w, err)
		return
	}
	updated, err := a.Tracker.GetPage(r.Context(), jobID, pageNumber)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toPageViews([]domain.Page{*updated})[0])
}

type regenerateRequest struct {
	PhotoB64 string `json:"photo_b64,omitempty"`
}

// RegeneratePage enqueues a single-page regeneration, typically after an edit
// or for a failed page.
func (a *App) RegeneratePage(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")
	pageNumber, err := pageParam(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "page number must be a positive integer")
		return
	}
	if _, err := a.Tracker.GetPage(r.Context(), jobID, pageNumber); err != nil {
		a.domainError(w, err)
		return
	}

	var req regenerateRequest
	_ = jsonDecodeLenient(r, &req)

	if err := a.Queue.SubmitPage(jobID, pageNumber, req.PhotoB64); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusAccepted, map[string]any{"job_id": jobID, "page_number": pageNumber})
}

func pageParam(r *http.Request) (int, error) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, errors.New("page number out of range")
	}
	return n, nil
}

// jsonDecodeLenient decodes an optional body; an empty body is not an error.
func jsonDecodeLenient(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
