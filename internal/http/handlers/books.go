package handlers

import (
	"encoding/json"
	"net/http"

	"storybook/internal/story"
	"storybook/internal/template"
	"storybook/internal/tracker"
)

type templateBookRequest struct {
	TemplateID  string `json:"template_id"`
	ChildName   string `json:"child_name"`
	ChildAge    int    `json:"child_age"`
	ChildGender string `json:"child_gender"`
	PhotoB64    string `json:"photo_b64,omitempty"`
	PhotoDesc   string `json:"photo_description,omitempty"`
}

// CreateTemplateBook personalizes a pre-written template for the child,
// creates the job with all its pending pages in one transaction, and hands
// the run to the background queue. Responds 202 immediately.
func (a *App) CreateTemplateBook(w http.ResponseWriter, r *http.Request) {
	var req templateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.TemplateID == "" || req.ChildName == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "template_id and child_name are required")
		return
	}

	tpl, err := a.Templates.GetByID(r.Context(), req.TemplateID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	tplPages, err := a.Templates.ListPages(r.Context(), tpl.ID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	if len(tplPages) == 0 {
		a.error(w, http.StatusConflict, "empty_template", "template has no pages")
		return
	}

	child := template.Child{Name: req.ChildName, Age: req.ChildAge, Gender: req.ChildGender}
	seeds := make([]tracker.PageSeed, len(tplPages))
	for i, p := range tplPages {
		seeds[i] = tracker.PageSeed{
			PageNumber:      p.PageNumber,
			ProfessionTitle: p.ProfessionTitle,
			Text:            template.PersonalizeText(p.TextTemplate, child),
			ImagePrompt:     template.PersonalizeImagePrompt(p.ImagePromptTemplate, child, req.PhotoDesc),
		}
	}

	jobID, err := a.Tracker.CreateJobWithPages(r.Context(), tracker.CreateJobParams{
		TemplateID:   tpl.ID,
		TemplateName: tpl.Name,
		ChildName:    req.ChildName,
		ChildAge:     req.ChildAge,
		ChildGender:  req.ChildGender,
		TotalPages:   len(tplPages),
	}, seeds)
	if err != nil {
		a.domainError(w, err)
		return
	}

	if err := a.Queue.Submit(jobID, req.PhotoB64); err != nil {
		// The job row exists and is resumable; report the queue state.
		a.Logger.Warn().Err(err).Str("job_id", jobID).Msg("run not enqueued at creation")
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusAccepted, map[string]string{"job_id": jobID})
}

type freeformBookRequest struct {
	ChildName    string `json:"child_name"`
	ChildAge     int    `json:"child_age"`
	ChildGender  string `json:"child_gender"`
	PhysicalDesc string `json:"physical_description"`
	Problem      string `json:"problem"`
	Language     string `json:"language,omitempty"`
	PageCount    int    `json:"page_count,omitempty"`
	PhotoB64     string `json:"photo_b64,omitempty"`
}

// CreateFreeformBook generates a bespoke story around the child's problem,
// then creates and enqueues the job like the template flow.
func (a *App) CreateFreeformBook(w http.ResponseWriter, r *http.Request) {
	var req freeformBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.ChildName == "" || req.Problem == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "child_name and problem are required")
		return
	}
	pageCount := req.PageCount
	if pageCount <= 0 {
		pageCount = story.DefaultPageCount
	}

	storyReq := story.Request{
		ChildName:    req.ChildName,
		ChildAge:     req.ChildAge,
		ChildGender:  req.ChildGender,
		PhysicalDesc: req.PhysicalDesc,
		Problem:      req.Problem,
		Language:     req.Language,
		PageCount:    pageCount,
	}
	raw, err := a.Stories.GenerateText(r.Context(), story.Prompt(storyReq))
	if err != nil {
		a.domainError(w, err)
		return
	}
	anchor := story.VisualAnchor(req.ChildName, req.ChildAge, req.ChildGender, req.PhysicalDesc)
	parsed, err := story.Parse(raw, anchor, pageCount)
	if err != nil {
		a.domainError(w, err)
		return
	}

	seeds := make([]tracker.PageSeed, len(parsed.Pages))
	for i, p := range parsed.Pages {
		seeds[i] = tracker.PageSeed{PageNumber: p.PageNumber, Text: p.Text, ImagePrompt: p.ImagePrompt}
	}

	jobID, err := a.Tracker.CreateJobWithPages(r.Context(), tracker.CreateJobParams{
		ChildName:   req.ChildName,
		ChildAge:    req.ChildAge,
		ChildGender: req.ChildGender,
		TotalPages:  len(seeds),
	}, seeds)
	if err != nil {
		a.domainError(w, err)
		return
	}

	if err := a.Queue.Submit(jobID, req.PhotoB64); err != nil {
		a.Logger.Warn().Err(err).Str("job_id", jobID).Msg("run not enqueued at creation")
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusAccepted, map[string]string{"job_id": jobID})
}
