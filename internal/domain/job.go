package domain

import "time"

// JobStatus enumerates book generation job lifecycle states.
type JobStatus string

const (
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusPaused     JobStatus = "paused"
)

// Job is one end-to-end book generation attempt. A job owns its pages;
// deleting the job cascades to them.
type Job struct {
	ID             string
	TemplateID     string
	TemplateName   string
	ChildName      string
	ChildAge       int
	ChildGender    string
	Status         JobStatus
	TotalPages     int
	PagesCompleted int
	CurrentPage    int
	ErrorMessage   string
	ErrorPage      *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CompletedAt    *time.Time
}

// Resumable reports whether the generation driver may pick the job back up.
// Failed and paused jobs stay resumable; only completed is final.
func (j *Job) Resumable() bool {
	switch j.Status {
	case JobStatusInProgress, JobStatusFailed, JobStatusPaused:
		return true
	}
	return false
}
