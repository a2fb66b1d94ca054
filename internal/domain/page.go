package domain

import "time"

// PageStatus enumerates per-page generation states.
type PageStatus string

const (
	PageStatusPending    PageStatus = "pending"
	PageStatusGenerating PageStatus = "generating"
	PageStatusCompleted  PageStatus = "completed"
	PageStatusFailed     PageStatus = "failed"
)

// Page is one page of a job's book, tracked independently through
// pending -> generating -> completed|failed. Failed pages may re-enter
// generating on resume or regenerate; completed is the only terminal state.
type Page struct {
	ID                 string
	JobID              string
	PageNumber         int
	ProfessionTitle    string
	Text               string
	ImagePrompt        string
	Status             PageStatus
	ImageURL           string
	ErrorMessage       string
	GenerationAttempts int
	CompletedAt        *time.Time
}

// Incomplete reports whether the page still needs a generation attempt.
func (p *Page) Incomplete() bool {
	return p.Status != PageStatusCompleted
}
