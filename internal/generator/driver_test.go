package generator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"storybook/internal/domain"
	"storybook/internal/tracker"
)

// memStore is an in-memory JobRepository + PageRepository.
type memStore struct {
	mu    sync.Mutex
	jobs  map[string]*domain.Job
	pages map[string][]*domain.Page

	failPageWrites bool
}

func newMemStore() *memStore {
	return &memStore{jobs: map[string]*domain.Job{}, pages: map[string][]*domain.Page{}}
}

func (m *memStore) Create(_ context.Context, job *domain.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *job
	m.jobs[job.ID] = &cp
	return nil
}

func (m *memStore) CreateWithPages(ctx context.Context, job *domain.Job, pages []domain.Page) error {
	if err := m.Create(ctx, job); err != nil {
		return err
	}
	return m.CreateBatch(ctx, pages)
}

func (m *memStore) UpdateProgress(_ context.Context, jobID string, currentPage, pagesCompleted int, status domain.JobStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return domain.ErrNotFound
	}
	job.CurrentPage = currentPage
	job.PagesCompleted = pagesCompleted
	job.Status = status
	if status == domain.JobStatusCompleted && job.CompletedAt == nil {
		now := time.Now()
		job.CompletedAt = &now
	}
	return nil
}

func (m *memStore) MarkFailed(_ context.Context, jobID, errorMessage string, errorPage *int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return domain.ErrNotFound
	}
	job.Status = domain.JobStatusFailed
	job.ErrorMessage = errorMessage
	job.ErrorPage = errorPage
	return nil
}

func (m *memStore) GetByID(_ context.Context, jobID string) (*domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *job
	return &cp, nil
}

func (m *memStore) List(_ context.Context, limit int) ([]domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		out = append(out, *j)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) Delete(_ context.Context, jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[jobID]; !ok {
		return domain.ErrNotFound
	}
	delete(m.jobs, jobID)
	delete(m.pages, jobID)
	return nil
}

func (m *memStore) MarkStalePaused(_ context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, j := range m.jobs {
		if j.Status == domain.JobStatusInProgress && j.UpdatedAt.Before(cutoff) {
			j.Status = domain.JobStatusPaused
			n++
		}
	}
	return n, nil
}

func (m *memStore) CreateBatch(_ context.Context, pages []domain.Page) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range pages {
		cp := pages[i]
		m.pages[cp.JobID] = append(m.pages[cp.JobID], &cp)
	}
	return nil
}

func (m *memStore) UpdateStatus(_ context.Context, jobID string, pageNumber int, status domain.PageStatus, imageURL, errorMessage *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPageWrites {
		return fmt.Errorf("update page: %w", domain.ErrStoreUnavailable)
	}
	page := m.find(jobID, pageNumber)
	if page == nil {
		return domain.ErrNotFound
	}
	page.Status = status
	page.GenerationAttempts++
	if imageURL != nil {
		page.ImageURL = *imageURL
	}
	if errorMessage != nil {
		page.ErrorMessage = *errorMessage
	}
	if status == domain.PageStatusCompleted {
		now := time.Now()
		page.CompletedAt = &now
	}
	return nil
}

func (m *memStore) UpdateContent(_ context.Context, jobID string, pageNumber int, text, imagePrompt string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	page := m.find(jobID, pageNumber)
	if page == nil {
		return domain.ErrNotFound
	}
	page.Text = text
	page.ImagePrompt = imagePrompt
	return nil
}

func (m *memStore) GetByNumber(_ context.Context, jobID string, pageNumber int) (*domain.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	page := m.find(jobID, pageNumber)
	if page == nil {
		return nil, domain.ErrNotFound
	}
	cp := *page
	return &cp, nil
}

func (m *memStore) ListByJob(_ context.Context, jobID string) ([]domain.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Page, 0, len(m.pages[jobID]))
	for _, p := range m.pages[jobID] {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PageNumber < out[j].PageNumber })
	return out, nil
}

func (m *memStore) ListIncomplete(_ context.Context, jobID string) ([]domain.Page, error) {
	all, err := m.ListByJob(context.Background(), jobID)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, p := range all {
		if p.Status != domain.PageStatusCompleted {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) find(jobID string, pageNumber int) *domain.Page {
	for _, p := range m.pages[jobID] {
		if p.PageNumber == pageNumber {
			return p
		}
	}
	return nil
}

// fakeImages counts calls and fails pages listed in failPages, or the first
// failFirst calls overall.
type fakeImages struct {
	mu        sync.Mutex
	calls     int
	failPages map[string]bool
	failFirst int
}

func (f *fakeImages) GenerateImage(_ context.Context, prompt, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failFirst > 0 {
		f.failFirst--
		return "", fmt.Errorf("%w: model overloaded", domain.ErrGenerationFailed)
	}
	if f.failPages[prompt] {
		return "", fmt.Errorf("%w: blocked prompt", domain.ErrGenerationFailed)
	}
	return "data:image/png;base64,aW1n", nil
}

func newTestRunner(t *testing.T, store *memStore, images ImageGenerator) (*Runner, *tracker.Tracker) {
	t.Helper()
	tr := tracker.New(store, store, zerolog.Nop())
	return New(tr, images, zerolog.Nop(), WithRetryDelay(0)), tr
}

func seedJob(t *testing.T, tr *tracker.Tracker, totalPages int) string {
	t.Helper()
	seeds := make([]tracker.PageSeed, totalPages)
	for i := range seeds {
		seeds[i] = tracker.PageSeed{PageNumber: i + 1, Text: fmt.Sprintf("text %d", i+1), ImagePrompt: fmt.Sprintf("prompt %d", i+1)}
	}
	jobID, err := tr.CreateJobWithPages(context.Background(), tracker.CreateJobParams{
		ChildName: "Mia", ChildAge: 5, ChildGender: "girl", TotalPages: totalPages,
	}, seeds)
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return jobID
}

func TestProcessJobCompletesAllPages(t *testing.T) {
	store := newMemStore()
	images := &fakeImages{}
	runner, tr := newTestRunner(t, store, images)
	jobID := seedJob(t, tr, 3)

	runner.processJob(context.Background(), runRequest{jobID: jobID})

	job, err := tr.GetJob(context.Background(), jobID)
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if job.Status != domain.JobStatusCompleted {
		t.Errorf("job status = %s, want completed", job.Status)
	}
	if job.PagesCompleted != 3 || job.CurrentPage != 3 {
		t.Errorf("progress = %d/%d current %d", job.PagesCompleted, job.TotalPages, job.CurrentPage)
	}
	if job.CompletedAt == nil {
		t.Error("completed_at not stamped")
	}
	pages, _ := tr.GetJobPages(context.Background(), jobID)
	for _, p := range pages {
		if p.Status != domain.PageStatusCompleted || p.ImageURL == "" {
			t.Errorf("page %d: status %s url %q", p.PageNumber, p.Status, p.ImageURL)
		}
	}
}

func TestProcessJobFailedPageDoesNotFailJob(t *testing.T) {
	store := newMemStore()
	images := &fakeImages{failPages: map[string]bool{"prompt 2": true}}
	runner, tr := newTestRunner(t, store, images)
	jobID := seedJob(t, tr, 3)

	runner.processJob(context.Background(), runRequest{jobID: jobID})

	job, _ := tr.GetJob(context.Background(), jobID)
	if job.Status != domain.JobStatusInProgress {
		t.Errorf("job status = %s, want in_progress", job.Status)
	}
	if job.PagesCompleted != 2 {
		t.Errorf("pages completed = %d, want 2", job.PagesCompleted)
	}
	page, _ := tr.GetPage(context.Background(), jobID, 2)
	if page.Status != domain.PageStatusFailed {
		t.Errorf("page 2 status = %s, want failed", page.Status)
	}
	if page.ErrorMessage == "" {
		t.Error("page 2 error message empty")
	}
	// Pages 1 and 3 still complete around the failure.
	for _, n := range []int{1, 3} {
		p, _ := tr.GetPage(context.Background(), jobID, n)
		if p.Status != domain.PageStatusCompleted {
			t.Errorf("page %d status = %s, want completed", n, p.Status)
		}
	}
}

func TestProcessJobRetriesBeforeFailing(t *testing.T) {
	store := newMemStore()
	images := &fakeImages{failFirst: 1}
	runner, tr := newTestRunner(t, store, images)
	jobID := seedJob(t, tr, 1)

	runner.processJob(context.Background(), runRequest{jobID: jobID})

	if images.calls != 2 {
		t.Errorf("image calls = %d, want 2 (one retry)", images.calls)
	}
	job, _ := tr.GetJob(context.Background(), jobID)
	if job.Status != domain.JobStatusCompleted {
		t.Errorf("job status = %s, want completed after retry", job.Status)
	}
}

func TestProcessJobResumeSkipsCompletedPages(t *testing.T) {
	store := newMemStore()
	images := &fakeImages{}
	runner, tr := newTestRunner(t, store, images)
	jobID := seedJob(t, tr, 3)

	// First page already done from an earlier run.
	if err := tr.UpdatePageStatus(context.Background(), jobID, 1, domain.PageStatusCompleted, "data:image/png;base64,old", ""); err != nil {
		t.Fatalf("precomplete: %v", err)
	}

	runner.processJob(context.Background(), runRequest{jobID: jobID})

	if images.calls != 2 {
		t.Errorf("image calls = %d, want 2 (completed page skipped)", images.calls)
	}
	job, _ := tr.GetJob(context.Background(), jobID)
	if job.Status != domain.JobStatusCompleted {
		t.Errorf("job status = %s, want completed", job.Status)
	}
}

func TestProcessJobFinishesFullyGeneratedJob(t *testing.T) {
	store := newMemStore()
	images := &fakeImages{}
	runner, tr := newTestRunner(t, store, images)
	jobID := seedJob(t, tr, 1)

	// A previous run wrote the page but died before touching the job row.
	if err := tr.UpdatePageStatus(context.Background(), jobID, 1, domain.PageStatusCompleted, "data:image/png;base64,old", ""); err != nil {
		t.Fatalf("precomplete: %v", err)
	}

	runner.processJob(context.Background(), runRequest{jobID: jobID})

	if images.calls != 0 {
		t.Errorf("image calls = %d, want 0", images.calls)
	}
	job, _ := tr.GetJob(context.Background(), jobID)
	if job.Status != domain.JobStatusCompleted {
		t.Errorf("job status = %s, want completed", job.Status)
	}
	if job.PagesCompleted != 1 || job.CurrentPage != 1 {
		t.Errorf("progress = %d current %d, want 1/1", job.PagesCompleted, job.CurrentPage)
	}
	if job.CompletedAt == nil {
		t.Error("completed_at not stamped")
	}
}

func TestProcessJobStoreFaultMarksJobFailed(t *testing.T) {
	store := newMemStore()
	images := &fakeImages{}
	runner, tr := newTestRunner(t, store, images)
	jobID := seedJob(t, tr, 2)

	store.failPageWrites = true
	runner.processJob(context.Background(), runRequest{jobID: jobID})

	job, _ := tr.GetJob(context.Background(), jobID)
	if job.Status != domain.JobStatusFailed {
		t.Errorf("job status = %s, want failed on store fault", job.Status)
	}
	if job.ErrorMessage == "" {
		t.Error("error message not recorded")
	}
	if job.ErrorPage == nil || *job.ErrorPage != 1 {
		t.Errorf("error page = %v, want 1", job.ErrorPage)
	}
}

func TestProcessPageRegenerateCompletesJob(t *testing.T) {
	store := newMemStore()
	failing := &fakeImages{failPages: map[string]bool{"prompt 2": true}}
	runner, tr := newTestRunner(t, store, failing)
	jobID := seedJob(t, tr, 2)

	runner.processJob(context.Background(), runRequest{jobID: jobID})
	job, _ := tr.GetJob(context.Background(), jobID)
	if job.Status != domain.JobStatusInProgress {
		t.Fatalf("setup: job status = %s, want in_progress", job.Status)
	}

	// The prompt no longer fails; regenerating just page 2 finishes the book.
	failing.mu.Lock()
	failing.failPages = nil
	failing.mu.Unlock()
	runner.processPage(context.Background(), runRequest{jobID: jobID, pageNumber: 2})

	job, _ = tr.GetJob(context.Background(), jobID)
	if job.Status != domain.JobStatusCompleted {
		t.Errorf("job status = %s, want completed after regeneration", job.Status)
	}
	if job.PagesCompleted != 2 {
		t.Errorf("pages completed = %d, want 2", job.PagesCompleted)
	}
}

func TestSubmitReportsBusyQueue(t *testing.T) {
	store := newMemStore()
	// Not started: nothing drains the queue.
	small := New(tracker.New(store, store, zerolog.Nop()), &fakeImages{}, zerolog.Nop(), WithQueueSize(1))

	if err := small.Submit("job-1", ""); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if err := small.Submit("job-2", ""); !errors.Is(err, domain.ErrRunnerBusy) {
		t.Errorf("second submit err = %v, want ErrRunnerBusy", err)
	}
}
