package template

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"storybook/internal/domain"
)

type memTemplates struct {
	templates map[string]*domain.Template
	pages     map[string][]domain.TemplatePage
	creates   int
}

func newMemTemplates() *memTemplates {
	return &memTemplates{
		templates: map[string]*domain.Template{},
		pages:     map[string][]domain.TemplatePage{},
	}
}

func (m *memTemplates) Create(_ context.Context, tpl *domain.Template) error {
	cp := *tpl
	m.templates[tpl.ID] = &cp
	m.creates++
	return nil
}

func (m *memTemplates) CreatePages(_ context.Context, pages []domain.TemplatePage) error {
	for _, p := range pages {
		m.pages[p.TemplateID] = append(m.pages[p.TemplateID], p)
	}
	return nil
}

func (m *memTemplates) List(_ context.Context) ([]domain.Template, error) {
	out := make([]domain.Template, 0, len(m.templates))
	for _, t := range m.templates {
		out = append(out, *t)
	}
	return out, nil
}

func (m *memTemplates) GetByID(_ context.Context, id string) (*domain.Template, error) {
	t, ok := m.templates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *memTemplates) FindByName(_ context.Context, name string) (*domain.Template, error) {
	for _, t := range m.templates {
		if t.Name == name {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memTemplates) ListPages(_ context.Context, id string) ([]domain.TemplatePage, error) {
	return m.pages[id], nil
}

func (m *memTemplates) HasPages(_ context.Context, id string) (bool, error) {
	return len(m.pages[id]) > 0, nil
}

func TestSeedDefaultsCreatesAllTemplates(t *testing.T) {
	repo := newMemTemplates()

	if err := SeedDefaults(context.Background(), repo, zerolog.Nop()); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}

	defs := Defaults()
	if len(repo.templates) != len(defs) {
		t.Fatalf("got %d templates, want %d", len(repo.templates), len(defs))
	}
	for _, def := range defs {
		tpl, err := repo.FindByName(context.Background(), def.Name)
		if err != nil {
			t.Fatalf("template %q not seeded", def.Name)
		}
		if tpl.TotalPages != len(def.Pages) {
			t.Errorf("%q: total_pages = %d, want %d", def.Name, tpl.TotalPages, len(def.Pages))
		}
		if got := len(repo.pages[tpl.ID]); got != len(def.Pages) {
			t.Errorf("%q: %d pages seeded, want %d", def.Name, got, len(def.Pages))
		}
	}
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	repo := newMemTemplates()
	ctx := context.Background()

	if err := SeedDefaults(ctx, repo, zerolog.Nop()); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	creates := repo.creates
	pageCounts := map[string]int{}
	for id, ps := range repo.pages {
		pageCounts[id] = len(ps)
	}

	if err := SeedDefaults(ctx, repo, zerolog.Nop()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if repo.creates != creates {
		t.Errorf("second seed created %d new templates", repo.creates-creates)
	}
	for id, ps := range repo.pages {
		if len(ps) != pageCounts[id] {
			t.Errorf("second seed duplicated pages for %s", id)
		}
	}
}
