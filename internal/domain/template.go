package domain

import "time"

// Template is a pre-written fill-in-the-blank book definition.
type Template struct {
	ID          string
	Name        string
	Description string
	TotalPages  int
	CreatedAt   time.Time
}

// TemplatePage holds the raw templated content for one page of a template.
// Placeholders like {name}, {age} and the pronoun forms are substituted at
// book creation time.
type TemplatePage struct {
	ID                  string
	TemplateID          string
	PageNumber          int
	ProfessionTitle     string
	TextTemplate        string
	ImagePromptTemplate string
}
