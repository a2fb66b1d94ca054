package template

import (
	"fmt"
	"strings"
)

// Child identifies the subject of a personalized book.
type Child struct {
	Name   string
	Age    int
	Gender string
}

// PersonalizeText substitutes the child's name, age and pronoun forms into a
// page text template.
func PersonalizeText(tmpl string, c Child) string {
	p := pronounsFor(c.Gender)
	r := strings.NewReplacer(
		"{name}", c.Name,
		"{age}", fmt.Sprintf("%d", c.Age),
		"{he_she}", p.heShe,
		"{he_she_cap}", p.heSheCap,
		"{He_She}", p.heSheCap,
		"{his_her}", p.hisHer,
		"{his_her_cap}", p.hisHerCap,
		"{His_Her}", p.hisHerCap,
		"{him_her}", p.himHer,
	)
	return r.Replace(tmpl)
}

// PersonalizeImagePrompt substitutes the child's details into an image prompt
// template. When photoDescription is non-empty it is appended so the image
// model keeps the character consistent with the reference photo.
func PersonalizeImagePrompt(tmpl string, c Child, photoDescription string) string {
	r := strings.NewReplacer(
		"{name}", c.Name,
		"{age}", fmt.Sprintf("%d", c.Age),
		"{gender}", strings.ToLower(c.Gender),
	)
	out := r.Replace(tmpl)
	if photoDescription != "" {
		out = fmt.Sprintf("%s. The child should look like: %s", out, photoDescription)
	}
	return out
}
