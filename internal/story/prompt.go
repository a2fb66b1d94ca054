// Package story builds freeform story prompts and parses the structured
// story payload returned by the text model.
package story

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Request carries the parent-supplied inputs for a freeform story.
type Request struct {
	ChildName    string
	ChildAge     int
	ChildGender  string
	PhysicalDesc string
	Problem      string
	Language     string
	PageCount    int
}

// DefaultPageCount is the page count used when the request does not set one.
const DefaultPageCount = 10

// supportedLanguages are the story languages the prompts have been tuned for.
var supportedLanguages = []language.Tag{
	language.English, // first entry is the fallback
	language.Hindi,
	language.Spanish,
	language.French,
	language.Indonesian,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

var languageNames = map[language.Tag]string{
	language.English:    "English",
	language.Hindi:      "Hindi",
	language.Spanish:    "Spanish",
	language.French:     "French",
	language.Indonesian: "Indonesian",
}

// ResolveLanguage maps a requested language tag ("en", "hi-IN", "Spanish"…)
// to the display name of the closest supported story language. Unknown or
// empty input falls back to English.
func ResolveLanguage(requested string) string {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return languageNames[language.English]
	}
	// Accept plain display names as-is.
	for _, name := range languageNames {
		if strings.EqualFold(requested, name) {
			return name
		}
	}
	tag, err := language.Parse(requested)
	if err != nil {
		return languageNames[language.English]
	}
	_, idx, _ := languageMatcher.Match(tag)
	return languageNames[supportedLanguages[idx]]
}

// VisualAnchor builds the character description repeated in every image
// prompt so the child looks the same on every page.
func VisualAnchor(childName string, age int, gender, physicalDesc string) string {
	return fmt.Sprintf("A cute %d year old %s, %s", age, strings.ToLower(gender), strings.ToLower(physicalDesc))
}

// ageRules returns language guidance appropriate to the child's age band.
func ageRules(age int) string {
	switch {
	case age <= 3:
		return `RULES FOR 2-3 YEAR OLDS:
- Maximum 1 sentence per page (5-8 words)
- Use only words a toddler knows; repeat key words for familiarity
- Simple sounds: "Woof! Woof!", "Yum yum!", "Splash!"
- One main action per page; happy ending with cuddles and smiles`
	case age <= 6:
		return `RULES FOR 4-6 YEAR OLDS:
- Maximum 2 short sentences per page, simple and rhythmic
- A clear arc: Problem -> Struggle -> Solution
- Gentle humor and repetition work well; no scary imagery`
	default:
		return `RULES FOR 7+ YEAR OLDS:
- Up to 2 sentences per page with richer vocabulary
- A clear arc: Problem -> Struggle -> Solution with a lesson earned, not given
- The child solves the problem through their own effort`
	}
}

// Prompt assembles the full text-generation prompt: age-banded story rules,
// visual consistency rules and the exact JSON output contract.
func Prompt(req Request) string {
	pageCount := req.PageCount
	if pageCount <= 0 {
		pageCount = DefaultPageCount
	}
	anchor := VisualAnchor(req.ChildName, req.ChildAge, req.ChildGender, req.PhysicalDesc)
	lang := ResolveLanguage(req.Language)

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert children's book author. Write a %d-page story for a %d year old child named %s.\n",
		pageCount, req.ChildAge, req.ChildName)
	fmt.Fprintf(&sb, "Write in %s language.\n\n", lang)
	fmt.Fprintf(&sb, "THEME/PROBLEM: %s\n\n", req.Problem)
	sb.WriteString(ageRules(req.ChildAge))
	sb.WriteString("\n\nVISUAL CONSISTENCY (CRITICAL):\n")
	fmt.Fprintf(&sb, "- The visual anchor is: %q\n", anchor)
	sb.WriteString("- EVERY image_prompt MUST start with the visual anchor so the character looks identical on every page.\n")
	sb.WriteString("- Never change the outfit, hairstyle or features between pages.\n\n")
	sb.WriteString("CRITICAL: You must output ONLY a valid JSON object with this exact structure:\n")
	fmt.Fprintf(&sb, `{
    "visual_anchor": %q,
    "pages": [
        {
            "page_number": 1,
            "text": "Story text for page 1 (max 2 sentences)",
            "image_prompt": "[Visual Anchor] detailed scene description for page 1"
        }
    ]
}`, anchor)
	fmt.Fprintf(&sb, "\n\nCreate exactly %d pages. Output ONLY the JSON, no additional text before or after.", pageCount)
	return sb.String()
}
