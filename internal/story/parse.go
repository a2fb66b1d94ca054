package story

import (
	"encoding/json"
	"fmt"
	"strings"

	"storybook/internal/domain"
)

// Story is the parsed and validated structured story payload.
type Story struct {
	VisualAnchor string `json:"visual_anchor"`
	Pages        []Page `json:"pages"`
}

// Page is one generated story page.
type Page struct {
	PageNumber  int    `json:"page_number"`
	Text        string `json:"text"`
	ImagePrompt string `json:"image_prompt"`
}

// Parse decodes raw model output into a Story. The model frequently wraps the
// JSON in a fenced code block or surrounds it with prose, so the JSON fragment
// is isolated first. The visual anchor is prepended to any image prompt that
// is missing it, and the page list is validated for contiguity.
func Parse(raw, fallbackAnchor string, wantPages int) (*Story, error) {
	fragment := extractJSONFragment(raw)
	if fragment == "" {
		return nil, fmt.Errorf("%w: empty story payload", domain.ErrGenerationFailed)
	}

	var s Story
	if err := json.Unmarshal([]byte(fragment), &s); err != nil {
		return nil, fmt.Errorf("%w: parse story JSON: %v", domain.ErrGenerationFailed, err)
	}

	if s.VisualAnchor == "" {
		s.VisualAnchor = fallbackAnchor
	}
	if len(s.Pages) == 0 {
		return nil, fmt.Errorf("%w: story has no pages", domain.ErrGenerationFailed)
	}
	if wantPages > 0 && len(s.Pages) != wantPages {
		return nil, fmt.Errorf("%w: story has %d pages, want %d", domain.ErrGenerationFailed, len(s.Pages), wantPages)
	}

	for i := range s.Pages {
		p := &s.Pages[i]
		if p.PageNumber != i+1 {
			return nil, fmt.Errorf("%w: page numbers not contiguous (index %d has number %d)", domain.ErrGenerationFailed, i, p.PageNumber)
		}
		if strings.TrimSpace(p.Text) == "" {
			return nil, fmt.Errorf("%w: page %d has empty text", domain.ErrGenerationFailed, p.PageNumber)
		}
		if s.VisualAnchor != "" && !strings.HasPrefix(p.ImagePrompt, s.VisualAnchor) {
			p.ImagePrompt = s.VisualAnchor + ", " + p.ImagePrompt
		}
	}
	return &s, nil
}

// extractJSONFragment strips markdown code fences and isolates the outermost
// JSON object or array in the text.
func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
