// Package genai is a lightweight facade over the Gemini generateContent API.
// Responses are treated as untrusted: every payload is decoded defensively and
// anything unusable surfaces as domain.ErrGenerationFailed.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"storybook/internal/domain"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client calls the Gemini text and image generation endpoints.
type Client struct {
	apiKey     string
	baseURL    string
	textModel  string
	imageModel string
	client     *http.Client
	logger     zerolog.Logger
}

const (
	defaultBaseURL    = "https://generativelanguage.googleapis.com/v1beta"
	defaultTextModel  = "gemini-1.5-pro"
	defaultImageModel = "gemini-3-pro-image-preview"
	defaultTimeout    = 120 * time.Second

	// Guardrails wrapped around every image prompt.
	noTextInstruction = "CRITICAL: NO TEXT in this image. No words, letters, numbers, speech bubbles, captions, signs, or labels. Pure illustration only."
	styleModifiers    = "Watercolor illustration style, soft edges, gentle colors, children's book art, high quality"
)

// fallbackTextModels are tried in order when the configured model fails.
var fallbackTextModels = []string{"gemini-1.5-pro", "gemini-1.5-flash", "gemini-2.0-flash-exp"}

// NewClient validates the options and returns a configured client.
func NewClient(opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	textModel := strings.TrimSpace(opts.TextModel)
	if textModel == "" {
		textModel = defaultTextModel
	}
	imageModel := strings.TrimSpace(opts.ImageModel)
	if imageModel == "" {
		imageModel = defaultImageModel
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		apiKey:     opts.APIKey,
		baseURL:    baseURL,
		textModel:  textModel,
		imageModel: imageModel,
		client:     client,
		logger:     opts.Logger,
	}, nil
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature float64            `json:"temperature,omitempty"`
	TopK        int                `json:"topK,omitempty"`
	TopP        float64            `json:"topP,omitempty"`
	ImageConfig *geminiImageConfig `json:"imageConfig,omitempty"`
}

type geminiImageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	ImageSize   string `json:"imageSize,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiModelList struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// GenerateText sends the prompt to the text model and returns the raw
// candidate text. The configured model is tried first, then the fallback
// models, so a retired model name does not strand the whole pipeline.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: prompt}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature: 0.7,
			TopK:        40,
			TopP:        0.95,
		},
	}

	var lastErr error
	for _, model := range c.textModelCandidates() {
		text, err := c.generateTextWith(ctx, model, payload)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		c.logger.Warn().Err(err).Str("model", model).Msg("text generation failed, trying next model")
	}
	return "", fmt.Errorf("%w: all text models failed: %v", domain.ErrGenerationFailed, lastErr)
}

func (c *Client) textModelCandidates() []string {
	models := []string{c.textModel}
	for _, m := range fallbackTextModels {
		if m != c.textModel {
			models = append(models, m)
		}
	}
	return models
}

func (c *Client) generateTextWith(ctx context.Context, model string, payload geminiRequest) (string, error) {
	resp, err := c.post(ctx, model, payload)
	if err != nil {
		return "", err
	}
	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("%w: empty candidate text", domain.ErrGenerationFailed)
	}
	return text, nil
}

// GenerateImage generates one illustration for the prompt and returns it as a
// data URL. When refImageB64 is set, the reference photo is sent as inline
// data so the generated child matches it.
func (c *Client) GenerateImage(ctx context.Context, prompt, refImageB64 string) (string, error) {
	enhanced := fmt.Sprintf("%s. %s. %s. %s", noTextInstruction, prompt, styleModifiers, noTextInstruction)

	var parts []geminiPart
	if refImageB64 != "" {
		parts = append(parts, geminiPart{
			InlineData: &geminiInlineData{MimeType: "image/jpeg", Data: refImageB64},
		})
		enhanced += ". Make the child look exactly like the person in the reference photo - same facial features, skin tone, and hair."
	}
	parts = append(parts, geminiPart{Text: enhanced})

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: parts}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature: 0.4,
			TopK:        32,
			TopP:        1,
			ImageConfig: &geminiImageConfig{AspectRatio: "1:1", ImageSize: "2K"},
		},
	}

	resp, err := c.post(ctx, c.imageModel, payload)
	if err != nil {
		return "", err
	}
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				return "data:image/png;base64," + part.InlineData.Data, nil
			}
		}
	}
	return "", fmt.Errorf("%w: no image in response", domain.ErrGenerationFailed)
}

// ListModels returns the model names available to the API key.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	endpoint := fmt.Sprintf("%s/models?key=%s", c.baseURL, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: list models status %d", domain.ErrGenerationFailed, resp.StatusCode)
	}
	var out geminiModelList
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode model list: %v", domain.ErrGenerationFailed, err)
	}
	var names []string
	for _, m := range out.Models {
		name := m.Name
		if idx := strings.LastIndex(name, "/"); idx >= 0 {
			name = name[idx+1:]
		}
		names = append(names, name)
	}
	return names, nil
}

func (c *Client) post(ctx context.Context, model string, payload geminiRequest) (*geminiResponse, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: model %s status %d", domain.ErrGenerationFailed, model, resp.StatusCode)
	}
	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrGenerationFailed, err)
	}
	return &out, nil
}

func extractText(resp *geminiResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			sb.WriteString(part.Text)
		}
		if sb.Len() > 0 {
			break
		}
	}
	return strings.TrimSpace(sb.String())
}
