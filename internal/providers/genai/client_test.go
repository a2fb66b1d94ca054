package genai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"storybook/internal/domain"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newTestClient(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	c, err := NewClient(Options{
		APIKey:     "test-key",
		HTTPClient: &http.Client{Transport: rt},
		Logger:     zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(Options{}); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestGenerateImageReturnsDataURL(t *testing.T) {
	var gotPath string
	var gotBody geminiRequest
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		return jsonResponse(200, `{
			"candidates": [{"content": {"parts": [{"inlineData": {"mimeType": "image/png", "data": "QUJD"}}]}}]
		}`), nil
	})

	url, err := client.GenerateImage(context.Background(), "a child as an astronaut", "")
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	if url != "data:image/png;base64,QUJD" {
		t.Errorf("url = %q", url)
	}
	if !strings.Contains(gotPath, defaultImageModel) {
		t.Errorf("path = %q, want image model", gotPath)
	}
	prompt := gotBody.Contents[0].Parts[len(gotBody.Contents[0].Parts)-1].Text
	if !strings.Contains(prompt, "NO TEXT") || !strings.Contains(prompt, "Watercolor") {
		t.Errorf("guardrails missing from prompt: %q", prompt)
	}
}

func TestGenerateImageSendsReferencePhoto(t *testing.T) {
	var gotBody geminiRequest
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		return jsonResponse(200, `{
			"candidates": [{"content": {"parts": [{"inlineData": {"data": "eA=="}}]}}]
		}`), nil
	})

	if _, err := client.GenerateImage(context.Background(), "prompt", "cmVm"); err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	parts := gotBody.Contents[0].Parts
	if len(parts) != 2 || parts[0].InlineData == nil || parts[0].InlineData.Data != "cmVm" {
		t.Fatalf("reference photo not sent as first part: %+v", parts)
	}
	if !strings.Contains(parts[1].Text, "reference photo") {
		t.Errorf("face-matching instruction missing: %q", parts[1].Text)
	}
}

func TestGenerateImageNoImageInResponse(t *testing.T) {
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"candidates": [{"content": {"parts": [{"text": "sorry"}]}}]}`), nil
	})
	_, err := client.GenerateImage(context.Background(), "prompt", "")
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
}

func TestGenerateTextFallsBackAcrossModels(t *testing.T) {
	var paths []string
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		paths = append(paths, r.URL.Path)
		if len(paths) == 1 {
			return jsonResponse(500, `{"error": {"message": "overloaded"}}`), nil
		}
		return jsonResponse(200, `{"candidates": [{"content": {"parts": [{"text": "{\"pages\":[]}"}]}}]}`), nil
	})

	text, err := client.GenerateText(context.Background(), "write a story")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if text != `{"pages":[]}` {
		t.Errorf("text = %q", text)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 model attempts, got %d: %v", len(paths), paths)
	}
	if paths[0] == paths[1] {
		t.Errorf("fallback hit the same model twice: %v", paths)
	}
}

func TestGenerateTextAllModelsFail(t *testing.T) {
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: connection refused")
	})
	_, err := client.GenerateText(context.Background(), "prompt")
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
}

func TestListModelsStripsPrefix(t *testing.T) {
	client := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"models": [{"name": "models/gemini-1.5-pro"}, {"name": "models/gemini-1.5-flash"}]}`), nil
	})
	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if len(models) != 2 || models[0] != "gemini-1.5-pro" {
		t.Errorf("models = %v", models)
	}
}
