// Package pdf assembles a finished book into a downloadable PDF.
package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/rs/zerolog"

	"storybook/internal/domain"
)

const (
	// Illustrations are squared to this box before import.
	renderSize = 1024
	// Failed or missing pages get a neutral placeholder so assembly never
	// blocks on an incomplete book.
	placeholderSize = 512

	importDesc     = "form:A4, pos:c, scale:0.75 rel"
	captionDesc    = "points:13, pos:bc, off:0 30, scale:1 abs, rot:0"
	dedicationDesc = "points:24, pos:c, scale:1 abs, rot:0"
)

// Builder renders job pages into a single PDF.
type Builder struct {
	logger zerolog.Logger
}

// NewBuilder returns a Builder.
func NewBuilder(logger zerolog.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build writes the dedication leaf followed by every page of the job, each
// page image stamped with its caption text. Pages without a usable image get
// a gray placeholder, so a partially generated book still produces a PDF.
func (b *Builder) Build(job *domain.Job, pages []domain.Page) ([]byte, error) {
	workDir, err := os.MkdirTemp("", "storybook-pdf-")
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(workDir)
	}()

	files := make([]string, 0, len(pages)+1)

	dedication := filepath.Join(workDir, "page-000.png")
	if err := imaging.Save(imaging.New(renderSize, renderSize, color.White), dedication); err != nil {
		return nil, fmt.Errorf("write dedication leaf: %w", err)
	}
	files = append(files, dedication)

	for i := range pages {
		img := b.pageImage(&pages[i])
		path := filepath.Join(workDir, fmt.Sprintf("page-%03d.png", pages[i].PageNumber))
		if err := imaging.Save(img, path); err != nil {
			return nil, fmt.Errorf("write page %d: %w", pages[i].PageNumber, err)
		}
		files = append(files, path)
	}

	rawPDF := filepath.Join(workDir, "book.pdf")
	imp, err := api.Import(importDesc, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("parse import config: %w", err)
	}
	if err := api.ImportImagesFile(files, rawPDF, imp, nil); err != nil {
		return nil, fmt.Errorf("import page images: %w", err)
	}

	stamped := filepath.Join(workDir, "book-stamped.pdf")
	wms, err := b.watermarks(job, pages)
	if err != nil {
		return nil, err
	}
	if err := api.AddWatermarksMapFile(rawPDF, stamped, wms, nil); err != nil {
		return nil, fmt.Errorf("stamp page text: %w", err)
	}

	out, err := os.ReadFile(stamped)
	if err != nil {
		return nil, fmt.Errorf("read assembled pdf: %w", err)
	}
	b.logger.Info().Str("job_id", job.ID).Int("pages", len(pages)).Int("bytes", len(out)).Msg("assembled book pdf")
	return out, nil
}

// watermarks maps 1-based PDF page numbers to their text stamps. Page 1 is
// the dedication; job pages follow in order.
func (b *Builder) watermarks(job *domain.Job, pages []domain.Page) (map[int]*model.Watermark, error) {
	wms := make(map[int]*model.Watermark, len(pages)+1)

	dedication := fmt.Sprintf("This book belongs to\n%s", job.ChildName)
	wm, err := api.TextWatermark(dedication, dedicationDesc, true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("build dedication stamp: %w", err)
	}
	wms[1] = wm

	for i := range pages {
		if pages[i].Text == "" {
			continue
		}
		wm, err := api.TextWatermark(pages[i].Text, captionDesc, true, false, types.POINTS)
		if err != nil {
			return nil, fmt.Errorf("build caption for page %d: %w", pages[i].PageNumber, err)
		}
		wms[i+2] = wm
	}
	return wms, nil
}

// pageImage decodes the page's stored data URL, falling back to a gray
// placeholder when the page never completed or the payload is unusable.
func (b *Builder) pageImage(page *domain.Page) image.Image {
	if page.Status == domain.PageStatusCompleted && page.ImageURL != "" {
		img, err := decodeDataURL(page.ImageURL)
		if err == nil {
			return imaging.Fit(img, renderSize, renderSize, imaging.Lanczos)
		}
		b.logger.Warn().Err(err).Str("job_id", page.JobID).Int("page", page.PageNumber).Msg("unusable page image, using placeholder")
	}
	return imaging.New(placeholderSize, placeholderSize, color.Gray{Y: 0xcc})
}

func decodeDataURL(dataURL string) (image.Image, error) {
	idx := strings.Index(dataURL, "base64,")
	if idx < 0 {
		return nil, fmt.Errorf("not a base64 data url")
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len("base64,"):])
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
