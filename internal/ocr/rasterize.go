package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/unidoc/unipdf/v3/model"
	"github.com/unidoc/unipdf/v3/render"
	"golang.org/x/sync/errgroup"
)

// Preprocessor adjusts a page image before recognition (deskew, threshold,
// denoise). The default does nothing; implementations can be swapped in per
// deployment.
type Preprocessor interface {
	Process(img image.Image) (image.Image, error)
}

// NopPreprocessor returns the image unchanged.
type NopPreprocessor struct{}

func (NopPreprocessor) Process(img image.Image) (image.Image, error) {
	return img, nil
}

// Rasterizer renders PDF pages to PNG images for the OCR service.
type Rasterizer struct {
	dpi         int
	maxParallel int
	pre         Preprocessor
}

// NewRasterizer creates a Rasterizer rendering at the given DPI with a
// bounded number of concurrent page renders.
func NewRasterizer(dpi, maxParallel int, pre Preprocessor) *Rasterizer {
	if dpi <= 0 {
		dpi = 300
	}
	if maxParallel <= 0 {
		maxParallel = 4
	}
	if pre == nil {
		pre = NopPreprocessor{}
	}
	return &Rasterizer{dpi: dpi, maxParallel: maxParallel, pre: pre}
}

// Render converts every page of the PDF to a PNG, in page order. Rendering
// fans out over a bounded pool; the returned slice is ordered by page.
func (r *Rasterizer) Render(ctx context.Context, pdfBytes []byte) ([][]byte, error) {
	reader, err := model.NewPdfReader(bytes.NewReader(pdfBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	numPages, err := reader.GetNumPages()
	if err != nil {
		return nil, fmt.Errorf("failed to get page count: %w", err)
	}
	if numPages == 0 {
		return nil, nil
	}

	images := make([][]byte, numPages)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxParallel)

	for i := 1; i <= numPages; i++ {
		pageNum := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			// PdfReader is not safe for concurrent page access, so each
			// render opens its own reader over the in-memory bytes.
			pageReader, err := model.NewPdfReader(bytes.NewReader(pdfBytes))
			if err != nil {
				return fmt.Errorf("page %d: %w", pageNum, err)
			}
			data, err := r.renderPage(pageReader, pageNum)
			if err != nil {
				return fmt.Errorf("page %d: %w", pageNum, err)
			}
			images[pageNum-1] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *Rasterizer) renderPage(reader *model.PdfReader, pageNum int) ([]byte, error) {
	page, err := reader.GetPage(pageNum)
	if err != nil {
		return nil, err
	}
	mbox, err := page.GetMediaBox()
	if err != nil {
		return nil, err
	}

	device := render.NewImageDevice()
	// PDF user space is 72 points per inch.
	device.OutputWidth = int(mbox.Width() * float64(r.dpi) / 72.0)

	img, err := device.Render(page)
	if err != nil {
		return nil, err
	}
	img, err = r.pre.Process(img)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
