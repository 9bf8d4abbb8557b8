// Package ocr renders scanned PDFs to page images and recognises them
// through the external OCR service, aggregating per-page results into one
// text with explicit page separators.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"sarabun-assist/pkg/logger"
)

// PageSeparator joins recognised page texts in the aggregated output.
const PageSeparator = "\n\n--- End of Page ---\n\n"

// PageError records a single failed page.
type PageError struct {
	Page int
	Err  error
}

// Result is the aggregate of a document recognition run. Failed pages are
// represented by placeholder strings inside Text and listed in PageErrors.
type Result struct {
	Text       string
	HadErrors  bool
	PageErrors []PageError
	TotalPages int
}

// AllFailed reports whether not a single page was recognised.
func (r Result) AllFailed() bool {
	return r.TotalPages > 0 && len(r.PageErrors) == r.TotalPages
}

// Client talks to the OCR HTTP service.
type Client struct {
	endpoint    string
	pageTimeout time.Duration
	http        *http.Client
	log         *logger.Logger
}

// NewClient creates an OCR client for the given endpoint. pageTimeout bounds
// each single-page request.
func NewClient(endpoint string, pageTimeout time.Duration, log *logger.Logger) *Client {
	if pageTimeout <= 0 {
		pageTimeout = 180 * time.Second
	}
	return &Client{
		endpoint:    endpoint,
		pageTimeout: pageTimeout,
		http:        &http.Client{},
		log:         log,
	}
}

// RecognizePage sends one PNG to the OCR service and returns the recognised
// text. The service responds with a JSON object carrying a "result" string.
func (c *Client) RecognizePage(ctx context.Context, pageNum int, pngData []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.pageTimeout)
	defer cancel()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", fmt.Sprintf("page_%d.png", pageNum))
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(pngData); err != nil {
		return "", fmt.Errorf("failed to write image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var parsed struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("malformed JSON response: %w", err)
	}
	return strings.TrimSpace(parsed.Result), nil
}

// RecognizeDocument recognises every page in order. One failed page does not
// abort the rest: its slot in the aggregate becomes a placeholder and
// HadErrors is set.
func (c *Client) RecognizeDocument(ctx context.Context, pages [][]byte) Result {
	res := Result{TotalPages: len(pages)}
	texts := make([]string, 0, len(pages))

	for i, page := range pages {
		pageNum := i + 1
		text, err := c.RecognizePage(ctx, pageNum, page)
		if err != nil {
			c.log.WithError(err).WithField("page", pageNum).Warn("OCR failed for page")
			texts = append(texts, fmt.Sprintf("[OCR Error Page %d]", pageNum))
			res.HadErrors = true
			res.PageErrors = append(res.PageErrors, PageError{Page: pageNum, Err: err})
			continue
		}
		texts = append(texts, text)
	}

	res.Text = strings.TrimSpace(strings.Join(texts, PageSeparator))
	return res
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
