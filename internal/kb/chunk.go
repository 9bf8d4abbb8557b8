package kb

import (
	"bytes"
	"fmt"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
)

// Chunk is one retrievable passage with its provenance.
type Chunk struct {
	Text       string
	SourceFile string
	PageNumber int
}

// SplitManual splits markdown-style manual text on "##" section headings.
// Sections shorter than minChars are dropped. The heading line stays part
// of its section so retrieval keeps the topic name. The manual has no real
// pagination, so every section carries page 1.
func SplitManual(text, sourceFile string, minChars int) []Chunk {
	var chunks []Chunk
	for _, section := range strings.Split(text, "##") {
		section = strings.TrimSpace(section)
		if len([]rune(section)) < minChars {
			continue
		}
		chunks = append(chunks, Chunk{
			Text:       "## " + section,
			SourceFile: sourceFile,
			PageNumber: 1,
		})
	}
	return chunks
}

// SplitPDF extracts text per page and windows it into fixed-size groups of
// lines joined by spaces. Windows shorter than minChars are dropped.
func SplitPDF(pdfBytes []byte, sourceFile string, windowLines, minChars int) ([]Chunk, error) {
	reader, err := lpdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	var chunks []Chunk
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		for _, window := range windowByLines(text, windowLines) {
			if len([]rune(window)) < minChars {
				continue
			}
			chunks = append(chunks, Chunk{
				Text:       window,
				SourceFile: sourceFile,
				PageNumber: pageNum,
			})
		}
	}
	return chunks, nil
}

func windowByLines(text string, windowLines int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if windowLines <= 0 {
		windowLines = 15
	}

	var windows []string
	for start := 0; start < len(lines); start += windowLines {
		end := start + windowLines
		if end > len(lines) {
			end = len(lines)
		}
		windows = append(windows, strings.Join(lines[start:end], " "))
	}
	return windows
}
