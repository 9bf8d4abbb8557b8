// Package extract turns normalised OCR text into a typed record of fields
// keyed by one of the recognised document schemas, via a JSON-constrained
// LLM call.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"sarabun-assist/internal/llm"
	"sarabun-assist/internal/models"
	"sarabun-assist/pkg/logger"
)

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// Extractor prompts the LLM for structured fields and projects the output
// onto the document schema.
type Extractor struct {
	llm llm.Chatter
	log *logger.Logger
}

// NewExtractor creates an Extractor on top of the given chat client.
func NewExtractor(chatter llm.Chatter, log *logger.Logger) *Extractor {
	return &Extractor{llm: chatter, log: log}
}

// Extract runs the extraction for the given document type. The record always
// has exactly the schema's keys; fields the model missed are nil.
func (e *Extractor) Extract(ctx context.Context, docType models.DocumentType, ocrText string) (Record, error) {
	if strings.TrimSpace(ocrText) == "" {
		return nil, fmt.Errorf("%w: no OCR text provided", models.ErrExtractionFailed)
	}
	schema, err := SchemaFor(docType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrExtractionFailed, err)
	}

	content, err := e.llm.Chat(ctx, llm.Request{
		System: BuildSystemPrompt(schema),
		Prompt: BuildUserPrompt(docType, ocrText),
		JSON:   true,
		Options: llm.Options{
			Temperature: 0.05,
			NumPredict:  3500,
		},
	})
	if err != nil {
		return nil, err
	}

	raw, err := parseObject(content)
	if err != nil {
		e.log.WithError(err).Error("Extraction output could not be parsed")
		return nil, fmt.Errorf("%w: %v", models.ErrExtractionFailed, err)
	}
	return Project(raw, schema), nil
}

// parseObject tries a strict JSON parse first, then falls back to the first
// {...} substring of the output.
func parseObject(content string) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(content), &raw); err == nil {
		return raw, nil
	}
	match := jsonObjectRe.FindString(content)
	if match == "" {
		return nil, fmt.Errorf("model did not return a JSON object")
	}
	if err := json.Unmarshal([]byte(match), &raw); err != nil {
		return nil, fmt.Errorf("embedded JSON object is invalid: %v", err)
	}
	return raw, nil
}
