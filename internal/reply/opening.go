package reply

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"sarabun-assist/internal/extract"
	"sarabun-assist/internal/llm"
	"sarabun-assist/internal/models"
	"sarabun-assist/pkg/logger"
)

// NumOpeningOptions is the number of candidate first paragraphs requested
// from the model per call.
const NumOpeningOptions = 3

// Generator drafts reply paragraphs for an incoming official letter.
type Generator struct {
	llm     llm.Chatter
	ourUnit string
	log     *logger.Logger
}

func NewGenerator(chatter llm.Chatter, ourUnit string, log *logger.Logger) *Generator {
	return &Generator{llm: chatter, ourUnit: ourUnit, log: log}
}

// GenerateOpenings asks the model for NumOpeningOptions variants of the
// first paragraph and normalises each to start with the Thai item marker.
func (g *Generator) GenerateOpenings(ctx context.Context, record extract.Record, ocrText string) ([]string, error) {
	resp, err := g.llm.Chat(ctx, llm.Request{
		System: openingSystemPrompt(NumOpeningOptions),
		Prompt: openingUserPrompt(record, ocrText, NumOpeningOptions),
		JSON:   true,
		Options: llm.Options{
			Temperature:   0.6,
			TopP:          0.9,
			RepeatPenalty: 1.1,
			NumPredict:    2048,
		},
	})
	if err != nil {
		return nil, err
	}

	openings := parseOpenings(resp)
	if len(openings) == 0 {
		g.log.WithField("response_length", len(resp)).Warn("no openings recovered from model output")
		return nil, fmt.Errorf("%w: unusable model output", models.ErrOpeningParseFailed)
	}

	if len(openings) > NumOpeningOptions {
		openings = openings[:NumOpeningOptions]
	}
	for i, o := range openings {
		openings[i] = ensureOpeningPrefix(o)
	}
	return openings, nil
}

// parseOpenings recovers opening candidates from a model response, trying
// progressively looser interpretations before giving up.
func parseOpenings(raw string) []string {
	raw = strings.TrimSpace(stripCodeFences(raw))

	// JSON list of strings.
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return cleanOpenings(list)
	}

	// JSON object; values taken in sorted key order so style_1..style_N
	// keep their intended ordering.
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &obj); err == nil {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var vals []string
		for _, k := range keys {
			if s, ok := obj[k].(string); ok {
				vals = append(vals, s)
			}
		}
		if out := cleanOpenings(vals); len(out) > 0 {
			return out
		}
	}

	// Plain text holding several numbered items: split on the marker and
	// re-attach it.
	if strings.Contains(raw, "๑.") {
		parts := strings.Split(raw, "๑.")
		var vals []string
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				vals = append(vals, "๑. "+p)
			}
		}
		if out := cleanOpenings(vals); len(out) > 0 {
			return out
		}
	}

	// Python-style literal list sometimes produced despite JSON mode.
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		inner := strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")
		var vals []string
		for _, p := range strings.Split(inner, "',") {
			p = strings.Trim(strings.TrimSpace(p), "'\" ")
			if p != "" {
				vals = append(vals, p)
			}
		}
		return cleanOpenings(vals)
	}

	return nil
}

func cleanOpenings(in []string) []string {
	var out []string
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func ensureOpeningPrefix(s string) string {
	if strings.HasPrefix(s, "๑.") {
		if strings.HasPrefix(s, "๑. ") {
			return s
		}
		return "๑. " + strings.TrimSpace(strings.TrimPrefix(s, "๑."))
	}
	return "๑. " + s
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
