package reply

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"sarabun-assist/internal/extract"
	"sarabun-assist/internal/llm"
	"sarabun-assist/internal/models"
)

var (
	tagRe       = regexp.MustCompile(`<\s*[/]?[^>]+>`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
	unitTokenRe = regexp.MustCompile(`\{\{our_department_name\}\}`)
)

// GenerateBody drafts the remaining numbered paragraphs of the reply,
// continuing from a confirmed opening paragraph.
func (g *Generator) GenerateBody(ctx context.Context, record extract.Record, opening string, intent models.ReplyIntent) (string, error) {
	if !intent.Valid() {
		return "", fmt.Errorf("%w: unknown reply intent %q", models.ErrBodyGenerationFailed, intent)
	}

	system := bodySystemBase + intentAddenda[intent]
	resp, err := g.llm.Chat(ctx, llm.Request{
		System: system,
		Prompt: bodyUserPrompt(record, opening, intent, g.ourUnit),
		Options: llm.Options{
			Temperature:   0.1,
			TopP:          0.7,
			RepeatPenalty: 1.1,
		},
	})
	if err != nil {
		return "", err
	}

	body := CleanBody(resp, g.ourUnit)
	if !strings.HasPrefix(body, "๒.") {
		g.log.WithField("response_length", len(resp)).Warn("body draft does not continue from the opening")
		return "", fmt.Errorf("%w: draft does not start at paragraph two", models.ErrBodyGenerationFailed)
	}
	return body, nil
}

// CleanBody removes model artefacts from a drafted body: code fences,
// angle-bracket tags, the unit placeholder, and excess blank lines.
func CleanBody(raw, ourUnit string) string {
	s := stripCodeFences(raw)
	s = tagRe.ReplaceAllString(s, "")
	if ourUnit != "" {
		s = unitTokenRe.ReplaceAllString(s, ourUnit)
	}
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
