package reply

import (
	"context"
	"fmt"
	"strings"

	"sarabun-assist/internal/llm"
	"sarabun-assist/internal/models"
)

// GenerateDraft converts a colloquial Thai instruction into the body of a
// new outgoing document of the requested type.
func (g *Generator) GenerateDraft(ctx context.Context, docType models.DocumentType, salutation, colloquial string) (string, error) {
	template, ok := draftTemplates[docType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported document type %q", models.ErrBodyGenerationFailed, docType)
	}

	var prompt strings.Builder
	if salutation != "" {
		fmt.Fprintf(&prompt, "[คำขึ้นต้น]: %s\n", salutation)
	}
	fmt.Fprintf(&prompt, "[ข้อความต้นฉบับจากผู้ใช้]: \"%s\"", colloquial)

	resp, err := g.llm.Chat(ctx, llm.Request{
		System: template,
		Prompt: prompt.String(),
		Options: llm.Options{
			Temperature:   0.05,
			TopP:          0.5,
			RepeatPenalty: 1.15,
			NumPredict:    2048,
		},
	})
	if err != nil {
		return "", err
	}

	draft := strings.TrimSpace(stripCodeFences(resp))
	if draft == "" {
		return "", fmt.Errorf("%w: empty draft", models.ErrBodyGenerationFailed)
	}
	return draft, nil
}
