package chatbot

import (
	"context"
	"fmt"
	"strings"

	"sarabun-assist/internal/llm"
)

// Route labels the knowledge domain a question belongs to.
type Route string

const (
	RouteSystemUsage Route = "การใช้งานระบบ"
	RouteRegulations Route = "ระเบียบสารบรรณ"
	RouteGeneral     Route = "ทั่วไป"
)

const routerPromptFormat = `คุณคือ AI คัดแยกคำถาม ภารกิจของคุณคือวิเคราะห์คำถามของผู้ใช้แล้วตอบกลับด้วยหนึ่งในสามคำนี้เท่านั้น: "การใช้งานระบบ", "ระเบียบสารบรรณ", หรือ "ทั่วไป"

- ถ้าคำถามเกี่ยวกับการใช้งานโปรแกรม, ขั้นตอนการทำงานของระบบ, หรือมีคำว่า "ระบบ" อยู่ในประโยคคำถาม ให้ตอบว่า: การใช้งานระบบ
- ถ้าในประโยคคำถามมีคำว่า "อ้างถึงระเบียบงานสารบรรณ" "ระเบียบ" "ข้อบังคับ" หรือชื่อเอกสารเฉพาะ ให้ตอบว่า: ระเบียบสารบรรณ
- ถ้าเป็นคำถามทักทาย, ขอบคุณ, หรือนอกเหนือจากสองเรื่องข้างบน ให้ตอบว่า: ทั่วไป

คำถามของผู้ใช้: "%s"
ประเภทของคำถามคือ:`

// RouteQuery classifies a question so retrieval hits the right collection.
// When the model is unreachable a keyword heuristic decides instead, so
// routing never fails outright.
func (b *Bot) RouteQuery(ctx context.Context, query string) Route {
	resp, err := b.llm.Chat(ctx, llm.Request{
		Prompt: fmt.Sprintf(routerPromptFormat, query),
		Options: llm.Options{
			Temperature: 0,
			NumPredict:  50,
		},
	})
	if err != nil {
		b.log.WithError(err).Warn("query router unavailable, falling back to keywords")
		if strings.Contains(query, "ระเบียบ") || strings.Contains(query, "สารบรรณ") {
			return RouteRegulations
		}
		return RouteSystemUsage
	}

	switch {
	case strings.Contains(resp, string(RouteSystemUsage)):
		return RouteSystemUsage
	case strings.Contains(resp, string(RouteRegulations)):
		return RouteRegulations
	default:
		return RouteGeneral
	}
}
