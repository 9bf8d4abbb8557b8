// Package chatbot answers questions about correspondence regulations and
// system usage, grounded on passages retrieved from the knowledge base.
package chatbot

import (
	"context"
	"fmt"
	"strings"

	"sarabun-assist/internal/embedding"
	"sarabun-assist/internal/kb"
	"sarabun-assist/internal/llm"
	"sarabun-assist/pkg/logger"
)

const noContextFound = "ไม่พบข้อมูลที่เกี่ยวข้องโดยตรง"

// Searcher is the retrieval surface the bot needs from the vector store.
type Searcher interface {
	Search(ctx context.Context, collection string, vector []float32, topK int) ([]kb.SearchHit, error)
}

// Bot retrieves grounding passages and answers with the chat model.
type Bot struct {
	llm             llm.Chatter
	embedder        embedding.Embedder
	store           Searcher
	regulationsColl string
	systemColl      string
	topK            int
	routingEnabled  bool
	log             *logger.Logger
}

type Config struct {
	RegulationsCollection string
	SystemCollection      string
	TopK                  int
	RoutingEnabled        bool
}

func New(chatter llm.Chatter, embedder embedding.Embedder, store Searcher, cfg Config, log *logger.Logger) *Bot {
	if cfg.TopK <= 0 {
		cfg.TopK = 5
	}
	return &Bot{
		llm:             chatter,
		embedder:        embedder,
		store:           store,
		regulationsColl: cfg.RegulationsCollection,
		systemColl:      cfg.SystemCollection,
		topK:            cfg.TopK,
		routingEnabled:  cfg.RoutingEnabled,
		log:             log,
	}
}

// Retrieve embeds the query, searches the collection, and formats the hits
// as numbered reference blocks with their provenance.
func (b *Bot) Retrieve(ctx context.Context, collection, query string) (string, error) {
	vector, err := b.embedder.Embed(ctx, query)
	if err != nil {
		return "", fmt.Errorf("embed query: %w", err)
	}
	hits, err := b.store.Search(ctx, collection, vector, b.topK)
	if err != nil {
		return "", err
	}
	return FormatContext(hits), nil
}

// FormatContext renders retrieved passages the way the answering prompt
// expects them.
func FormatContext(hits []kb.SearchHit) string {
	if len(hits) == 0 {
		return noContextFound
	}
	var blocks []string
	for i, hit := range hits {
		blocks = append(blocks, fmt.Sprintf("--- ข้อมูลอ้างอิงส่วนที่ %d ---\n[เนื้อหา]: %s\n[ที่มา: %s, หน้า: %d]",
			i+1, hit.Text, hit.SourceFile, hit.PageNumber))
	}
	return strings.Join(blocks, "\n")
}

// Answer routes the query, retrieves grounding context, and asks the model
// for a synthesised answer. Retrieval failures degrade to the fallback
// collection before reaching the model.
func (b *Bot) Answer(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("empty query")
	}

	collection := b.regulationsColl
	var route Route
	if b.routingEnabled {
		route = b.RouteQuery(ctx, query)
		if route == RouteSystemUsage {
			collection = b.systemColl
		}
	}

	contextText, err := b.Retrieve(ctx, collection, query)
	if err != nil || contextText == noContextFound || route == RouteGeneral {
		if b.routingEnabled && collection != b.systemColl {
			if fallback, ferr := b.Retrieve(ctx, b.systemColl, query); ferr == nil && fallback != noContextFound {
				contextText = fallback
				err = nil
			}
		}
	}
	if err != nil {
		return "", err
	}

	return b.llm.Chat(ctx, llm.Request{
		System: answerSystemPrompt(query),
		Prompt: answerUserPrompt(query, contextText),
		Options: llm.Options{
			Temperature: 0.3,
			TopP:        0.9,
			NumPredict:  4096,
		},
	})
}

func answerSystemPrompt(query string) string {
	return fmt.Sprintf(`คุณคือ "ที่ปรึกษาอัจฉริยะด้านงานสารบรรณ" ผู้มีทักษะการวิเคราะห์และสังเคราะห์ข้อมูลขั้นสูง ภารกิจของคุณคือการให้คำตอบที่ **ละเอียด ชัดเจน และนำไปใช้งานได้จริง** โดยอ้างอิงจากข้อมูลที่ให้มาอย่างเคร่งครัด

**กระบวนการคิดและตอบ (Chain-of-Thought):**

1.  **วิเคราะห์คำถาม (Analyze the Query):** อ่านคำถามของผู้ใช้ ("%[1]s") อย่างละเอียด แล้วทำความเข้าใจเจตนาที่แท้จริง ว่าผู้ใช้ต้องการทราบอะไรกันแน่?
2.  **สแกนและเชื่อมโยงข้อมูล (Scan & Connect Context):** อ่าน "ข้อมูลที่เกี่ยวข้อง" ทั้งหมดที่ให้มา แล้วมองหา "ทุกส่วน" ที่เกี่ยวข้องกับคำถามของผู้ใช้ แม้จะอยู่คนละส่วนกันก็ตาม จากนั้นพยายามเชื่อมโยงข้อมูลเหล่านั้นเข้าด้วยกัน
3.  **สังเคราะห์คำตอบ (Synthesize the Answer):**
    -   **สร้างคำตอบใหม่:** ห้ามคัดลอกข้อมูลที่ให้มาแบบคำต่อคำ แต่จงใช้ภาษาของตัวเองเพื่อ "สังเคราะห์" และ "เรียบเรียง" คำตอบขึ้นมาใหม่ให้เข้าใจง่าย
    -   **ตอบให้ครบทุกประเด็น:** ตรวจสอบให้แน่ใจว่าคำตอบของคุณครอบคลุมทุกแง่มุมของคำถาม
    -   **ยกตัวอย่าง (ถ้าเป็นไปได้):** หากข้อมูลที่เกี่ยวข้องมีตัวอย่างประกอบ ให้ยกตัวอย่างนั้นมาเพื่อเพิ่มความชัดเจน
    -   **จัดรูปแบบให้อ่านง่าย:** หากคำตอบมีหลายขั้นตอนหรือหลายหัวข้อ ให้ใช้ Markdown (เช่น '-' สำหรับ bullet points หรือ '1.' สำหรับรายการ) เพื่อให้อ่านง่าย

**กฎสำคัญ:**
-   **ยึดตามข้อมูลเท่านั้น:** คำตอบทั้งหมดต้องมาจาก "ข้อมูลที่เกี่ยวข้อง" ที่ให้มา ห้ามเพิ่มเติมข้อมูลหรือความคิดเห็นส่วนตัวที่ไม่มีในแหล่งอ้างอิง
-   **ยอมรับเมื่อไม่รู้:** หากวิเคราะห์แล้วพบว่า "ข้อมูลที่เกี่ยวข้อง" ไม่มีข้อมูลที่ตอบคำถามได้เลย ให้ตอบอย่างสุภาพว่า "ขออภัยครับ ผมไม่พบข้อมูลที่ชัดเจนเกี่ยวกับเรื่อง '%[1]s' ในฐานข้อมูลที่มีอยู่ครับ"`, query)
}

func answerUserPrompt(query, contextText string) string {
	return fmt.Sprintf(`--- ข้อมูลที่เกี่ยวข้อง ---
%s
---
คำถามของผู้ใช้: "%s"
---
คำสั่ง: โปรดปฏิบัติตาม **กระบวนการคิดและตอบ (Chain-of-Thought)** ที่ระบุไว้ในบทบาทของคุณ เพื่อสร้างคำตอบที่ดีที่สุดสำหรับคำถามของผู้ใช้`, contextText, query)
}
