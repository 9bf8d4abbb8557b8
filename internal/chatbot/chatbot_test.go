package chatbot

import (
	"context"
	"strings"
	"testing"

	"sarabun-assist/internal/kb"
	"sarabun-assist/internal/llm"
	"sarabun-assist/pkg/logger"
)

type fakeChatter struct {
	response string
	err      error
	requests []llm.Request
}

func (f *fakeChatter) Chat(_ context.Context, req llm.Request) (string, error) {
	f.requests = append(f.requests, req)
	return f.response, f.err
}

type fakeEmbedder struct{}

func (fakeEmbedder) Embed(context.Context, string) ([]float32, error) {
	return []float32{0.1, 0.2}, nil
}

func (fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.1, 0.2}
	}
	return out, nil
}

type fakeSearcher struct {
	hits       map[string][]kb.SearchHit
	searchedIn []string
}

func (f *fakeSearcher) Search(_ context.Context, collection string, _ []float32, _ int) ([]kb.SearchHit, error) {
	f.searchedIn = append(f.searchedIn, collection)
	return f.hits[collection], nil
}

func newTestBot(chatter *fakeChatter, store *fakeSearcher, routing bool) *Bot {
	return New(chatter, fakeEmbedder{}, store, Config{
		RegulationsCollection: "rtarf_knowledge_base",
		SystemCollection:      "system_usage",
		TopK:                  5,
		RoutingEnabled:        routing,
	}, logger.New("test"))
}

func TestFormatContext(t *testing.T) {
	hits := []kb.SearchHit{
		{Text: "ข้อความแรก", SourceFile: "regulation.pdf", PageNumber: 4},
		{Text: "ข้อความสอง", SourceFile: "manual", PageNumber: 1},
	}

	got := FormatContext(hits)

	if !strings.Contains(got, "--- ข้อมูลอ้างอิงส่วนที่ 1 ---") ||
		!strings.Contains(got, "--- ข้อมูลอ้างอิงส่วนที่ 2 ---") {
		t.Errorf("missing numbered blocks:\n%s", got)
	}
	if !strings.Contains(got, "[ที่มา: regulation.pdf, หน้า: 4]") {
		t.Errorf("missing provenance:\n%s", got)
	}
	if !strings.Contains(got, "[เนื้อหา]: ข้อความแรก") {
		t.Errorf("missing passage text:\n%s", got)
	}
}

func TestFormatContextEmpty(t *testing.T) {
	if got := FormatContext(nil); got != noContextFound {
		t.Errorf("FormatContext(nil) = %q", got)
	}
}

func TestAnswerGroundsOnRetrievedContext(t *testing.T) {
	store := &fakeSearcher{hits: map[string][]kb.SearchHit{
		"rtarf_knowledge_base": {{Text: "ระเบียบข้อ ๕", SourceFile: "reg.pdf", PageNumber: 2}},
	}}
	chatter := &fakeChatter{response: "คำตอบจากระเบียบ"}
	bot := newTestBot(chatter, store, false)

	answer, err := bot.Answer(context.Background(), "การลงทะเบียนหนังสือรับทำอย่างไร")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if answer != "คำตอบจากระเบียบ" {
		t.Errorf("answer = %q", answer)
	}

	last := chatter.requests[len(chatter.requests)-1]
	if !strings.Contains(last.Prompt, "ระเบียบข้อ ๕") {
		t.Error("retrieved passage missing from the prompt")
	}
	if last.Options.Temperature != 0.3 {
		t.Errorf("temperature = %v, want 0.3", last.Options.Temperature)
	}
}

func TestAnswerRoutesSystemQuestions(t *testing.T) {
	store := &fakeSearcher{hits: map[string][]kb.SearchHit{
		"system_usage": {{Text: "วิธีอัปโหลดไฟล์", SourceFile: "system_manual", PageNumber: 1}},
	}}
	chatter := &fakeChatter{response: "การใช้งานระบบ"}
	bot := newTestBot(chatter, store, true)

	if _, err := bot.Answer(context.Background(), "อัปโหลดไฟล์เข้าระบบยังไง"); err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if len(store.searchedIn) == 0 || store.searchedIn[0] != "system_usage" {
		t.Errorf("searched collections = %v, want system_usage first", store.searchedIn)
	}
}

func TestRouteQueryKeywordFallback(t *testing.T) {
	chatter := &fakeChatter{err: context.DeadlineExceeded}
	bot := newTestBot(chatter, &fakeSearcher{}, true)

	if got := bot.RouteQuery(context.Background(), "อ้างถึงระเบียบงานสารบรรณ"); got != RouteRegulations {
		t.Errorf("route = %v, want regulations", got)
	}
	if got := bot.RouteQuery(context.Background(), "ใช้งานหน้าจอหลักยังไง"); got != RouteSystemUsage {
		t.Errorf("route = %v, want system usage", got)
	}
}

func TestRouteQueryClassification(t *testing.T) {
	tests := []struct {
		response string
		want     Route
	}{
		{"การใช้งานระบบ", RouteSystemUsage},
		{"ระเบียบสารบรรณ", RouteRegulations},
		{"ทั่วไป", RouteGeneral},
		{"อื่นๆ ที่ไม่รู้จัก", RouteGeneral},
	}
	for _, tt := range tests {
		bot := newTestBot(&fakeChatter{response: tt.response}, &fakeSearcher{}, true)
		if got := bot.RouteQuery(context.Background(), "คำถาม"); got != tt.want {
			t.Errorf("RouteQuery with %q = %v, want %v", tt.response, got, tt.want)
		}
	}
}
