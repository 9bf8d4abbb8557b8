package extract

import (
	"context"
	"errors"
	"testing"

	"sarabun-assist/internal/llm"
	"sarabun-assist/internal/models"
	"sarabun-assist/pkg/logger"
)

type fakeChatter struct {
	response string
	err      error
	lastReq  llm.Request
}

func (f *fakeChatter) Chat(_ context.Context, req llm.Request) (string, error) {
	f.lastReq = req
	return f.response, f.err
}

func TestExtractStrictJSON(t *testing.T) {
	chatter := &fakeChatter{response: `{"subject": "ขอรับการสนับสนุนวิทยากร", "department": "สบ.ทหาร"}`}
	e := NewExtractor(chatter, logger.New("test"))

	record, err := e.Extract(context.Background(), models.Memorandum, "ข้อความจากเอกสาร")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got := record.GetString("subject"); got != "ขอรับการสนับสนุนวิทยากร" {
		t.Errorf("subject = %q", got)
	}
	if !chatter.lastReq.JSON {
		t.Error("extraction request should ask for JSON output")
	}
}

func TestExtractFallsBackToEmbeddedObject(t *testing.T) {
	chatter := &fakeChatter{response: "ผลการสกัดข้อมูลคือ {\"subject\": \"เรื่องทดสอบ\"} ครับ"}
	e := NewExtractor(chatter, logger.New("test"))

	record, err := e.Extract(context.Background(), models.Memorandum, "ข้อความ")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got := record.GetString("subject"); got != "เรื่องทดสอบ" {
		t.Errorf("subject = %q", got)
	}
}

func TestExtractUnparsableOutput(t *testing.T) {
	chatter := &fakeChatter{response: "ไม่สามารถสกัดข้อมูลได้"}
	e := NewExtractor(chatter, logger.New("test"))

	_, err := e.Extract(context.Background(), models.Memorandum, "ข้อความ")
	if !errors.Is(err, models.ErrExtractionFailed) {
		t.Errorf("error = %v, want ErrExtractionFailed", err)
	}
}

func TestExtractEmptyText(t *testing.T) {
	e := NewExtractor(&fakeChatter{}, logger.New("test"))

	_, err := e.Extract(context.Background(), models.Memorandum, "   ")
	if !errors.Is(err, models.ErrExtractionFailed) {
		t.Errorf("error = %v, want ErrExtractionFailed", err)
	}
}

func TestExtractPropagatesLLMErrors(t *testing.T) {
	chatter := &fakeChatter{err: models.ErrLLMTimeout}
	e := NewExtractor(chatter, logger.New("test"))

	_, err := e.Extract(context.Background(), models.Memorandum, "ข้อความ")
	if !errors.Is(err, models.ErrLLMTimeout) {
		t.Errorf("error = %v, want ErrLLMTimeout", err)
	}
}

func TestProjectShapesRecordToSchema(t *testing.T) {
	raw := map[string]interface{}{
		"subject":    "ทดสอบ",
		"department": nil,
		"garbage":    "ค่าที่ไม่อยู่ในสคีมา",
	}

	record := Project(raw, memorandumSchema)

	if len(record) != len(memorandumSchema.Keys) {
		t.Fatalf("record has %d keys, want %d", len(record), len(memorandumSchema.Keys))
	}
	if _, ok := record["garbage"]; ok {
		t.Error("unknown key should have been dropped")
	}
	if record["department"] != nil {
		t.Errorf("department = %v, want nil", record["department"])
	}
	if record["date"] != nil {
		t.Errorf("missing key date = %v, want nil", record["date"])
	}
	if record.GetString("subject") != "ทดสอบ" {
		t.Errorf("subject = %q", record.GetString("subject"))
	}
}

func TestProjectNormalisesLists(t *testing.T) {
	raw := map[string]interface{}{
		"attachments": []interface{}{"เอกสาร ๑", "เอกสาร ๒"},
	}

	record := Project(raw, memorandumSchema)

	list, ok := record["attachments"].([]string)
	if !ok {
		t.Fatalf("attachments = %T, want []string", record["attachments"])
	}
	if len(list) != 2 || list[0] != "เอกสาร ๑" {
		t.Errorf("attachments = %v", list)
	}
}
