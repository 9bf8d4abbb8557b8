package reply

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"sarabun-assist/internal/extract"
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

func newTestGenerator(chatter llm.Chatter) *Generator {
	return NewGenerator(chatter, "ศซบ.ทหาร", logger.New("test"))
}

func TestParseOpeningsJSONObject(t *testing.T) {
	got := parseOpenings(`{"style_1": "๑. ก", "style_2": "๑. ข", "style_3": "๑. ค"}`)
	want := []string{"๑. ก", "๑. ข", "๑. ค"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseOpenings() = %v, want %v", got, want)
	}
}

func TestParseOpeningsJSONList(t *testing.T) {
	got := parseOpenings(`["๑. หนึ่ง", "๑. สอง"]`)
	want := []string{"๑. หนึ่ง", "๑. สอง"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseOpenings() = %v, want %v", got, want)
	}
}

func TestParseOpeningsSplitFallback(t *testing.T) {
	got := parseOpenings("๑. ก\n๑. ข")
	want := []string{"๑. ก", "๑. ข"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseOpenings() = %v, want %v", got, want)
	}
}

func TestParseOpeningsCodeFencedObject(t *testing.T) {
	raw := "```json\n{\"style_1\": \"๑. ตามที่ สบ.ทหาร ขอรับการสนับสนุน\"}\n```"
	got := parseOpenings(raw)
	if len(got) != 1 || got[0] != "๑. ตามที่ สบ.ทหาร ขอรับการสนับสนุน" {
		t.Errorf("parseOpenings() = %v", got)
	}
}

func TestParseOpeningsUnusable(t *testing.T) {
	if got := parseOpenings("ขออภัย ไม่สามารถสร้างได้"); got != nil {
		t.Errorf("parseOpenings() = %v, want nil", got)
	}
}

func TestGenerateOpeningsForcesPrefix(t *testing.T) {
	chatter := &fakeChatter{response: `{"style_1": "ตามที่หน่วยขอรับการสนับสนุน", "style_2": "๑.ด้วยหน่วยมีกำหนดจัดประชุม"}`}
	g := newTestGenerator(chatter)

	openings, err := g.GenerateOpenings(context.Background(), extract.Record{}, "ข้อความ")
	if err != nil {
		t.Fatalf("GenerateOpenings() error = %v", err)
	}
	want := []string{"๑. ตามที่หน่วยขอรับการสนับสนุน", "๑. ด้วยหน่วยมีกำหนดจัดประชุม"}
	if !reflect.DeepEqual(openings, want) {
		t.Errorf("openings = %v, want %v", openings, want)
	}
	if !chatter.lastReq.JSON {
		t.Error("opening request should ask for JSON output")
	}
}

func TestGenerateOpeningsCapsCandidates(t *testing.T) {
	chatter := &fakeChatter{response: "๑. หนึ่ง ๑. สอง ๑. สาม ๑. สี่ ๑. ห้า"}
	g := newTestGenerator(chatter)

	openings, err := g.GenerateOpenings(context.Background(), extract.Record{}, "ข้อความ")
	if err != nil {
		t.Fatalf("GenerateOpenings() error = %v", err)
	}
	if len(openings) != NumOpeningOptions {
		t.Errorf("got %d openings, want at most %d", len(openings), NumOpeningOptions)
	}
}

func TestGenerateOpeningsParseFailure(t *testing.T) {
	g := newTestGenerator(&fakeChatter{response: "ไม่มีอะไรเลย"})

	_, err := g.GenerateOpenings(context.Background(), extract.Record{}, "ข้อความ")
	if !errors.Is(err, models.ErrOpeningParseFailed) {
		t.Errorf("error = %v, want ErrOpeningParseFailed", err)
	}
}

func TestGenerateBody(t *testing.T) {
	chatter := &fakeChatter{response: "๒. {{our_department_name}} พิจารณาแล้วไม่มีข้อขัดข้อง\n๓. ข้อเสนอ เห็นควรอนุมัติ"}
	g := newTestGenerator(chatter)

	body, err := g.GenerateBody(context.Background(), extract.Record{"subject": "ทดสอบ"}, "๑. ตามที่...", models.IntentApprove)
	if err != nil {
		t.Fatalf("GenerateBody() error = %v", err)
	}
	want := "๒. ศซบ.ทหาร พิจารณาแล้วไม่มีข้อขัดข้อง\n๓. ข้อเสนอ เห็นควรอนุมัติ"
	if body != want {
		t.Errorf("body = %q, want %q", body, want)
	}
}

func TestGenerateBodyRejectsWrongStart(t *testing.T) {
	g := newTestGenerator(&fakeChatter{response: "๑. ตามที่ (ซ้ำข้อหนึ่ง)"})

	_, err := g.GenerateBody(context.Background(), extract.Record{}, "๑. ตามที่...", models.IntentApprove)
	if !errors.Is(err, models.ErrBodyGenerationFailed) {
		t.Errorf("error = %v, want ErrBodyGenerationFailed", err)
	}
}

func TestGenerateBodyUnknownIntent(t *testing.T) {
	g := newTestGenerator(&fakeChatter{})

	_, err := g.GenerateBody(context.Background(), extract.Record{}, "๑. ...", models.ReplyIntent("อื่นๆ"))
	if !errors.Is(err, models.ErrBodyGenerationFailed) {
		t.Errorf("error = %v, want ErrBodyGenerationFailed", err)
	}
}

func TestCleanBody(t *testing.T) {
	raw := "```\n๒. <note>เนื้อหา</note> {{our_department_name}} เห็นชอบ\n\n\n๓. ข้อเสนอ\n```"
	got := CleanBody(raw, "ศซบ.ทหาร")
	want := "๒. เนื้อหา ศซบ.ทหาร เห็นชอบ\n\n๓. ข้อเสนอ"
	if got != want {
		t.Errorf("CleanBody() = %q, want %q", got, want)
	}
}

func TestGenerateDraftStripsFences(t *testing.T) {
	chatter := &fakeChatter{response: "```\n๑. ด้วยหน่วยมีกำหนดจัดประชุม\n```"}
	g := newTestGenerator(chatter)

	draft, err := g.GenerateDraft(context.Background(), models.JointNewsPaper, "", "เราจะจัดประชุม")
	if err != nil {
		t.Fatalf("GenerateDraft() error = %v", err)
	}
	if draft != "๑. ด้วยหน่วยมีกำหนดจัดประชุม" {
		t.Errorf("draft = %q", draft)
	}
}

func TestGenerateDraftUnknownType(t *testing.T) {
	g := newTestGenerator(&fakeChatter{})

	_, err := g.GenerateDraft(context.Background(), models.DocumentType("จดหมาย"), "", "ข้อความ")
	if !errors.Is(err, models.ErrBodyGenerationFailed) {
		t.Errorf("error = %v, want ErrBodyGenerationFailed", err)
	}
}
