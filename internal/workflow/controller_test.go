package workflow

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"sarabun-assist/internal/extract"
	"sarabun-assist/internal/models"
	"sarabun-assist/internal/ocr"
	"sarabun-assist/pkg/logger"
)

type fakeRenderer struct{ pages [][]byte }

func (f *fakeRenderer) Render(context.Context, []byte) ([][]byte, error) {
	return f.pages, nil
}

type fakeRecognizer struct{ result ocr.Result }

func (f *fakeRecognizer) RecognizeDocument(context.Context, [][]byte) ocr.Result {
	return f.result
}

type passthroughNormalizer struct{}

func (passthroughNormalizer) Apply(text string) string { return text }

type fakeExtractor struct {
	record extract.Record
	err    error
}

func (f *fakeExtractor) Extract(context.Context, models.DocumentType, string) (extract.Record, error) {
	return f.record, f.err
}

type fakeGenerator struct {
	openings []string
	body     string
}

func (f *fakeGenerator) GenerateOpenings(context.Context, extract.Record, string) ([]string, error) {
	return f.openings, nil
}

func (f *fakeGenerator) GenerateBody(context.Context, extract.Record, string, models.ReplyIntent) (string, error) {
	return f.body, nil
}

type memoryFeedback struct{ events []models.FeedbackEvent }

func (m *memoryFeedback) Record(ev models.FeedbackEvent) error {
	m.events = append(m.events, ev)
	return nil
}

type plainExporter struct{}

func (plainExporter) Write(w io.Writer, text string) error {
	_, err := io.WriteString(w, text)
	return err
}

func newTestController(fb FeedbackRecorder) *Controller {
	return NewController(
		&fakeRenderer{pages: [][]byte{[]byte("p1")}},
		&fakeRecognizer{result: ocr.Result{Text: "ข้อความจากเอกสาร", TotalPages: 1}},
		passthroughNormalizer{},
		&fakeExtractor{record: extract.Record{"subject": "เรื่องทดสอบ"}},
		&fakeGenerator{openings: []string{"๑. ก", "๑. ข", "๑. ค"}, body: "๒. เนื้อหา"},
		fb,
		plainExporter{},
		logger.New("test"),
	)
}

func runToExtracted(t *testing.T, c *Controller) {
	t.Helper()
	ctx := context.Background()
	c.Upload("letter.pdf", []byte("%PDF"))
	if err := c.RunOCR(ctx); err != nil {
		t.Fatalf("RunOCR: %v", err)
	}
	if err := c.SelectType(models.Memorandum); err != nil {
		t.Fatalf("SelectType: %v", err)
	}
	if err := c.RunExtraction(ctx); err != nil {
		t.Fatalf("RunExtraction: %v", err)
	}
}

func runToFinalised(t *testing.T, c *Controller) {
	t.Helper()
	ctx := context.Background()
	runToExtracted(t, c)
	if _, err := c.GenerateOpenings(ctx); err != nil {
		t.Fatalf("GenerateOpenings: %v", err)
	}
	if err := c.ConfirmOpening(0, "๑. ก"); err != nil {
		t.Fatalf("ConfirmOpening: %v", err)
	}
	if _, err := c.DraftBody(ctx, models.IntentApprove); err != nil {
		t.Fatalf("DraftBody: %v", err)
	}
	if err := c.Finalise(); err != nil {
		t.Fatalf("Finalise: %v", err)
	}
}

func TestFullWorkflow(t *testing.T) {
	c := newTestController(&memoryFeedback{})
	runToFinalised(t, c)

	s := c.Snapshot()
	if s.State != StateFinalised {
		t.Errorf("state = %s, want %s", s.State, StateFinalised)
	}

	var sb strings.Builder
	if err := c.ExportDocx(&sb); err != nil {
		t.Fatalf("ExportDocx: %v", err)
	}
	if sb.String() != "๑. ก\n๒. เนื้อหา" {
		t.Errorf("exported = %q", sb.String())
	}
}

func TestTransitionsAreEnforced(t *testing.T) {
	c := newTestController(&memoryFeedback{})
	ctx := context.Background()

	if err := c.RunOCR(ctx); !errors.Is(err, models.ErrInvalidTransition) {
		t.Errorf("RunOCR before upload: error = %v, want ErrInvalidTransition", err)
	}

	c.Upload("letter.pdf", []byte("%PDF"))
	if err := c.RunExtraction(ctx); !errors.Is(err, models.ErrInvalidTransition) {
		t.Errorf("extraction before type selection: error = %v, want ErrInvalidTransition", err)
	}
	if err := c.SelectType(models.Memorandum); !errors.Is(err, models.ErrInvalidTransition) {
		t.Errorf("type selection before OCR: error = %v, want ErrInvalidTransition", err)
	}
}

func TestUploadResetsSessionKeepsFeedback(t *testing.T) {
	fb := &memoryFeedback{}
	c := newTestController(fb)

	runToExtracted(t, c)
	if _, err := c.GenerateOpenings(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := c.ConfirmOpening(0, "๑. ก (แก้ไขแล้ว)"); err != nil {
		t.Fatal(err)
	}
	if len(fb.events) != 1 {
		t.Fatalf("feedback events = %d, want 1", len(fb.events))
	}

	c.Upload("another.pdf", []byte("%PDF"))

	s := c.Snapshot()
	if s.State != StateUploaded {
		t.Errorf("state = %s, want %s", s.State, StateUploaded)
	}
	if s.Record != nil || s.Openings != nil || s.ChosenOpening != "" {
		t.Error("session artefacts should be cleared on new upload")
	}
	if len(fb.events) != 1 {
		t.Errorf("feedback events = %d after reset, want 1", len(fb.events))
	}
}

func TestConfirmOpeningLogsEditsOnly(t *testing.T) {
	fb := &memoryFeedback{}
	c := newTestController(fb)

	runToExtracted(t, c)
	if _, err := c.GenerateOpenings(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := c.ConfirmOpening(1, "๑. ข"); err != nil {
		t.Fatal(err)
	}
	if len(fb.events) != 0 {
		t.Errorf("unedited confirmation logged %d events, want 0", len(fb.events))
	}
}

func TestFinaliseLogsBodyEdits(t *testing.T) {
	fb := &memoryFeedback{}
	c := newTestController(fb)

	runToExtracted(t, c)
	ctx := context.Background()
	if _, err := c.GenerateOpenings(ctx); err != nil {
		t.Fatal(err)
	}
	if err := c.ConfirmOpening(0, "๑. ก"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.DraftBody(ctx, models.IntentReject); err != nil {
		t.Fatal(err)
	}
	if err := c.EditBody("๒. เนื้อหาที่แก้ไขแล้ว"); err != nil {
		t.Fatal(err)
	}
	if err := c.Finalise(); err != nil {
		t.Fatal(err)
	}

	if len(fb.events) != 1 {
		t.Fatalf("feedback events = %d, want 1", len(fb.events))
	}
	if fb.events[0].EditedText != "๒. เนื้อหาที่แก้ไขแล้ว" {
		t.Errorf("edited_text = %q", fb.events[0].EditedText)
	}
}

func TestEditRecordMarksOpeningsStale(t *testing.T) {
	c := newTestController(&memoryFeedback{})

	runToExtracted(t, c)
	if _, err := c.GenerateOpenings(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := c.EditRecord(map[string]interface{}{"subject": "เรื่องใหม่"}); err != nil {
		t.Fatal(err)
	}

	s := c.Snapshot()
	if !s.StaleOpenings {
		t.Error("StaleOpenings = false, want true")
	}
	if s.Record.GetString("subject") != "เรื่องใหม่" {
		t.Errorf("subject = %q", s.Record.GetString("subject"))
	}
}

func TestSelectDifferentTypeClearsRecord(t *testing.T) {
	c := newTestController(&memoryFeedback{})
	runToExtracted(t, c)

	// back to selection with a different type
	if err := c.SelectType(models.JointNewsPaper); err != nil {
		t.Fatalf("SelectType: %v", err)
	}

	s := c.Snapshot()
	if s.Record != nil {
		t.Error("record should be cleared when the type changes")
	}
	if s.DocType != models.JointNewsPaper {
		t.Errorf("DocType = %s", s.DocType)
	}
}

func TestOCRPartialStillAdvances(t *testing.T) {
	c := NewController(
		&fakeRenderer{pages: [][]byte{[]byte("p1"), []byte("p2")}},
		&fakeRecognizer{result: ocr.Result{
			Text:       "หน้าแรก" + ocr.PageSeparator + "[OCR Error Page 2]",
			HadErrors:  true,
			PageErrors: []ocr.PageError{{Page: 2}},
			TotalPages: 2,
		}},
		passthroughNormalizer{},
		&fakeExtractor{record: extract.Record{}},
		&fakeGenerator{},
		&memoryFeedback{},
		plainExporter{},
		logger.New("test"),
	)

	c.Upload("letter.pdf", []byte("%PDF"))
	err := c.RunOCR(context.Background())
	if !errors.Is(err, models.ErrOCRPartial) {
		t.Fatalf("error = %v, want ErrOCRPartial", err)
	}

	s := c.Snapshot()
	if s.State != StateOCRed {
		t.Errorf("state = %s, want %s", s.State, StateOCRed)
	}
	if !s.OCRPartial {
		t.Error("OCRPartial = false, want true")
	}
}
