package feedback

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sarabun-assist/internal/models"
	"sarabun-assist/pkg/logger"
)

func testEvent(original, edited string) models.FeedbackEvent {
	return models.FeedbackEvent{
		Timestamp:       time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC),
		DocumentType:    models.Memorandum,
		DocumentSubject: "ขอรับการสนับสนุนวิทยากร",
		OriginalText:    original,
		EditedText:      edited,
	}
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return rows
}

func TestRecordCreatesFileWithHeader(t *testing.T) {
	dir := t.TempDir()
	l := NewLogger(filepath.Join(dir, "feedback"), "feedback_log.csv", logger.New("test"))

	if err := l.Record(testEvent("ก", "ข")); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	rows := readRows(t, l.Path())
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	wantHeader := []string{"timestamp", "document_type", "document_subject", "original_text", "edited_text"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}
	if rows[1][3] != "ก" || rows[1][4] != "ข" {
		t.Errorf("row = %v", rows[1])
	}
}

func TestRecordAppendsWithoutRepeatingHeader(t *testing.T) {
	l := NewLogger(t.TempDir(), "feedback_log.csv", logger.New("test"))

	for i := 0; i < 3; i++ {
		if err := l.Record(testEvent("เดิม", "แก้ไข")); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	rows := readRows(t, l.Path())
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3", len(rows))
	}
	for _, row := range rows[1:] {
		if row[0] == "timestamp" {
			t.Fatal("header written more than once")
		}
	}
}

func TestRecordPreservesNewlinesInText(t *testing.T) {
	l := NewLogger(t.TempDir(), "feedback_log.csv", logger.New("test"))

	multi := "๒. บรรทัดแรก\n๓. บรรทัดสอง"
	if err := l.Record(testEvent(multi, multi)); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	rows := readRows(t, l.Path())
	if rows[1][3] != multi {
		t.Errorf("original_text = %q, want %q", rows[1][3], multi)
	}
}

func TestRecordFailureIsTyped(t *testing.T) {
	// a file where the directory should be forces MkdirAll to fail
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLogger(filepath.Join(blocker, "sub"), "feedback_log.csv", logger.New("test"))

	err := l.Record(testEvent("ก", "ข"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, models.ErrFeedbackWriteFailed) {
		t.Errorf("error = %v, want ErrFeedbackWriteFailed", err)
	}
}
