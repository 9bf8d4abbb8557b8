// Package feedback persists user edits to generated text as an append-only
// CSV file, later mined for correction patterns.
package feedback

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sarabun-assist/internal/models"
	"sarabun-assist/pkg/logger"
)

var header = []string{"timestamp", "document_type", "document_subject", "original_text", "edited_text"}

// Logger appends feedback rows to a single CSV file. The file is opened
// and closed per append so concurrent workflows never hold it open.
type Logger struct {
	path string
	log  *logger.Logger
}

func NewLogger(dir, filename string, log *logger.Logger) *Logger {
	return &Logger{path: filepath.Join(dir, filename), log: log}
}

// Path returns the location of the CSV file.
func (l *Logger) Path() string {
	return l.path
}

// Record appends one feedback row, writing the header first when the file
// is new or empty. The wrapped error is models.ErrFeedbackWriteFailed so
// callers can log and continue.
func (l *Logger) Record(ev models.FeedbackEvent) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", models.ErrFeedbackWriteFailed, err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrFeedbackWriteFailed, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrFeedbackWriteFailed, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("%w: %v", models.ErrFeedbackWriteFailed, err)
		}
	}
	row := []string{
		ev.Timestamp.Format(time.RFC3339),
		string(ev.DocumentType),
		ev.DocumentSubject,
		ev.OriginalText,
		ev.EditedText,
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("%w: %v", models.ErrFeedbackWriteFailed, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %v", models.ErrFeedbackWriteFailed, err)
	}

	l.log.WithField("path", l.path).Debug("feedback row appended")
	return nil
}
