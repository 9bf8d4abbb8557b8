// Package workflow holds the per-session state machine that walks a scanned
// letter from upload through OCR, extraction, and reply drafting to a
// finalised document.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"sarabun-assist/internal/extract"
	"sarabun-assist/internal/models"
	"sarabun-assist/internal/ocr"
	"sarabun-assist/pkg/logger"
)

// The controller's collaborators, kept as narrow interfaces so each stage
// can be exercised in isolation.
type (
	Renderer interface {
		Render(ctx context.Context, pdfBytes []byte) ([][]byte, error)
	}
	Recognizer interface {
		RecognizeDocument(ctx context.Context, pages [][]byte) ocr.Result
	}
	Normalizer interface {
		Apply(text string) string
	}
	Extractor interface {
		Extract(ctx context.Context, docType models.DocumentType, ocrText string) (extract.Record, error)
	}
	ReplyGenerator interface {
		GenerateOpenings(ctx context.Context, record extract.Record, ocrText string) ([]string, error)
		GenerateBody(ctx context.Context, record extract.Record, opening string, intent models.ReplyIntent) (string, error)
	}
	FeedbackRecorder interface {
		Record(ev models.FeedbackEvent) error
	}
	Exporter interface {
		Write(w io.Writer, text string) error
	}
)

// Session carries every artefact produced while drafting one reply.
type Session struct {
	State         State
	FileName      string
	pdfData       []byte
	OCRText       string
	OCRPartial    bool
	DocType       models.DocumentType
	Record        extract.Record
	Openings      []string
	ChosenOpening string
	Body          string
	Intent        models.ReplyIntent
	StaleOpenings bool

	// snapshots of generated text, kept so edits can be logged as feedback
	generatedOpening string
	generatedBody    string
}

// Controller drives a single session through the workflow. All methods are
// safe for concurrent use.
type Controller struct {
	mu         sync.Mutex
	session    Session
	rasterizer Renderer
	ocrClient  Recognizer
	normaliser Normalizer
	extractor  Extractor
	generator  ReplyGenerator
	feedback   FeedbackRecorder
	exporter   Exporter
	log        *logger.Logger
}

func NewController(
	rasterizer Renderer,
	ocrClient Recognizer,
	normaliser Normalizer,
	extractor Extractor,
	generator ReplyGenerator,
	fb FeedbackRecorder,
	exporter Exporter,
	log *logger.Logger,
) *Controller {
	return &Controller{
		session:    Session{State: StateIdle},
		rasterizer: rasterizer,
		ocrClient:  ocrClient,
		normaliser: normaliser,
		extractor:  extractor,
		generator:  generator,
		feedback:   fb,
		exporter:   exporter,
		log:        log,
	}
}

// Snapshot returns a copy of the current session for read-only use.
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Upload accepts a new PDF. Uploading is allowed from any state and resets
// the session; feedback already written is untouched.
func (c *Controller) Upload(fileName string, pdfData []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = Session{State: StateUploaded, FileName: fileName, pdfData: pdfData}
	c.log.WithDocument(fileName).Info("document uploaded, session reset")
}

// RunOCR renders the uploaded PDF, sends each page to the OCR service, and
// normalises the combined text. A partially failed document still advances
// with placeholders in place of the failed pages.
func (c *Controller) RunOCR(ctx context.Context) error {
	c.mu.Lock()
	next, err := c.session.State.transition(StateOCRing)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.session.State = next
	pdfData := c.session.pdfData
	fileName := c.session.FileName
	c.mu.Unlock()

	pages, err := c.rasterizer.Render(ctx, pdfData)
	if err != nil {
		c.failBack(StateUploaded)
		return fmt.Errorf("%w: render: %v", models.ErrOCRUnavailable, err)
	}

	result := c.ocrClient.RecognizeDocument(ctx, pages)
	if result.AllFailed() {
		c.failBack(StateUploaded)
		return models.ErrOCRUnavailable
	}

	text := c.normaliser.Apply(result.Text)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.State = StateOCRed
	c.session.OCRText = text
	c.session.OCRPartial = result.HadErrors
	c.log.WithDocument(fileName).WithField("pages", result.TotalPages).Info("ocr complete")
	if result.HadErrors {
		return fmt.Errorf("%w: %d of %d pages failed", models.ErrOCRPartial, len(result.PageErrors), result.TotalPages)
	}
	return nil
}

// SelectType records the document type. Re-selecting a different type
// clears the extracted record and any drafts built on it.
func (c *Controller) SelectType(docType models.DocumentType) error {
	if !docType.Valid() {
		return fmt.Errorf("unknown document type %q", docType)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.session.State.transition(StateTypeSelected)
	if err != nil {
		return err
	}
	if c.session.DocType != "" && c.session.DocType != docType {
		c.session.Record = nil
		c.session.Openings = nil
		c.session.ChosenOpening = ""
		c.session.Body = ""
		c.session.StaleOpenings = false
	}
	c.session.State = next
	c.session.DocType = docType
	return nil
}

// RunExtraction extracts the structured record for the selected type.
func (c *Controller) RunExtraction(ctx context.Context) error {
	c.mu.Lock()
	next, err := c.session.State.transition(StateExtracting)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.session.State = next
	docType := c.session.DocType
	text := c.session.OCRText
	c.mu.Unlock()

	record, err := c.extractor.Extract(ctx, docType, text)
	if err != nil {
		c.failBack(StateTypeSelected)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.State = StateExtracted
	c.session.Record = record
	return nil
}

// EditRecord applies user corrections to the extracted fields. Editing
// after openings were generated marks them stale rather than discarding
// them.
func (c *Controller) EditRecord(updates map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.session.State {
	case StateExtracted, StateOpeningGenerated, StateOpeningConfirmed:
	default:
		return fmt.Errorf("%w: cannot edit record in state %s", models.ErrInvalidTransition, c.session.State)
	}
	if c.session.Record == nil {
		c.session.Record = extract.Record{}
	}
	for k, v := range updates {
		if _, known := c.session.Record[k]; known {
			c.session.Record[k] = v
		}
	}
	if len(c.session.Openings) > 0 {
		c.session.StaleOpenings = true
		c.log.Warn("record edited after openings were generated, openings are stale")
	}
	return nil
}

// GenerateOpenings produces candidate first paragraphs from the record.
// Regeneration from a later state discards the previous candidates.
func (c *Controller) GenerateOpenings(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	if _, err := c.session.State.transition(StateOpeningGenerated); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	record := c.session.Record
	text := c.session.OCRText
	c.mu.Unlock()

	openings, err := c.generator.GenerateOpenings(ctx, record, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.State = StateOpeningGenerated
	c.session.Openings = openings
	c.session.ChosenOpening = ""
	c.session.Body = ""
	c.session.StaleOpenings = false
	return openings, nil
}

// ConfirmOpening fixes the opening paragraph. When the confirmed text
// differs from the generated candidate it was based on, the edit is logged
// as feedback; a logging failure never blocks the workflow.
func (c *Controller) ConfirmOpening(generatedIndex int, confirmed string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.session.State.transition(StateOpeningConfirmed)
	if err != nil {
		return err
	}
	if generatedIndex < 0 || generatedIndex >= len(c.session.Openings) {
		return fmt.Errorf("opening index %d out of range", generatedIndex)
	}
	generated := c.session.Openings[generatedIndex]
	c.session.State = next
	c.session.ChosenOpening = confirmed
	c.session.generatedOpening = generated

	if confirmed != generated {
		c.recordFeedback(generated, confirmed)
	}
	return nil
}

// DraftBody generates the remaining paragraphs for the given intent.
func (c *Controller) DraftBody(ctx context.Context, intent models.ReplyIntent) (string, error) {
	c.mu.Lock()
	if _, err := c.session.State.transition(StateBodyDrafted); err != nil {
		c.mu.Unlock()
		return "", err
	}
	record := c.session.Record
	opening := c.session.ChosenOpening
	c.mu.Unlock()

	body, err := c.generator.GenerateBody(ctx, record, opening, intent)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.State = StateBodyDrafted
	c.session.Intent = intent
	c.session.Body = body
	c.session.generatedBody = body
	return body, nil
}

// EditBody replaces the drafted body with user-edited text.
func (c *Controller) EditBody(body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.State != StateBodyDrafted {
		return fmt.Errorf("%w: cannot edit body in state %s", models.ErrInvalidTransition, c.session.State)
	}
	c.session.Body = body
	return nil
}

// Finalise closes the session. An edited body is logged as feedback.
func (c *Controller) Finalise() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.session.State.transition(StateFinalised)
	if err != nil {
		return err
	}
	c.session.State = next
	if c.session.Body != c.session.generatedBody {
		c.recordFeedback(c.session.generatedBody, c.session.Body)
	}
	return nil
}

// ExportDocx writes the finalised document to w.
func (c *Controller) ExportDocx(w io.Writer) error {
	c.mu.Lock()
	if c.session.State != StateFinalised {
		c.mu.Unlock()
		return fmt.Errorf("%w: export requires a finalised document", models.ErrInvalidTransition)
	}
	opening := c.session.ChosenOpening
	body := c.session.Body
	c.mu.Unlock()

	return c.exporter.Write(w, opening+"\n"+body)
}

// Reset returns the controller to the idle state, discarding session
// artefacts. Feedback already on disk is kept.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = Session{State: StateIdle}
}

func (c *Controller) recordFeedback(original, edited string) {
	ev := models.FeedbackEvent{
		Timestamp:       time.Now(),
		DocumentType:    c.session.DocType,
		DocumentSubject: c.session.Record.GetString("subject"),
		OriginalText:    original,
		EditedText:      edited,
	}
	if err := c.feedback.Record(ev); err != nil {
		if errors.Is(err, models.ErrFeedbackWriteFailed) {
			c.log.WithError(err).Warn("feedback write failed, continuing")
			return
		}
		c.log.WithError(err).Warn("feedback write failed")
	}
}

func (c *Controller) failBack(state State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.State = state
}
