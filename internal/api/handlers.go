package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"sarabun-assist/internal/chatbot"
	"sarabun-assist/internal/models"
	"sarabun-assist/internal/reply"
	"sarabun-assist/internal/workflow"
	"sarabun-assist/pkg/logger"
)

// API exposes the drafting workflow and the chatbot over HTTP.
type API struct {
	controller *workflow.Controller
	generator  *reply.Generator
	bot        *chatbot.Bot
	log        *logger.Logger
}

func New(controller *workflow.Controller, generator *reply.Generator, bot *chatbot.Bot, log *logger.Logger) *API {
	return &API{controller: controller, generator: generator, bot: bot, log: log}
}

func (a *API) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (a *API) session(c *gin.Context) {
	s := a.controller.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"state":          s.State,
		"file_name":      s.FileName,
		"document_type":  s.DocType,
		"record":         s.Record,
		"openings":       s.Openings,
		"chosen_opening": s.ChosenOpening,
		"body":           s.Body,
		"ocr_partial":    s.OCRPartial,
		"stale_openings": s.StaleOpenings,
	})
}

func (a *API) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a.controller.Upload(file.Filename, data)
	c.JSON(http.StatusOK, gin.H{"state": a.controller.Snapshot().State})
}

func (a *API) runOCR(c *gin.Context) {
	err := a.controller.RunOCR(c.Request.Context())
	s := a.controller.Snapshot()
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"state": s.State, "text": s.OCRText})
	case errors.Is(err, models.ErrOCRPartial):
		c.JSON(http.StatusOK, gin.H{"state": s.State, "text": s.OCRText, "warning": err.Error()})
	case errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

func (a *API) selectType(c *gin.Context) {
	var req struct {
		DocumentType models.DocumentType `json:"document_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.controller.SelectType(req.DocumentType); err != nil {
		a.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": a.controller.Snapshot().State})
}

func (a *API) runExtraction(c *gin.Context) {
	if err := a.controller.RunExtraction(c.Request.Context()); err != nil {
		a.respondWorkflowError(c, err)
		return
	}
	s := a.controller.Snapshot()
	c.JSON(http.StatusOK, gin.H{"state": s.State, "record": s.Record})
}

func (a *API) editRecord(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.controller.EditRecord(updates); err != nil {
		a.respondWorkflowError(c, err)
		return
	}
	s := a.controller.Snapshot()
	c.JSON(http.StatusOK, gin.H{"record": s.Record, "stale_openings": s.StaleOpenings})
}

func (a *API) generateOpenings(c *gin.Context) {
	openings, err := a.controller.GenerateOpenings(c.Request.Context())
	if err != nil {
		a.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"openings": openings})
}

func (a *API) confirmOpening(c *gin.Context) {
	var req struct {
		Index int    `json:"index"`
		Text  string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.controller.ConfirmOpening(req.Index, req.Text); err != nil {
		a.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": a.controller.Snapshot().State})
}

func (a *API) draftBody(c *gin.Context) {
	var req struct {
		Intent models.ReplyIntent `json:"intent" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body, err := a.controller.DraftBody(c.Request.Context(), req.Intent)
	if err != nil {
		a.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"body": body})
}

func (a *API) editBody(c *gin.Context) {
	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.controller.EditBody(req.Body); err != nil {
		a.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": a.controller.Snapshot().State})
}

func (a *API) finalise(c *gin.Context) {
	if err := a.controller.Finalise(); err != nil {
		a.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": a.controller.Snapshot().State})
}

func (a *API) exportDocx(c *gin.Context) {
	var buf bytes.Buffer
	if err := a.controller.ExportDocx(&buf); err != nil {
		a.respondWorkflowError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="reply.docx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		buf.Bytes())
}

func (a *API) reset(c *gin.Context) {
	a.controller.Reset()
	c.JSON(http.StatusOK, gin.H{"state": a.controller.Snapshot().State})
}

func (a *API) chat(c *gin.Context) {
	if a.bot == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": models.ErrVectorStoreUnavailable.Error()})
		return
	}
	var req struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	answer, err := a.bot.Answer(c.Request.Context(), req.Query)
	if err != nil {
		a.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

func (a *API) draft(c *gin.Context) {
	var req struct {
		DocumentType models.DocumentType `json:"document_type" binding:"required"`
		Salutation   string              `json:"salutation"`
		Text         string              `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := a.generator.GenerateDraft(c.Request.Context(), req.DocumentType, req.Salutation, req.Text)
	if err != nil {
		a.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// respondWorkflowError maps the error taxonomy onto HTTP statuses.
func (a *API) respondWorkflowError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, models.ErrExtractionFailed),
		errors.Is(err, models.ErrOpeningParseFailed),
		errors.Is(err, models.ErrBodyGenerationFailed):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrLLMTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, models.ErrLLMUnavailable),
		errors.Is(err, models.ErrOCRUnavailable),
		errors.Is(err, models.ErrVectorStoreUnavailable):
		status = http.StatusBadGateway
	}
	a.log.WithError(err).Warn("request failed")
	c.JSON(status, gin.H{"error": err.Error()})
}
