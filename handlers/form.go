package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"voiceform/models"
	"voiceform/services/intake"
	"voiceform/services/session"
	"voiceform/services/wizard"
	"voiceform/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgStartFailed     = "Failed to start form"
	msgMissingParams   = "Missing required parameters"
	msgAnswerFailed    = "Failed to process answer"
	msgNoText          = "No text provided"
	msgTranslateFailed = "Failed to translate text"
	msgNoFormData      = "No form data provided"
	msgPDFFailed       = "Failed to generate PDF"
	msgNoFile          = "No file provided"
	msgFileTooLarge    = "File too large"
	msgInvalidFileType = "Invalid file type. Please upload PDF, JPG, PNG, or DOC files."
	msgUploadFailed    = "Failed to process uploaded form"
	msgSessionNotFound = "Session not found"
	msgSessionFailed   = "Failed to load session"

	pdfFileName = "filled-form.pdf"
	sniffBytes  = 512
)

// FormHandler exposes the wizard over HTTP.
type FormHandler struct {
	Wizard         wizard.WizardService
	MaxUploadBytes int64
	Version        string
}

func NewFormHandler(svc wizard.WizardService, maxUploadBytes int64, version string) *FormHandler {
	return &FormHandler{Wizard: svc, MaxUploadBytes: maxUploadBytes, Version: version}
}

// StartHandler creates a session and returns its first question.
func (h *FormHandler) StartHandler(c *gin.Context) {
	var req models.StartRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusInternalServerError, msgStartFailed, err)
		return
	}
	res, err := h.Wizard.Start(c.Request.Context(), req.Language)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, msgStartFailed, err)
		return
	}
	utils.JSONSuccess(c, gin.H{
		"sessionId":        res.SessionID,
		"question":         res.Question.Question,
		"originalQuestion": res.OriginalQuestion,
		"fieldId":          res.FieldID,
		"fieldType":        res.FieldType,
		"fieldIndex":       res.FieldIndex,
		"totalFields":      res.TotalFields,
	})
}

// AnswerHandler normalizes one spoken answer. No session is modified.
func (h *FormHandler) AnswerHandler(c *gin.Context) {
	var req models.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, msgMissingParams, err)
		return
	}
	res, err := h.Wizard.SubmitAnswer(c.Request.Context(), req)
	if errors.Is(err, wizard.ErrInvalidRequest) {
		utils.JSONError(c, http.StatusBadRequest, msgMissingParams, err)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, msgAnswerFailed, err)
		return
	}
	utils.JSONSuccess(c, gin.H{
		"value":    res.Value,
		"original": res.Original,
		"field":    res.Field,
	})
}

func (h *FormHandler) TranslateHandler(c *gin.Context) {
	var req models.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, msgNoText, err)
		return
	}
	language := req.Language
	if language == "" {
		language = "en"
	}
	out, err := h.Wizard.Translate(c.Request.Context(), req.Text, language)
	if errors.Is(err, wizard.ErrInvalidRequest) {
		utils.JSONError(c, http.StatusBadRequest, msgNoText, err)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, msgTranslateFailed, err)
		return
	}
	utils.JSONSuccess(c, gin.H{
		"originalText":   req.Text,
		"translatedText": out,
		"language":       language,
	})
}

func writePDF(c *gin.Context, doc []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+pdfFileName+`"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

// GeneratePDFHandler renders caller-supplied form data against the default schema.
func (h *FormHandler) GeneratePDFHandler(c *gin.Context) {
	var req models.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, msgNoFormData, err)
		return
	}
	doc, err := h.Wizard.RenderDocument(c.Request.Context(), req.FormData, req.Language)
	if errors.Is(err, wizard.ErrInvalidRequest) {
		utils.JSONError(c, http.StatusBadRequest, msgNoFormData, err)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, msgPDFFailed, err)
		return
	}
	writePDF(c, doc)
}

func readHead(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return head[:n], nil
}

// UploadFormHandler classifies an uploaded document and opens a session for it.
func (h *FormHandler) UploadFormHandler(c *gin.Context) {
	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.JSONError(c, http.StatusRequestEntityTooLarge, msgFileTooLarge, err)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, msgNoFile, err)
		return
	}

	head, err := readHead(fileHeader)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, msgUploadFailed, err)
		return
	}
	mimeType := intake.DetectType(fileHeader.Header.Get("Content-Type"), head)

	res, err := h.Wizard.UploadForm(c.Request.Context(), fileHeader.Filename, mimeType)
	if errors.Is(err, wizard.ErrUnsupportedMediaType) {
		utils.JSONError(c, http.StatusBadRequest, msgInvalidFileType, err)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, msgUploadFailed, err)
		return
	}
	getLogger(c).Info("form uploaded",
		zap.String("sessionId", res.SessionID),
		zap.String("fileName", res.FileName),
		zap.Int64("size", fileHeader.Size),
	)
	utils.JSONSuccess(c, gin.H{
		"sessionId":       res.SessionID,
		"fileName":        res.FileName,
		"fileType":        res.FileType,
		"extractedFields": res.ExtractedFields,
		"totalFields":     res.TotalFields,
	})
}

func (h *FormHandler) HealthHandler(c *gin.Context) {
	body := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"version":   h.Version,
	}
	if health := utils.GetHealthStatus(); health.Redis != nil {
		body["redis"] = *health.Redis
	}
	c.JSON(http.StatusOK, body)
}

type fieldView struct {
	ID       string           `json:"id"`
	Question string           `json:"question"`
	Type     models.FieldType `json:"type"`
}

func (h *FormHandler) FormStructureHandler(c *gin.Context) {
	fields := h.Wizard.FormStructure()
	views := make([]fieldView, len(fields))
	for i, f := range fields {
		views[i] = fieldView{ID: f.ID, Question: f.Question, Type: f.Type}
	}
	utils.JSONSuccess(c, gin.H{"fields": views})
}

// MessageHandler is kept for clients that probe the legacy liveness path.
func (h *FormHandler) MessageHandler(c *gin.Context) {
	c.String(http.StatusOK, "Voice Form Assistant is running!")
}

func (h *FormHandler) sessionError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, msgSessionNotFound, err)
	case errors.Is(err, wizard.ErrInvalidRequest):
		utils.JSONError(c, http.StatusBadRequest, msgMissingParams, err)
	default:
		utils.JSONError(c, http.StatusInternalServerError, fallback, err)
	}
}

// CommitAnswerHandler stores a normalized answer in the session and reports progress.
func (h *FormHandler) CommitAnswerHandler(c *gin.Context) {
	var req models.CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, msgMissingParams, err)
		return
	}
	res, err := h.Wizard.RecordAnswer(c.Request.Context(), c.Param("sessionId"), req.Field, req.Answer)
	if err != nil {
		h.sessionError(c, err, msgAnswerFailed)
		return
	}
	payload := gin.H{
		"value":       res.Value,
		"original":    res.Original,
		"field":       res.Field,
		"fieldIndex":  res.Cursor,
		"totalFields": res.TotalFields,
		"complete":    res.Complete,
	}
	if res.Next != nil {
		payload["nextField"] = res.Next
	}
	if res.Message != "" {
		payload["message"] = res.Message
	}
	utils.JSONSuccess(c, payload)
}

func (h *FormHandler) GetSessionHandler(c *gin.Context) {
	progress, err := h.Wizard.GetSession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		h.sessionError(c, err, msgSessionFailed)
		return
	}
	utils.JSONSuccess(c, gin.H{"session": progress})
}

func (h *FormHandler) SessionPDFHandler(c *gin.Context) {
	doc, err := h.Wizard.RenderSession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		h.sessionError(c, err, msgPDFFailed)
		return
	}
	writePDF(c, doc)
}
