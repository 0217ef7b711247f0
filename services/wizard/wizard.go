// Package wizard drives a session through its field list one question at a time.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voiceform/models"
	"voiceform/services/document"
	"voiceform/services/intake"
	"voiceform/services/localization"
	"voiceform/services/normalizer"
	"voiceform/services/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultLanguage = "en"

// DefaultWizardService is the production WizardService.
//
// The caller names the field each answer belongs to; the stored cursor only
// records how far the session has progressed and is never enforced.
type DefaultWizardService struct {
	Store      session.Store
	Translator localization.Translator
	Renderer   document.Renderer
	Logger     *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewWizardService(store session.Store, tr localization.Translator, renderer document.Renderer, logger *zap.Logger) *DefaultWizardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultWizardService{
		Store:      store,
		Translator: tr,
		Renderer:   renderer,
		Logger:     logger,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}

func languageOrDefault(language string) string {
	if language == "" {
		return defaultLanguage
	}
	return language
}

func (w *DefaultWizardService) Start(ctx context.Context, language string) (*models.StartResult, error) {
	language = languageOrDefault(language)
	now := w.now().UTC()
	fs := &models.FormSession{
		SessionID: w.newID(),
		Language:  language,
		Cursor:    0,
		Answers:   map[string]string{},
		Fields:    defaultFields(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	q, err := w.question(ctx, fs.Fields, 0, language)
	if err != nil {
		return nil, err
	}
	if err := w.Store.Put(ctx, fs); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	w.Logger.Info("form session started",
		zap.String("sessionId", fs.SessionID),
		zap.String("language", language),
	)
	return &models.StartResult{SessionID: fs.SessionID, Question: *q}, nil
}

// SubmitAnswer normalizes an answer without touching any session.
func (w *DefaultWizardService) SubmitAnswer(_ context.Context, req models.AnswerRequest) (*models.NormalizationResult, error) {
	if req.Answer == "" || req.Field == "" {
		return nil, ErrInvalidRequest
	}
	language := languageOrDefault(req.Language)
	res := normalizer.Result(req.Answer, req.FieldType, language, req.Field)
	if !normalizer.Recognized(req.Answer, req.FieldType) {
		w.Logger.Debug("answer did not match a structured pattern",
			zap.String("field", req.Field),
			zap.String("fieldType", string(req.FieldType)),
		)
	}
	return &res, nil
}

func (w *DefaultWizardService) UploadForm(ctx context.Context, fileName, mimeType string) (*models.UploadResult, error) {
	fields, err := intake.Classify(mimeType)
	if errors.Is(err, intake.ErrUnsupportedType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mimeType)
	}
	if err != nil {
		return nil, err
	}

	now := w.now().UTC()
	fileType := intake.BaseType(mimeType)
	fs := &models.FormSession{
		SessionID:    w.newID(),
		Language:     defaultLanguage,
		Answers:      map[string]string{},
		Fields:       fields,
		UploadedForm: true,
		FileName:     fileName,
		FileType:     fileType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := w.Store.Put(ctx, fs); err != nil {
		return nil, fmt.Errorf("create upload session: %w", err)
	}
	w.Logger.Info("uploaded form classified",
		zap.String("sessionId", fs.SessionID),
		zap.String("fileType", fileType),
		zap.Int("fields", len(fields)),
	)
	return &models.UploadResult{
		SessionID:       fs.SessionID,
		FileName:        fileName,
		FileType:        fileType,
		ExtractedFields: fields,
		TotalFields:     len(fields),
	}, nil
}

func (w *DefaultWizardService) Translate(ctx context.Context, text, language string) (string, error) {
	if text == "" {
		return "", ErrInvalidRequest
	}
	return w.Translator.Translate(ctx, text, languageOrDefault(language))
}

func (w *DefaultWizardService) FormStructure() []models.FieldSpec {
	return defaultFields()
}

// RecordAnswer stores the normalized answer under fieldID and advances the
// cursor past that field. Concurrent calls for one session are last-write-wins.
func (w *DefaultWizardService) RecordAnswer(ctx context.Context, sessionID, fieldID, answer string) (*models.CommitResult, error) {
	if fieldID == "" || answer == "" {
		return nil, ErrInvalidRequest
	}
	fs, err := w.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	idx := fs.FieldIndex(fieldID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidRequest, fieldID)
	}

	field := fs.Fields[idx]
	res := normalizer.Result(answer, field.Type, fs.Language, fieldID)
	if fs.Answers == nil {
		fs.Answers = map[string]string{}
	}
	fs.Answers[fieldID] = res.Value
	if idx+1 > fs.Cursor {
		fs.Cursor = idx + 1
	}
	fs.UpdatedAt = w.now().UTC()
	if err := w.Store.Put(ctx, fs); err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}

	progress, err := w.progress(ctx, fs)
	if err != nil {
		return nil, err
	}
	return &models.CommitResult{NormalizationResult: res, Progress: *progress}, nil
}

func (w *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.Progress, error) {
	fs, err := w.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return w.progress(ctx, fs)
}

func (w *DefaultWizardService) RenderDocument(_ context.Context, formData map[string]string, language string) ([]byte, error) {
	if formData == nil {
		return nil, ErrInvalidRequest
	}
	return w.Renderer.Render(defaultFields(), formData, languageOrDefault(language))
}

func (w *DefaultWizardService) RenderSession(ctx context.Context, sessionID string) ([]byte, error) {
	fs, err := w.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return w.Renderer.Render(fs.Fields, fs.Answers, fs.Language)
}

func (w *DefaultWizardService) progress(ctx context.Context, fs *models.FormSession) (*models.Progress, error) {
	p := &models.Progress{
		SessionID:   fs.SessionID,
		Language:    fs.Language,
		Cursor:      fs.Cursor,
		TotalFields: len(fs.Fields),
		Complete:    fs.Complete(),
		Answers:     fs.Answers,
	}
	if p.Complete {
		msg, err := w.Translator.Translate(ctx, CompletionMessage, fs.Language)
		if err != nil {
			return nil, fmt.Errorf("localize completion message: %w", err)
		}
		p.Message = msg
		return p, nil
	}
	q, err := w.question(ctx, fs.Fields, fs.Cursor, fs.Language)
	if err != nil {
		return nil, err
	}
	p.Next = q
	return p, nil
}

func (w *DefaultWizardService) question(ctx context.Context, fields []models.FieldSpec, idx int, language string) (*models.Question, error) {
	f := fields[idx]
	text, err := w.Translator.Translate(ctx, f.Question, language)
	if err != nil {
		return nil, fmt.Errorf("localize prompt %s: %w", f.ID, err)
	}
	return &models.Question{
		Question:         text,
		OriginalQuestion: f.Question,
		FieldID:          f.ID,
		FieldType:        f.Type,
		FieldIndex:       idx,
		TotalFields:      len(fields),
	}, nil
}
