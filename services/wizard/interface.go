package wizard

import (
	"context"

	"voiceform/models"
)

// WizardService sequences questions and normalizes spoken answers.
type WizardService interface {
	Start(ctx context.Context, language string) (*models.StartResult, error)
	SubmitAnswer(ctx context.Context, req models.AnswerRequest) (*models.NormalizationResult, error)
	UploadForm(ctx context.Context, fileName, mimeType string) (*models.UploadResult, error)
	Translate(ctx context.Context, text, language string) (string, error)
	FormStructure() []models.FieldSpec

	RecordAnswer(ctx context.Context, sessionID, fieldID, answer string) (*models.CommitResult, error)
	GetSession(ctx context.Context, sessionID string) (*models.Progress, error)

	RenderDocument(ctx context.Context, formData map[string]string, language string) ([]byte, error)
	RenderSession(ctx context.Context, sessionID string) ([]byte, error)
}
