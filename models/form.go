package models

import "time"

// FieldType is the declared type of a form question.
type FieldType string

const (
	FieldText      FieldType = "text"
	FieldEmail     FieldType = "email"
	FieldTel       FieldType = "tel"
	FieldPhone     FieldType = "phone" // alias of FieldTel
	FieldDate      FieldType = "date"
	FieldSignature FieldType = "signature"
)

// FieldSpec describes one form question.
type FieldSpec struct {
	ID       string    `json:"id"`
	Question string    `json:"question"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required,omitempty"`
}

// FormSession is one form-filling run.
type FormSession struct {
	SessionID    string            `json:"sessionId"`
	Language     string            `json:"language"`
	Cursor       int               `json:"currentFieldIndex"`
	Answers      map[string]string `json:"formData"`
	Fields       []FieldSpec       `json:"fields"`
	UploadedForm bool              `json:"uploadedForm,omitempty"`
	FileName     string            `json:"fileName,omitempty"`
	FileType     string            `json:"fileType,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// Complete reports whether every field has been passed.
func (s *FormSession) Complete() bool {
	return s.Cursor >= len(s.Fields)
}

// FieldIndex returns the position of id in the session's field list, or -1.
func (s *FormSession) FieldIndex(id string) int {
	for i, f := range s.Fields {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// NormalizationResult is returned per answer and never stored as-is.
type NormalizationResult struct {
	Value    string `json:"value"`
	Original string `json:"original"`
	Field    string `json:"field"`
}

// AnswerRequest is the payload of POST /api/answer.
type AnswerRequest struct {
	Answer    string    `json:"answer" binding:"required"`
	Field     string    `json:"field" binding:"required"`
	FieldType FieldType `json:"fieldType"`
	Language  string    `json:"language"`
}

// StartRequest is the payload of POST /api/start.
type StartRequest struct {
	Language string `json:"language"`
}

// TranslateRequest is the payload of POST /api/translate.
type TranslateRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
}

// RenderRequest is the payload of POST /api/generate-pdf.
type RenderRequest struct {
	FormData map[string]string `json:"formData" binding:"required"`
	Language string            `json:"language"`
}

// CommitRequest is the payload of POST /api/session/:sessionId/answer.
type CommitRequest struct {
	Field  string `json:"field" binding:"required"`
	Answer string `json:"answer" binding:"required"`
}

// Question is a localized prompt for one field.
type Question struct {
	Question         string    `json:"question"`
	OriginalQuestion string    `json:"originalQuestion"`
	FieldID          string    `json:"fieldId"`
	FieldType        FieldType `json:"fieldType"`
	FieldIndex       int       `json:"fieldIndex"`
	TotalFields      int       `json:"totalFields"`
}

// StartResult is what starting a session yields.
type StartResult struct {
	SessionID string `json:"sessionId"`
	Question
}

// UploadResult is what uploading a form yields.
type UploadResult struct {
	SessionID       string      `json:"sessionId"`
	FileName        string      `json:"fileName"`
	FileType        string      `json:"fileType"`
	ExtractedFields []FieldSpec `json:"extractedFields"`
	TotalFields     int         `json:"totalFields"`
}

// Progress is the state of a session after a committed answer or on lookup.
type Progress struct {
	SessionID   string            `json:"sessionId"`
	Language    string            `json:"language"`
	Cursor      int               `json:"fieldIndex"`
	TotalFields int               `json:"totalFields"`
	Complete    bool              `json:"complete"`
	Answers     map[string]string `json:"formData"`
	Next        *Question         `json:"nextField,omitempty"`
	Message     string            `json:"message,omitempty"`
}

// CommitResult pairs the stored value with the session progress.
type CommitResult struct {
	NormalizationResult
	Progress
}
