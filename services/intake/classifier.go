// Package intake derives a form field set from an uploaded document. No
// content is read: classification depends on the mime type alone.
package intake

import (
	"errors"
	"mime"
	"strings"

	"voiceform/models"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MimePDF  = "application/pdf"
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimeDOC  = "application/msword"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedType is returned for mime types outside the allow-list.
var ErrUnsupportedType = errors.New("invalid file type. Please upload PDF, JPG, PNG, or DOC files")

var allowedTypes = map[string]bool{
	MimePDF:  true,
	MimeJPEG: true,
	MimePNG:  true,
	MimeDOC:  true,
	MimeDOCX: true,
}

// DocumentFields is extracted from scanned documents and images.
var DocumentFields = []models.FieldSpec{
	{ID: "fullName", Question: "Full Name", Type: models.FieldText, Required: true},
	{ID: "email", Question: "Email Address", Type: models.FieldEmail, Required: true},
	{ID: "phone", Question: "Phone Number", Type: models.FieldTel, Required: false},
	{ID: "address", Question: "Address", Type: models.FieldText, Required: false},
	{ID: "signature", Question: "Signature", Type: models.FieldSignature, Required: true},
	{ID: "date", Question: "Date", Type: models.FieldDate, Required: false},
}

// WordProcessorFields is extracted from word-processor documents.
var WordProcessorFields = []models.FieldSpec{
	{ID: "applicantName", Question: "Applicant Name", Type: models.FieldText, Required: true},
	{ID: "idNumber", Question: "ID Number", Type: models.FieldText, Required: true},
	{ID: "contact", Question: "Contact Number", Type: models.FieldTel, Required: true},
	{ID: "email", Question: "Email", Type: models.FieldEmail, Required: false},
	{ID: "reference", Question: "Reference Number", Type: models.FieldText, Required: false},
}

// BaseType strips parameters such as "; charset=binary" and lower-cases.
func BaseType(mimeType string) string {
	if mt, _, err := mime.ParseMediaType(mimeType); err == nil {
		return mt
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

// Allowed reports whether mimeType is on the upload allow-list.
func Allowed(mimeType string) bool {
	return allowedTypes[BaseType(mimeType)]
}

// Classify returns a fresh copy of the field set for mimeType.
func Classify(mimeType string) ([]models.FieldSpec, error) {
	mt := BaseType(mimeType)
	if !allowedTypes[mt] {
		return nil, ErrUnsupportedType
	}
	var src []models.FieldSpec
	switch {
	case mt == MimePDF || strings.HasPrefix(mt, "image/"):
		src = DocumentFields
	case strings.Contains(mt, "word"):
		src = WordProcessorFields
	}
	out := make([]models.FieldSpec, len(src))
	copy(out, src)
	return out, nil
}

// DetectType resolves the mime type of an upload. A declared type always
// wins, generic ones included; head is sniffed only when nothing was declared.
func DetectType(declared string, head []byte) string {
	if mt := BaseType(declared); mt != "" {
		return mt
	}
	if len(head) == 0 {
		return ""
	}
	return BaseType(mimetype.Detect(head).String())
}
