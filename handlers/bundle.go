// File: voiceform/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Form wizard endpoints
	StartHandler         gin.HandlerFunc
	AnswerHandler        gin.HandlerFunc
	TranslateHandler     gin.HandlerFunc
	GeneratePDFHandler   gin.HandlerFunc
	UploadFormHandler    gin.HandlerFunc
	FormStructureHandler gin.HandlerFunc

	// Session endpoints
	CommitAnswerHandler gin.HandlerFunc
	GetSessionHandler   gin.HandlerFunc
	SessionPDFHandler   gin.HandlerFunc

	// Status endpoints
	HealthHandler  gin.HandlerFunc
	MessageHandler gin.HandlerFunc
}

// NewHandlerBundle wires every FormHandler endpoint into a bundle.
func NewHandlerBundle(h *FormHandler) *HandlerBundle {
	return &HandlerBundle{
		StartHandler:         h.StartHandler,
		AnswerHandler:        h.AnswerHandler,
		TranslateHandler:     h.TranslateHandler,
		GeneratePDFHandler:   h.GeneratePDFHandler,
		UploadFormHandler:    h.UploadFormHandler,
		FormStructureHandler: h.FormStructureHandler,

		CommitAnswerHandler: h.CommitAnswerHandler,
		GetSessionHandler:   h.GetSessionHandler,
		SessionPDFHandler:   h.SessionPDFHandler,

		HealthHandler:  h.HealthHandler,
		MessageHandler: h.MessageHandler,
	}
}
