package routes

import (
	"net/http"
	"time"

	"voiceform/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFormRoutes registers the form wizard endpoints.
func RegisterFormRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/start", hb.StartHandler)
		api.POST("/answer", hb.AnswerHandler)
		api.POST("/translate", hb.TranslateHandler)
		api.POST("/generate-pdf", hb.GeneratePDFHandler)
		api.POST("/upload-form", hb.UploadFormHandler)
		api.GET("/form-structure", hb.FormStructureHandler)
	}
}

// RegisterSessionRoutes registers endpoints that read or commit to a stored session.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	sessionGroup := r.Group("/api/session/:sessionId")
	{
		sessionGroup.GET("", hb.GetSessionHandler)
		sessionGroup.POST("/answer", hb.CommitAnswerHandler)
		sessionGroup.GET("/pdf", hb.SessionPDFHandler)
	}
}

// RegisterHealthRoute registers health-check endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/health", hb.HealthHandler)
	r.GET("/message", hb.MessageHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowOrigins []string) {
	allowAll := len(allowOrigins) == 1 && allowOrigins[0] == "*"
	corsCfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	// Credentials cannot be combined with a wildcard origin.
	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowOrigins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	RegisterFormRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
