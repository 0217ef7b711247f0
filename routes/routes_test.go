package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"voiceform/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func stubBundle() *handlers.HandlerBundle {
	ok := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) { c.String(http.StatusOK, name) }
	}
	return &handlers.HandlerBundle{
		StartHandler:         ok("start"),
		AnswerHandler:        ok("answer"),
		TranslateHandler:     ok("translate"),
		GeneratePDFHandler:   ok("pdf"),
		UploadFormHandler:    ok("upload"),
		FormStructureHandler: ok("structure"),
		CommitAnswerHandler:  ok("commit"),
		GetSessionHandler:    ok("session"),
		SessionPDFHandler:    ok("session-pdf"),
		HealthHandler:        ok("health"),
		MessageHandler:       ok("message"),
	}
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, stubBundle(), []string{"*"})

	cases := []struct {
		method, path, want string
	}{
		{http.MethodPost, "/api/start", "start"},
		{http.MethodPost, "/api/answer", "answer"},
		{http.MethodPost, "/api/translate", "translate"},
		{http.MethodPost, "/api/generate-pdf", "pdf"},
		{http.MethodPost, "/api/upload-form", "upload"},
		{http.MethodGet, "/api/form-structure", "structure"},
		{http.MethodPost, "/api/session/abc/answer", "commit"},
		{http.MethodGet, "/api/session/abc", "session"},
		{http.MethodGet, "/api/session/abc/pdf", "session-pdf"},
		{http.MethodGet, "/api/health", "health"},
		{http.MethodGet, "/message", "message"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, http.NoBody))
		assert.Equal(t, http.StatusOK, w.Code, tc.path)
		assert.Equal(t, tc.want, w.Body.String(), tc.path)
	}
}

func TestRegisterRoutes_CORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Run("Should allow any origin with a wildcard", func(t *testing.T) {
		r := gin.New()
		RegisterRoutes(r, stubBundle(), []string{"*"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody)
		req.Header.Set("Origin", "https://forms.example")
		r.ServeHTTP(w, req)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
	t.Run("Should reject origins outside an explicit list", func(t *testing.T) {
		r := gin.New()
		RegisterRoutes(r, stubBundle(), []string{"https://forms.example"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody)
		req.Header.Set("Origin", "https://evil.example")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
