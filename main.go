// File: voiceform/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voiceform/config"
	"voiceform/handlers"
	"voiceform/middleware"
	"voiceform/routes"
	"voiceform/services/document"
	"voiceform/services/localization"
	"voiceform/services/session"
	"voiceform/services/wizard"
	"voiceform/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func newSessionStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (session.Store, *redis.Client, error) {
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		client, err := utils.InitSessionCache(cfg)
		if err != nil {
			return nil, nil, err
		}
		return session.NewRedisStore(client, cfg.SessionTTL), client, nil
	default:
		if cfg.SessionBackend != config.SessionBackendMemory {
			logger.Warn("main: unknown session backend, using memory", zap.String("backend", cfg.SessionBackend))
		}
		store := session.NewMemoryStore(cfg.SessionTTL)
		store.StartSweeper(ctx, cfg.SessionSweepInterval, logger)
		return store, nil, nil
	}
}

func newTranslator(ctx context.Context, cfg config.Config) (localization.Translator, func(), error) {
	table, err := localization.LoadTable(cfg.LocalesFile)
	if err != nil {
		return nil, nil, err
	}
	if cfg.GeminiAPIKey == "" {
		return table, func() {}, nil
	}
	gemini, err := localization.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, nil, err
	}
	return localization.NewChainTranslator(table, gemini), func() { _ = gemini.Close() }, nil
}

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, redisClient, err := newSessionStore(rootCtx, cfg, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize session store: %v", err)
	}
	utils.StartHealthMonitor(rootCtx, redisClient, time.Minute)

	translator, closeTranslator, err := newTranslator(rootCtx, cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize translator: %v", err)
	}
	defer closeTranslator()

	// services.
	wizardService := wizard.NewWizardService(store, translator, document.NewPDFRenderer(), logger)
	formHandler := handlers.NewFormHandler(wizardService, cfg.MaxUploadBytes, cfg.AppVersion)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(formHandler), cfg.AllowedOrigins())

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s (session backend: %s)...", srv.Addr, cfg.SessionBackend)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	cancel()

	ctx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
