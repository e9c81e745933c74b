// File: loanguard/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loanguard/config"
	"loanguard/handlers"
	"loanguard/middleware"
	"loanguard/routes"
	"loanguard/services/faq"
	"loanguard/services/intelligence"
	"loanguard/services/session"
	"loanguard/utils"
	"loanguard/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.AppConfig.GeminiAPIKey == "" {
		logger.Sugar().Fatal("main: GEMINI_API_KEY is not set")
	}

	rootCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// Gemini client, shared by every request.
	gemini, err := intelligence.NewGeminiClient(rootCtx, intelligence.GeminiOptions{
		APIKey:      config.AppConfig.GeminiAPIKey,
		Model:       config.AppConfig.GeminiModel,
		Temperature: config.AppConfig.GeminiTemperature,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	defer gemini.Close()

	advisor := intelligence.NewLoanAdvisor(gemini, intelligence.AdvisorOptions{
		Timeout:      config.AppConfig.AITimeout,
		StrictSchema: config.AppConfig.StrictResponseSchema,
	}, logger.Named("advisor"))

	// Session store.
	var store session.Store
	switch config.AppConfig.SessionStore {
	case "redis":
		redisStore := session.NewRedisStore(utils.GetSessionCacheClient(), config.AppConfig.SessionTTL, logger.Named("session"))
		if key := config.AppConfig.SessionEncryptionKey; key != "" {
			sealer, err := session.NewSealer(key)
			if err != nil {
				logger.Sugar().Fatalf("main: invalid session encryption key: %v", err)
			}
			redisStore.WithSealer(sealer)
		}
		store = redisStore
	default:
		mem := session.NewMemoryStore(config.AppConfig.SessionTTL, time.Minute)
		defer mem.Close()
		store = mem
	}
	utils.StartHealthMonitor(rootCtx, config.AppConfig.SessionStore, store, 30*time.Second)

	tmpl, err := views.Load()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to parse templates: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.Use(middleware.SessionMiddleware(config.AppConfig.SessionTTL, config.AppConfig.CookieSecure))
	router.Use(middleware.RequestLogger(logger))
	router.SetHTMLTemplate(tmpl)

	loanHandler := handlers.NewLoanHandler(advisor, store, faq.MustCategories())
	routes.RegisterRoutes(router, handlers.NewHandlerBundle(loanHandler))

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting server",
		zap.String("addr", srv.Addr),
		zap.String("model", config.AppConfig.GeminiModel),
		zap.String("sessionStore", config.AppConfig.SessionStore),
	)
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
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
