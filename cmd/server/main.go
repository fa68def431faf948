package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"wildcats_backend/internal/config"
	"wildcats_backend/internal/handler"
	"wildcats_backend/internal/mailer"
	"wildcats_backend/internal/middleware"
	"wildcats_backend/internal/repository"
	"wildcats_backend/internal/service"
	"wildcats_backend/internal/store"
	"wildcats_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file found, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Info().Int("admin_accounts", len(cfg.AdminAccounts)).Str("env", cfg.Env).Msg("configuration loaded")

	// Ensure uploads directory exists
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.UploadsDir).Msg("failed to create uploads directory")
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpiryHours)
	mail := mailer.New(cfg.SMTP)

	// --- Initialize Store & Repositories ---
	dataStore := store.New(cfg.DataDir)
	submissionRepo := repository.NewSubmissionRepository(dataStore)
	serviceRequestRepo := repository.NewServiceRequestRepository(dataStore)
	clientRepo := repository.NewClientRepository(dataStore)
	teamRepo := repository.NewTeamRepository(dataStore)
	contentRepo := repository.NewContentRepository(dataStore)

	// --- Initialize Services ---
	authService := service.NewAuthService(cfg.AdminAccounts, clientRepo, jwtUtil)
	intakeService := service.NewIntakeService(submissionRepo, serviceRequestRepo, mail, logger)
	siteService := service.NewSiteService(teamRepo, contentRepo, cfg.UploadsDir)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, logger, cfg.Production())
	intakeHandler := handler.NewIntakeHandler(intakeService, logger, cfg.Production())
	siteHandler := handler.NewSiteHandler(siteService, logger, cfg.Production())
	diagHandler := handler.NewDiagHandler(mail.Enabled())

	// --- Setup Gin Router ---
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(recoveryMiddleware(logger, cfg.Production()))
	router.Use(middleware.SecureHeaders())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.NoRoute(handler.NotFoundHandler())
	router.Static("/uploads", cfg.UploadsDir)

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	adminMW := middleware.AdminMiddleware()
	// Strict budget bounds abuse on the public write endpoints; the general
	// budget covers the rest of /api.
	strictLimitMW := middleware.NewRateLimiter(5, 5).Handler()
	generalLimitMW := middleware.NewRateLimiter(60, 20).Handler()

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	apiGroup.Use(generalLimitMW)
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW, strictLimitMW)
	intakeHandler.RegisterIntakeRoutes(apiGroup, jwtAuthMW, adminMW, strictLimitMW)
	siteHandler.RegisterSiteRoutes(apiGroup, jwtAuthMW)
	diagHandler.RegisterDiagRoutes(apiGroup)

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exiting")
}

// recoveryMiddleware converts panics into 500 responses. The stack trace is
// included in the body only outside production.
func recoveryMiddleware(logger zerolog.Logger, production bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Msg("handler panicked")
		body := gin.H{"message": "Internal server error"}
		if !production {
			body["detail"] = recovered
			body["stack"] = string(debug.Stack())
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
