package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/transcript-assistant/docs"
	"github.com/johnquangdev/transcript-assistant/internal/adapter/handler"
	"github.com/johnquangdev/transcript-assistant/internal/adapter/repository"
	"github.com/johnquangdev/transcript-assistant/internal/infrastructure/cache"
	"github.com/johnquangdev/transcript-assistant/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/transcript-assistant/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/transcript-assistant/internal/infrastructure/storage"
	analysisuse "github.com/johnquangdev/transcript-assistant/internal/usecase/analysis"
	transcriptuse "github.com/johnquangdev/transcript-assistant/internal/usecase/transcript"
	pkgai "github.com/johnquangdev/transcript-assistant/pkg/ai"
	"github.com/johnquangdev/transcript-assistant/pkg/config"
	"github.com/johnquangdev/transcript-assistant/pkg/jwt"
	pkglogger "github.com/johnquangdev/transcript-assistant/pkg/logger"
	pkgvalidator "github.com/johnquangdev/transcript-assistant/pkg/validator"
)

// @title           Transcript Assistant API
// @version         1.0
// @description     Builds speaker-grouped transcripts from diarization output and analyzes them with an LLM

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.BodyLimit("32M"))

	checks := map[string]handler.HealthCheck{}

	// Database
	logger.Info("connecting to database", zap.String("host", cfg.Database.Host), zap.String("name", cfg.Database.Name))
	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	// Schema migrations are embedded; production deployments run them
	// explicitly with `transcript migrate up`.
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			logger.Fatal("DB_AUTO_MIGRATE is enabled in production; disable it and run `transcript migrate up`")
		}
		applied, err := database.MigrateUp(db)
		if err != nil {
			logger.Fatal("failed to apply migrations", zap.Error(err))
		}
		logger.Info("migrations applied", zap.Int("count", applied))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to access sql.DB", zap.Error(err))
	}
	checks["database"] = sqlDB.PingContext

	// Analysis cache: Redis when enabled, in-process otherwise
	var analysisCache analysisuse.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.String("addr", cfg.GetRedisAddr()), zap.Error(err))
		}
		defer redisClient.Close()
		analysisCache = cache.NewRedisStore(redisClient, logger)
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	} else {
		memoryCache := cache.NewMemoryStore()
		defer memoryCache.Close()
		analysisCache = memoryCache
		logger.Warn("redis disabled, caching analyses in memory")
	}

	// Object storage
	var transcriptStore transcriptuse.ObjectStore
	var analysisStore analysisuse.ObjectStore
	if cfg.Storage.Enabled {
		initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		minioClient, err := storage.NewMinIOClient(initCtx, &cfg.Storage)
		cancel()
		if err != nil {
			logger.Fatal("failed to initialize object storage", zap.String("endpoint", cfg.Storage.Endpoint), zap.Error(err))
		}
		transcriptStore, analysisStore = minioClient, minioClient
		checks["storage"] = minioClient.Ping
	}

	// LLM analyzer. Without credentials the server still builds
	// transcripts; analysis endpoints answer 503.
	var analyzer pkgai.Analyzer
	chatAnalyzer, err := pkgai.NewChatAnalyzer(pkgai.ChatConfig{
		Provider:    cfg.Analysis.Provider,
		APIKey:      cfg.Analysis.APIKey(),
		BaseURL:     cfg.Analysis.BaseURL,
		Model:       cfg.Analysis.Model,
		Temperature: cfg.Analysis.Temperature,
		MaxTokens:   cfg.Analysis.MaxTokens,
		Timeout:     cfg.Analysis.Timeout,
	})
	if err != nil {
		logger.Warn("analysis disabled", zap.Error(err))
	} else {
		analyzer = chatAnalyzer
		logger.Info("analysis enabled",
			zap.String("provider", chatAnalyzer.Provider()),
			zap.String("model", chatAnalyzer.Model()),
		)
	}
	pricing := pkgai.GeminiFlashPricing
	if analyzer != nil {
		pricing = analyzer.Pricing()
	}

	// Repositories and services
	transcriptRepo := repository.NewTranscriptRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)

	transcriptService := transcriptuse.NewService(transcriptRepo, transcriptStore, logger)
	analysisService := analysisuse.NewService(analysisuse.Deps{
		Transcripts: transcriptRepo,
		Analyses:    analysisRepo,
		Analyzer:    analyzer,
		Cache:       analysisCache,
		CacheTTL:    cfg.Redis.AnalysisTTL,
		Store:       analysisStore,
		Logger:      logger,
	})

	deps := handler.RouterDeps{
		Transcript: handler.NewTranscript(transcriptService, cfg.Storage.URLExpiry, logger),
		Analysis:   handler.NewAnalysis(analysisService, pricing, logger),
		Checks:     checks,
	}

	// AssemblyAI callbacks are only accepted with a shared secret
	if cfg.AssemblyAI.APIKey != "" && cfg.AssemblyAI.WebhookSecret != "" {
		asmClient := pkgai.NewAssemblyAIClient(pkgai.AssemblyAIConfig{
			APIKey:  cfg.AssemblyAI.APIKey,
			BaseURL: cfg.AssemblyAI.BaseURL,
		})
		deps.Webhook = handler.NewAIWebhookHandler(asmClient, transcriptService, handler.AIWebhookConfig{
			AuthHeader: cfg.AssemblyAI.WebhookAuthHeader,
			Secret:     cfg.AssemblyAI.WebhookSecret,
			Upload:     transcriptStore != nil,
		}, logger)
	}

	if cfg.JWT.Secret != "" {
		jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiry)
		deps.AuthMW = httpmw.EchoAuth(jwtManager)
		deps.ScopeMW = httpmw.RequireScope
	} else {
		if cfg.IsProduction() {
			logger.Fatal("JWT_SECRET must be set in production")
		}
		logger.Warn("JWT_SECRET not set, API is served without authentication")
	}

	handler.NewRouter(cfg, deps).Setup(e)

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("server stopped gracefully")
}
