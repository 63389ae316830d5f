package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/meeting-notes/docs"
	"github.com/johnquangdev/meeting-notes/internal/adapter/handler"
	"github.com/johnquangdev/meeting-notes/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-notes/internal/usecase/export"
	"github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-notes/internal/usecase/notes"
	"github.com/johnquangdev/meeting-notes/internal/usecase/progress"
	"github.com/johnquangdev/meeting-notes/internal/usecase/stats"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	pkglogger "github.com/johnquangdev/meeting-notes/pkg/logger"
	pkgvalidator "github.com/johnquangdev/meeting-notes/pkg/validator"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return runServer(cmd.Context(), cfg)
		},
	}
}

// namedModel is a notes model that can report which remote model it calls
type namedModel interface {
	notes.Model
	Name() string
}

func newModel(ctx context.Context, cfg *config.Config) (namedModel, error) {
	switch cfg.AI.Provider {
	case config.AIProviderAssemblyAI:
		groq := pkgai.NewGroqClient(&cfg.Groq)
		name := "assemblyai+" + groq.Name()
		return pkgai.NewTranscribeThenSummarize(pkgai.NewAssemblyAIClient(&cfg.Assembly), groq, name), nil
	default:
		return pkgai.NewGeminiClient(ctx, &cfg.Gemini)
	}
}

func newCache(cfg *config.Config) (cache.Cache, func(), error) {
	if !cfg.Redis.Enabled {
		mem := cache.NewMemoryStore(cfg.Stats.CacheTTL)
		return mem, func() { _ = mem.Close() }, nil
	}

	log.Println("📦 Connecting to Redis...")
	client, err := cache.NewRedisClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisStore(client), func() { _ = client.Close() }, nil
}

func runServer(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}

	logger, err := pkglogger.New(cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	log.Println("🔧 Initializing dependencies...")

	log.Println("📦 Connecting to database...")
	db, err := database.NewDB(cfg)
	if err != nil {
		return err
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			log.Println("⚠️  DB_AUTO_MIGRATE is enabled in production; prefer the migrate command")
		}
		if err := database.AutoMigrate(db, cfg.Database.Driver); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; run the migrate command to manage the schema")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	log.Printf("🗄️  Initializing %s storage...", cfg.Storage.Type)
	store, err := storage.New(&cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	statsCache, closeCache, err := newCache(cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	log.Println("📈 Registering metrics...")
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry)

	log.Printf("🤖 Initializing %s notes model...", cfg.AI.Provider)
	model, err := newModel(parent, cfg)
	if err != nil {
		return err
	}

	log.Println("⚙️  Initializing services...")
	repo := repository.NewMeetingRepository(db)
	extractor := notes.NewExtractor(model, logger.Named("notes"), m)
	meetingService := meeting.NewService(repo, store, extractor, model.Name(), logger.Named("meeting"), m)
	exportService := export.NewService(repo, store, logger.Named("export"), m)
	statsService := stats.NewService(repo, statsCache, cfg.Stats.CacheTTL, logger.Named("stats"), m)
	emitter := progress.NewEmitter(progress.Config{
		FirstPhase: progress.Phase(cfg.Progress.FirstPhase),
		PhaseTick:  cfg.Progress.PhaseTick,
		NotesTick:  cfg.Progress.NotesTick,
	})

	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg,
		handler.NewMeetingHandler(meetingService, emitter, m, logger.Named("http")),
		handler.NewExportHandler(exportService, logger.Named("http")),
		handler.NewStatsHandler(statsService, logger.Named("http")),
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		sqlDB,
	)
	router.Setup(e)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server.shutdown.forced", zap.Error(err))
		return err
	}

	log.Println("✅ Server stopped gracefully")
	return nil
}
