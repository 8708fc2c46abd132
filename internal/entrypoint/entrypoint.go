package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mrlokans/catalog/internal/audit"
	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
	auditrepo "github.com/mrlokans/catalog/internal/database/audit"
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	http_controllers "github.com/mrlokans/catalog/internal/http"
	"github.com/mrlokans/catalog/internal/scheduler"
	"github.com/mrlokans/catalog/internal/services"
	"github.com/mrlokans/catalog/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Catalog bundles the author and book services over one database.
type Catalog struct {
	Authors *services.AuthorService
	Books   *services.BookService
}

func NewCatalog(db *database.Database) Catalog {
	authorRepo := authors.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	return Catalog{
		Authors: services.NewAuthorService(authorRepo, bookRepo),
		Books:   services.NewBookService(bookRepo, authorRepo),
	}
}

// OpenDatabase opens and migrates the configured database.
func OpenDatabase(cfg *config.Config) (*database.Database, error) {
	return database.NewDatabase(cfg.Database.Path, database.Options{LogLevel: cfg.Database.LogLevel})
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Dur("timeout", timeout).Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	// Workers stop after the server so in-flight requests can still record
	// audit events.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Info().Msg("server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Info().Str("version", version).Msg("starting catalog")

	gin.SetMode(cfg.HTTP.GinMode)

	db, err := OpenDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}()

	catalog := NewCatalog(db)

	routerCfg := http_controllers.RouterConfig{
		AuthorService: catalog.Authors,
		BookService:   catalog.Books,
		Database:      db,
		Version:       version,
	}

	var auditService *audit.Service
	if cfg.Audit.Enabled {
		auditService = audit.NewService(auditrepo.NewRepository(db.DB))
		routerCfg.AuditLogger = auditService
		routerCfg.AuditReader = auditService
	}

	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled && auditService != nil {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize task queue")
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Error().Err(err).Msg("error closing task client")
			}
		}()

		taskClient.Register(tasks.NewCleanupAuditEventsQueue(auditService))
		routerCfg.TaskQueue = taskClient
		routerCfg.AuditRetentionDays = cfg.Audit.RetentionDays

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	var cleanupScheduler *scheduler.AuditCleanupScheduler
	var schedulerCancel context.CancelFunc
	if auditService != nil && cfg.Audit.CleanupSchedule != "" {
		var runner scheduler.CleanupRunner = scheduler.InlineRunner{Cleaner: auditService}
		if taskClient != nil {
			runner = scheduler.QueueRunner{Client: taskClient}
		}

		cleanupScheduler = scheduler.NewAuditCleanupScheduler(runner, cfg.Audit.CleanupSchedule, cfg.Audit.RetentionDays)
		var schedulerCtx context.Context
		schedulerCtx, schedulerCancel = context.WithCancel(context.Background())
		if err := cleanupScheduler.Start(schedulerCtx); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.Audit.CleanupSchedule).Msg("failed to start audit cleanup scheduler")
		}
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if cleanupScheduler != nil {
			cleanupScheduler.Stop()
			schedulerCancel()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
		if auditService != nil {
			auditService.Wait()
		}
	}

	Serve(router, cfg, onShutdown)
}
