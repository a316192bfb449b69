package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"vastu-backend/internal/analyses"
	"vastu-backend/internal/bookings"
	"vastu-backend/internal/services/health"
	"vastu-backend/internal/shared/config"
	"vastu-backend/internal/shared/server"
	"vastu-backend/internal/shared/storage/db"
	"vastu-backend/internal/shared/storage/object"
	localstore "vastu-backend/internal/shared/storage/object/local"
	s3store "vastu-backend/internal/shared/storage/object/s3"
	"vastu-backend/internal/uploads"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.Store

	AnalysesRepo    analyses.Repo
	BookingsRepo    bookings.Repo
	AnalysesService *analyses.Service
	BookingsService *bookings.Service
	UploadsService  *uploads.Service
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if app.DB != nil {
		app.AnalysesRepo = &analyses.PGRepo{DB: app.DB}
		app.BookingsRepo = &bookings.PGRepo{DB: app.DB}
	} else {
		app.AnalysesRepo = analyses.NewMemoryRepo()
		app.BookingsRepo = bookings.NewMemoryRepo()
	}

	app.AnalysesService = &analyses.Service{Repo: app.AnalysesRepo}
	app.BookingsService = &bookings.Service{Repo: app.BookingsRepo}
	app.UploadsService = &uploads.Service{Store: app.Store}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:   cfg,
		Analyses: analyses.NewHandler(app.AnalysesService),
		Bookings: bookings.NewHandler(app.BookingsService),
		Uploads:  uploads.NewHandler(app.UploadsService),
		Health:   health.New(app.DB),
	})

	return app, nil
}

// Close releases the shared database handle.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	a.DB = nil
	return db.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database not configured; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("database configuration is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Get(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir, cfg.PublicBaseURL), nil
	}
}

func isDevLike(env string) bool {
	switch env {
	case "dev", "local":
		return true
	default:
		return false
	}
}
