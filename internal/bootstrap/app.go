package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-screener/internal/analysis"
	"resume-screener/internal/candidates"
	"resume-screener/internal/companies"
	"resume-screener/internal/screenings"
	"resume-screener/internal/shared/config"
	"resume-screener/internal/shared/server"
	"resume-screener/internal/shared/storage/db"
	"resume-screener/internal/shared/storage/object"
	localstore "resume-screener/internal/shared/storage/object/local"
	s3store "resume-screener/internal/shared/storage/object/s3"
	"resume-screener/internal/uploads"
)

// App holds shared dependencies wired for serving.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Engine *analysis.Engine

	CompaniesRepo  companies.Repo
	CandidatesRepo candidates.Repo

	CompaniesService  *companies.Service
	CandidatesService *candidates.Service
	ScreeningsService *screenings.Service
	UploadsService    *uploads.Service

	CompaniesHandler  *companies.Handler
	CandidatesHandler *candidates.Handler
	ScreeningsHandler *screenings.Handler
	UploadsHandler    *uploads.Handler
}

// Build prepares shared dependencies and the router. Schema migrations
// are not run here; cmd/migrate owns those.
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
		Engine: analysis.NewEngine(nil),
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		CompaniesHandler:  app.CompaniesHandler,
		CandidatesHandler: app.CandidatesHandler,
		ScreeningsHandler: app.ScreeningsHandler,
		UploadsHandler:    app.UploadsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var companiesRepo companies.Repo
	var candidatesRepo candidates.Repo

	if app.DB != nil {
		companiesRepo = &companies.PGRepo{DB: app.DB}
		candidatesRepo = &candidates.PGRepo{DB: app.DB}
	} else {
		companiesRepo = companies.NewMemoryRepo()
		candidatesRepo = candidates.NewMemoryRepo()
	}

	companiesSvc := &companies.Service{Repo: companiesRepo}
	candidatesSvc := &candidates.Service{Repo: candidatesRepo}
	screeningsSvc := screenings.NewService(app.Engine, companiesRepo, candidatesRepo)
	uploadsSvc := uploads.NewService(app.Store, screeningsSvc)

	app.CompaniesRepo = companiesRepo
	app.CandidatesRepo = candidatesRepo
	app.CompaniesService = companiesSvc
	app.CandidatesService = candidatesSvc
	app.ScreeningsService = screeningsSvc
	app.UploadsService = uploadsSvc
	app.CompaniesHandler = companies.NewHandler(companiesSvc)
	app.CandidatesHandler = candidates.NewHandler(candidatesSvc)
	app.ScreeningsHandler = screenings.NewHandler(screeningsSvc)
	app.UploadsHandler = uploads.NewHandler(uploadsSvc, app.Config.MaxUploadMB)
}
