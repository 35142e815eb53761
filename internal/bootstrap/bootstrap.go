package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yusuf/schoolhub/internal/app/controllers"
	appMigrations "github.com/yusuf/schoolhub/internal/app/migrations"
	appRepos "github.com/yusuf/schoolhub/internal/app/repositories"
	appRoutes "github.com/yusuf/schoolhub/internal/app/routes"
	appServices "github.com/yusuf/schoolhub/internal/app/services"
	"github.com/yusuf/schoolhub/internal/config"
	"github.com/yusuf/schoolhub/internal/db"
	appMiddleware "github.com/yusuf/schoolhub/internal/middleware"
	"github.com/yusuf/schoolhub/internal/pkg/logger"
	"github.com/yusuf/schoolhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService    *appServices.CourseService
	MemberService    *appServices.MemberService
	CourseController *appControllers.CourseController
	MemberController *appControllers.MemberController
	ReportController *appControllers.ReportController
	Repos            *appRepos.Repositories
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Demo {
		if err := seed.CreateDemoData(context.Background(), dbPool, logger.WithField("component", "seed")); err != nil {
			// Demo data is a convenience; startup continues without it
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.MemberService = appServices.NewMemberService(deps.Repos.MemberRepository, deps.Repos.CourseRepository)

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.MemberController = appControllers.NewMemberController(deps.MemberService)
	deps.ReportController = appControllers.NewReportController(deps.MemberService, deps.CourseService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	// gin's default logger is replaced with the zerolog middleware
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.MemberController,
		deps.ReportController,
	)

	return router
}
