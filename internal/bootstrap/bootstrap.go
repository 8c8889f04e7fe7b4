package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/smart-beneficiary/sbms/internal/app/controllers"
	appMigrations "github.com/smart-beneficiary/sbms/internal/app/migrations"
	appRepos "github.com/smart-beneficiary/sbms/internal/app/repositories"
	appRoutes "github.com/smart-beneficiary/sbms/internal/app/routes"
	appServices "github.com/smart-beneficiary/sbms/internal/app/services"
	"github.com/smart-beneficiary/sbms/internal/config"
	"github.com/smart-beneficiary/sbms/internal/db"
	appMiddleware "github.com/smart-beneficiary/sbms/internal/middleware"
	"github.com/smart-beneficiary/sbms/internal/pkg/logger"
	"github.com/smart-beneficiary/sbms/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos *appRepos.Repositories

	EligibilityService  *appServices.EligibilityService
	CitizenService      *appServices.CitizenService
	CategoryService     *appServices.CategoryService
	SchemeService       *appServices.SchemeService
	RuleService         *appServices.RuleService
	ApplicationService  *appServices.ApplicationService
	GrievanceService    *appServices.GrievanceService
	AnnouncementService *appServices.AnnouncementService

	CitizenController      *appControllers.CitizenController
	CategoryController     *appControllers.CategoryController
	EligibilityController  *appControllers.EligibilityController
	SchemeController       *appControllers.SchemeController
	RuleController         *appControllers.RuleController
	ApplicationController  *appControllers.ApplicationController
	GrievanceController    *appControllers.GrievanceController
	AnnouncementController *appControllers.AnnouncementController

	Logger zerolog.Logger
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// A failed seed leaves an empty but functional system.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.EligibilityService = appServices.NewEligibilityService(
		deps.Repos.CitizenRepository,
		deps.Repos.InterestRepository,
		deps.Repos.RuleRepository,
		deps.Repos.EligibilityRepository,
		cfg.Engine.SyncFanoutThreshold,
		cfg.Engine.FanoutWorkers,
	)

	deps.CitizenService = appServices.NewCitizenService(deps.Repos.CitizenRepository, deps.EligibilityService)
	deps.CategoryService = appServices.NewCategoryService(
		deps.Repos.CategoryRepository,
		deps.Repos.InterestRepository,
		deps.Repos.CitizenRepository,
		deps.EligibilityService,
	)
	deps.SchemeService = appServices.NewSchemeService(
		deps.Repos.SchemeRepository,
		deps.Repos.CategoryRepository,
		deps.EligibilityService,
	)
	deps.RuleService = appServices.NewRuleService(
		deps.Repos.RuleRepository,
		deps.Repos.SchemeRepository,
		deps.Repos.CategoryRepository,
		deps.EligibilityService,
	)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.CitizenRepository,
		deps.Repos.SchemeRepository,
	)
	deps.GrievanceService = appServices.NewGrievanceService(
		deps.Repos.GrievanceRepository,
		deps.Repos.CitizenRepository,
		deps.Repos.SchemeRepository,
	)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.AnnouncementRepository)

	deps.CitizenController = appControllers.NewCitizenController(deps.CitizenService)
	deps.CategoryController = appControllers.NewCategoryController(deps.CategoryService)
	deps.EligibilityController = appControllers.NewEligibilityController(deps.EligibilityService)
	deps.SchemeController = appControllers.NewSchemeController(deps.SchemeService)
	deps.RuleController = appControllers.NewRuleController(deps.RuleService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService)
	deps.GrievanceController = appControllers.NewGrievanceController(deps.GrievanceService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService)

	return deps, nil
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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.CitizenController,
		deps.CategoryController,
		deps.EligibilityController,
		deps.SchemeController,
		deps.RuleController,
		deps.ApplicationController,
		deps.GrievanceController,
		deps.AnnouncementController,
	)

	// Liveness endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
