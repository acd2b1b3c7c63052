package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/eren/bootcamphub/internal/app/controllers"
	appRoutes "github.com/eren/bootcamphub/internal/app/routes"
	appServices "github.com/eren/bootcamphub/internal/app/services"
	"github.com/eren/bootcamphub/internal/app/store"
	"github.com/eren/bootcamphub/internal/config"
	appMiddleware "github.com/eren/bootcamphub/internal/middleware"
	"github.com/eren/bootcamphub/internal/pkg/logger"
	"github.com/eren/bootcamphub/internal/pkg/publisher"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store                *store.Store
	Publisher            publisher.Publisher
	BootcampService      appServices.BootcampService
	DirectoryService     appServices.DirectoryService
	SubmissionService    appServices.SubmissionService
	BootcampController   *appControllers.BootcampController
	DirectoryController  *appControllers.DirectoryController
	SubmissionController *appControllers.SubmissionController
	Logger               zerolog.Logger
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

// BuildDependencies initializes the store, publisher, services and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Store = store.NewStore(cfg.Data.Dir)
	lgr.Info().Str("dataDir", cfg.Data.Dir).Msg("Entity store initialized")

	githubClient := publisher.NewGitHubClient(context.Background(), cfg.GitHub.Token)
	deps.Publisher = publisher.NewGitHubPublisher(
		githubClient,
		cfg.GitHub.RepoOwner,
		cfg.GitHub.RepoName,
		cfg.GitHub.BaseBranch,
		lgr,
	)
	lgr.Info().
		Str("repo", cfg.GitHub.RepoOwner+"/"+cfg.GitHub.RepoName).
		Str("baseBranch", cfg.GitHub.BaseBranch).
		Msg("Change publisher initialized")

	deps.BootcampService = appServices.NewBootcampService(deps.Store)
	deps.DirectoryService = appServices.NewDirectoryService(deps.BootcampService)
	deps.SubmissionService = appServices.NewSubmissionService(deps.Store, deps.Publisher, lgr)

	deps.BootcampController = appControllers.NewBootcampController(deps.BootcampService)
	deps.DirectoryController = appControllers.NewDirectoryController(deps.DirectoryService)
	deps.SubmissionController = appControllers.NewSubmissionController(deps.SubmissionService)

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
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.BootcampController,
		deps.DirectoryController,
		deps.SubmissionController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
