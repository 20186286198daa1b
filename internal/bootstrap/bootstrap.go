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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yigit/coursehub/internal/app/chart"
	appControllers "github.com/yigit/coursehub/internal/app/controllers"
	appMigrations "github.com/yigit/coursehub/internal/app/migrations"
	appRepos "github.com/yigit/coursehub/internal/app/repositories"
	appRoutes "github.com/yigit/coursehub/internal/app/routes"
	appServices "github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/db"
	appMiddleware "github.com/yigit/coursehub/internal/middleware"
	pkgAuth "github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/helpers"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"github.com/yigit/coursehub/internal/pkg/session"
	"github.com/yigit/coursehub/internal/pkg/websocket"
	"github.com/yigit/coursehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService      appServices.AuthService
	HomeService      appServices.HomeService
	ReviewService    appServices.ReviewService
	CatalogService   appServices.CatalogService
	DashboardService *appServices.DashboardService
	Controllers      appRoutes.Controllers
	AuthMiddleware   *appMiddleware.AuthMiddleware
	Repos            *appRepos.Repositories
	JWTService       *pkgAuth.JWTService
	Revocations      session.RevocationStore
	Hub              *websocket.Hub
	WSHandler        *websocket.Handler
	ChartBoard       *chart.Board
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

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// creates the default data.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database, logger.Component("migrator"))
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(ctx, appRepos.NewRepositories(database.Pool), lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// SetupRevocationStore connects to Redis when enabled and falls back to an
// in-process store otherwise. The returned close function is never nil.
func SetupRevocationStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (session.RevocationStore, func() error, error) {
	if !cfg.Redis.Enabled {
		lgr.Warn().Msg("Redis disabled, revoked tokens are kept in memory")
		return session.NewMemoryStore(), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection established")
	return session.NewRedisStore(client), client.Close, nil
}

// BuildDependencies initializes application repositories, services, and
// controllers. The websocket hub runs until ctx is cancelled.
func BuildDependencies(ctx context.Context, cfg *config.Config, database *db.PostgresDB, revocations session.RevocationStore, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr, Revocations: revocations}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Hub = websocket.NewHub(logger.Component("websocket"))
	go deps.Hub.Run(ctx)
	deps.WSHandler = websocket.NewHandler(deps.Hub, logger.Component("websocket"))

	deps.ChartBoard = chart.NewBoard(deps.Hub, logger.Component("chart"))
	deps.ChartBoard.Init()

	repos := deps.Repos
	deps.AuthService = appServices.NewAuthService(repos.UserRepository, deps.JWTService, revocations, logger.Component("auth"))
	deps.HomeService = appServices.NewHomeService(repos.ReviewRepository, repos.CourseRepository, repos.UserRepository, logger.Component("home"))
	deps.ReviewService = appServices.NewReviewService(repos.ReviewRepository, repos.UserRepository, logger.Component("reviews"))
	deps.CatalogService = appServices.NewCatalogService(
		repos.CourseRepository,
		repos.CourseRepository,
		repos.UserRepository,
		repos.MessageRepository,
		repos.EnrollmentRepository,
	)
	deps.DashboardService = appServices.NewDashboardService(
		repos.CourseRepository,
		repos.UserRepository,
		repos.EnrollmentRepository,
		repos.MessageRepository,
		deps.ChartBoard,
		helpers.ParseDuration(cfg.Dashboard.FetchTimeout, 15*time.Second),
		logger.Component("dashboard"),
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.AuthService)

	deps.Controllers = appRoutes.Controllers{
		Auth:      appControllers.NewAuthController(deps.AuthService, lgr),
		Home:      appControllers.NewHomeController(deps.HomeService),
		Review:    appControllers.NewReviewController(deps.ReviewService, lgr),
		Catalog:   appControllers.NewCatalogController(deps.CatalogService),
		Dashboard: appControllers.NewDashboardController(deps.DashboardService, deps.ChartBoard),
	}

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), appMiddleware.Recovery())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.WSHandler, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":            "ok",
			"chartReady":        deps.ChartBoard.Ready(),
			"chartSubscribers":  deps.Hub.ClientsCount(chart.Topic),
			"dashboardRevision": deps.DashboardService.Current().Generation,
		})
	})

	return router
}
