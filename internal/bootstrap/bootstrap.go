package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/prisonadmin/internal/app/controllers"
	appMigrations "github.com/yigit/prisonadmin/internal/app/migrations"
	appRepos "github.com/yigit/prisonadmin/internal/app/repositories"
	appRoutes "github.com/yigit/prisonadmin/internal/app/routes"
	appServices "github.com/yigit/prisonadmin/internal/app/services"
	"github.com/yigit/prisonadmin/internal/config"
	"github.com/yigit/prisonadmin/internal/db"
	appMiddleware "github.com/yigit/prisonadmin/internal/middleware"
	"github.com/yigit/prisonadmin/internal/pkg/logger"
	"github.com/yigit/prisonadmin/internal/pkg/metrics"
	"github.com/yigit/prisonadmin/internal/seed"
)

// Database is what the wiring needs from the connection manager. *db.Manager implements it.
type Database interface {
	appRepos.Database
	appMigrations.StepRunner
	Ping(ctx context.Context) error
	Snapshot() db.PoolSnapshot
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers *appControllers.Controllers
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})
	lgr.Info().
		Str("logLevel", string(logLevel)).
		Str("logFormat", cfg.Logging.Format).
		Strs("envOverrides", cfg.EnvOverrides).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase creates the connection manager. The schema is left untouched;
// it is created by the init-db route or command.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.Manager, error) {
	lgr.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.ServiceName).
		Msg("Establishing database connection...")

	manager, err := db.NewManager(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().
		Int("minConns", db.MinConns).
		Int("maxConns", db.MaxConns).
		Dur("idleTimeout", db.MaxConnIdleTime).
		Msg("Database connection successfully established.")
	return manager, nil
}

// NewAdminService wires the schema initializer and the data seeder to the database.
func NewAdminService(database Database) *appServices.AdminService {
	initializer := appMigrations.NewInitializer(database)
	seeder := seed.NewSeeder(database, appMigrations.TableNames(), logger.Component("seed"))
	return appServices.NewAdminService(database, initializer, seeder)
}

// BuildDependencies initializes application repositories, services, controllers and metrics.
func BuildDependencies(database Database, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)
	deps.Services = appServices.NewServices(deps.Repos, NewAdminService(database), time.Now)
	deps.Controllers = appControllers.NewControllers(deps.Services)

	deps.Registry = prometheus.NewRegistry()
	if err := deps.Registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("failed to register go collector: %w", err)
	}

	var err error
	deps.HTTPMetrics, err = metrics.NewHTTPMetrics(deps.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register http metrics: %w", err)
	}
	if _, err := metrics.NewPoolCollector(deps.Registry, database.Snapshot); err != nil {
		return nil, fmt.Errorf("failed to register pool metrics: %w", err)
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.Metrics(deps.HTTPMetrics),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupMetrics(router, deps.Registry)
	appRoutes.SetupRouter(router, deps.Controllers)
	appRoutes.SetupStatic(router, cfg.Server.PublicDir)

	return router, nil
}
