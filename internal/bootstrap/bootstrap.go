package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/eduforge/backend/internal/app/controllers"
	appMigrations "github.com/eduforge/backend/internal/app/migrations"
	appRepos "github.com/eduforge/backend/internal/app/repositories"
	memoryRepos "github.com/eduforge/backend/internal/app/repositories/memory"
	postgresRepos "github.com/eduforge/backend/internal/app/repositories/postgres"
	appRoutes "github.com/eduforge/backend/internal/app/routes"
	appServices "github.com/eduforge/backend/internal/app/services"
	"github.com/eduforge/backend/internal/config"
	"github.com/eduforge/backend/internal/db"
	appMiddleware "github.com/eduforge/backend/internal/middleware"
	pkgAuth "github.com/eduforge/backend/internal/pkg/auth"
	"github.com/eduforge/backend/internal/pkg/logger"
	"github.com/eduforge/backend/internal/seed"
	"github.com/eduforge/backend/internal/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	CatalogService       appServices.CatalogService
	CourseService        appServices.CourseService
	AuthController       *appControllers.AuthController
	CatalogController    *appControllers.CatalogController
	InstructorController *appControllers.InstructorController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	Sessions             session.Store
	JWTService           *pkgAuth.JWTService
	GoogleOAuth          *pkgAuth.GoogleOAuth
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

// SetupDatabase establishes the database connection and runs migrations.
// It returns a nil pool for the memory driver.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	if cfg.Database.Driver != config.DriverPostgres {
		lgr.Info().Str("driver", cfg.Database.Driver).Msg("Using in-memory stores, skipping database setup")
		return nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	dbPool, err := db.NewPgxPool(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// buildRepositories wires the stores selected by the configured driver. The
// memory stores are constructed pre-seeded; postgres gets the same rows
// inserted idempotently.
func buildRepositories(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*appRepos.Repositories, error) {
	if cfg.Database.Driver == config.DriverPostgres {
		repos := &appRepos.Repositories{
			Users:   postgresRepos.NewUserRepository(dbPool),
			Courses: postgresRepos.NewCourseRepository(dbPool),
		}
		if err := seed.CreateDefaultData(context.Background(), repos, lgr); err != nil {
			// Partial seed data is not fatal.
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
		return repos, nil
	}

	accounts, err := seed.Accounts()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare seed accounts: %w", err)
	}
	return &appRepos.Repositories{
		Users:   memoryRepos.NewUserRepository(accounts),
		Courses: memoryRepos.NewCourseRepository(seed.Courses()),
	}, nil
}

// buildSessionStore selects the session backend.
func buildSessionStore(cfg *config.Config, lgr zerolog.Logger) (session.Store, error) {
	if !cfg.Redis.Enabled {
		return session.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Connected to Redis for session storage")
	return session.NewRedisStore(client), nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	var err error
	deps.Repos, err = buildRepositories(cfg, dbPool, lgr)
	if err != nil {
		return nil, err
	}

	deps.Sessions, err = buildSessionStore(cfg, lgr)
	if err != nil {
		return nil, err
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.GoogleOAuth = pkgAuth.NewGoogleOAuth(
		cfg.Google.ClientID,
		cfg.Google.ClientSecret,
		cfg.Google.RedirectURL,
	)

	deps.AuthService = appServices.NewAuthService(deps.Repos.Users, deps.Sessions, deps.JWTService, lgr)
	deps.CatalogService = appServices.NewCatalogService(deps.Repos.Courses)
	deps.CourseService = appServices.NewCourseService(deps.Repos.Courses, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.GoogleOAuth, lgr)
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.InstructorController = appControllers.NewInstructorController(deps.CourseService)

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

	router := gin.Default()

	// The catalog is consumed by a browser front end on another origin.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CatalogController,
		deps.InstructorController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
