package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/unidash/internal/app/controllers"
	"github.com/yigit/unidash/internal/app/export"
	"github.com/yigit/unidash/internal/app/migrations"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/repositories"
	"github.com/yigit/unidash/internal/app/routes"
	"github.com/yigit/unidash/internal/app/services"
	"github.com/yigit/unidash/internal/config"
	"github.com/yigit/unidash/internal/db"
	"github.com/yigit/unidash/internal/generator"
	"github.com/yigit/unidash/internal/middleware"
	"github.com/yigit/unidash/internal/pkg/auth"
	"github.com/yigit/unidash/internal/pkg/helpers"
	"github.com/yigit/unidash/internal/pkg/latency"
	"github.com/yigit/unidash/internal/pkg/logger"
	"github.com/yigit/unidash/internal/pkg/validation"
	"github.com/yigit/unidash/internal/pkg/websocket"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Dataset        *models.Dataset
	Repos          *repositories.Repositories
	JWTService     *auth.JWTService
	Simulator      *latency.Simulator
	Services       *services.Services
	AuthMiddleware *middleware.AuthMiddleware
	Controllers    routes.Controllers
	// Hub and WSHandler are nil when live notifications are disabled
	Hub       *websocket.Hub
	WSHandler *websocket.Handler
	Logger    zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ParseConfig(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// GenerateDataset builds the in-memory snapshot every request is served from.
func GenerateDataset(cfg *config.Config, lgr zerolog.Logger) (*models.Dataset, error) {
	start := time.Now()

	gen, err := generator.NewGenerator(generator.Options{
		Seed:         cfg.Mock.Seed,
		DemoPassword: cfg.Mock.DemoPassword,
		EmailDomain:  cfg.Mock.EmailDomain,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	ds := gen.Initialize(generator.Counts{
		Students:      cfg.Mock.Students,
		Lecturers:     cfg.Mock.Lecturers,
		Courses:       cfg.Mock.Courses,
		Payments:      cfg.Mock.Payments,
		Announcements: cfg.Mock.Announcements,
		Enrollments:   cfg.Mock.Enrollments,
	})

	lgr.Info().
		Int64("seed", cfg.Mock.Seed).
		Int("students", len(ds.Students)).
		Int("lecturers", len(ds.Lecturers)).
		Int("courses", len(ds.Courses)).
		Int("payments", len(ds.Payments)).
		Int("announcements", len(ds.Announcements)).
		Int("enrollments", len(ds.Enrollments)).
		Dur("took", time.Since(start)).
		Msg("Dataset generated")

	return ds, nil
}

// ExportSnapshot writes ds to PostgreSQL after applying the schema migrations.
func ExportSnapshot(ctx context.Context, cfg *config.Config, ds *models.Dataset, lgr zerolog.Logger) error {
	lgr.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("Exporting snapshot to PostgreSQL...")

	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migrations.NewMigrator(database.Pool, lgr).Migrate(ctx); err != nil {
		return fmt.Errorf("database migrations failed: %w", err)
	}

	if err := export.NewExporter(lgr).Export(ctx, database, ds); err != nil {
		return fmt.Errorf("snapshot export failed: %w", err)
	}
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, ds *models.Dataset, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Dataset: ds,
		Logger:  lgr,
	}

	deps.Repos = repositories.NewRepositories(ds)

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		Expiration:  helpers.ParseDuration(cfg.JWT.Expiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Simulator = latency.New(helpers.ParseDuration(cfg.Mock.Latency, 500*time.Millisecond))

	var notifier services.Notifier = services.NoopNotifier{}
	if cfg.Notifications.Enabled {
		deps.Hub = websocket.NewHub(lgr)
		deps.WSHandler = websocket.NewHandler(deps.Hub, lgr)
		notifier = deps.Hub
	}

	deps.Services = services.NewServices(deps.Repos, deps.JWTService, deps.Simulator, notifier, lgr)

	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = routes.Controllers{
		Auth:         controllers.NewAuthController(deps.Services.AuthService, lgr),
		Student:      controllers.NewStudentController(deps.Services.StudentService, deps.Services.CourseService, deps.Services.PaymentService),
		Course:       controllers.NewCourseController(deps.Services.CourseService, lgr),
		Announcement: controllers.NewAnnouncementController(deps.Services.AnnouncementService),
		Payment:      controllers.NewPaymentController(deps.Services.PaymentService),
		Navigation:   controllers.NewNavigationController(deps.Services.NavigationService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("mode", gin.Mode()).Msg("Gin mode set")

	if err := validation.RegisterWithGin(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register validation rules")
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(lgr), middleware.CORS())

	routes.SetupSwagger(router)
	routes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.WSHandler)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
