package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salon-booking/config"
	deliveryHttp "salon-booking/internal/delivery/http"
	"salon-booking/internal/delivery/http/handler"
	"salon-booking/internal/delivery/http/middleware"
	"salon-booking/internal/infrastructure/backend"
	"salon-booking/internal/infrastructure/cache"
	"salon-booking/internal/repository"
	"salon-booking/internal/service"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/jwt"
	"salon-booking/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Server      *http.Server
}

// Usecases groups the application's use cases so the web tier and the CLI
// share one wiring.
type Usecases struct {
	Auth         usecase.AuthUsecase
	Appointments usecase.AppointmentUsecase
	WorkShifts   usecase.WorkShiftUsecase
	Reviews      usecase.ReviewUsecase
	Dashboard    usecase.DashboardUsecase
	Catalog      usecase.CatalogUsecase
	Contacts     usecase.ContactUsecase
	Favorites    usecase.FavoriteUsecase
	Reminders    usecase.ReminderUsecase
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	SetupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	usecases, err := NewUsecases(cfg, redisClient, logrus.StandardLogger())
	if err != nil {
		return nil, err
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, usecases)

	return app, nil
}

// SetupLogger configures the logrus logger
func SetupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// NewUsecases builds the repositories and use cases on top of the salon
// backend. A nil redisClient runs without the list cache.
func NewUsecases(cfg *config.Config, redisClient *redis.Client, log *logrus.Logger) (*Usecases, error) {
	assignPolicy, err := usecase.ParseAdminAssignPolicy(cfg.Shift.AdminAssignPolicy)
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_ADMIN_ASSIGN_POLICY: %w", err)
	}

	// Initialize backend client and list cache
	client := backend.NewClient(cfg.Backend, log)
	listCache := service.NewRedisListCache(redisClient, cfg.Cache.TTL, log)

	// Initialize repositories
	appointmentRepo := repository.NewAppointmentRepository(client, listCache, log)
	shiftRepo := repository.NewShiftRepository(client, listCache, log)
	workShiftRepo := repository.NewWorkShiftRepository(client, listCache, log)
	serviceRepo := repository.NewServiceRepository(client, listCache, log)
	userRepo := repository.NewUserRepository(client, listCache, log)
	reviewRepo := repository.NewReviewRepository(client, listCache, log)
	contactRepo := repository.NewContactRepository(client, listCache, log)
	authRepo := repository.NewAuthRepository(client, listCache, log)
	favoriteRepo := repository.NewFavoriteRepository(client, listCache, log)
	notificationRepo := repository.NewNotificationRepository(client)

	// Initialize services
	activity := service.NewActivityService(log)
	guard := service.NewInFlightGuard()

	return &Usecases{
		Auth:         usecase.NewAuthUsecase(log, authRepo),
		Appointments: usecase.NewAppointmentUsecase(log, appointmentRepo, serviceRepo, activity, guard, cfg.Booking.Location),
		WorkShifts:   usecase.NewWorkShiftUsecase(log, shiftRepo, workShiftRepo, activity, guard, assignPolicy),
		Reviews:      usecase.NewReviewUsecase(log, reviewRepo, appointmentRepo, activity),
		Dashboard:    usecase.NewDashboardUsecase(log, userRepo, serviceRepo, appointmentRepo),
		Catalog:      usecase.NewCatalogUsecase(log, serviceRepo, userRepo, activity),
		Contacts:     usecase.NewContactUsecase(log, contactRepo, activity),
		Favorites:    usecase.NewFavoriteUsecase(log, favoriteRepo, activity),
		Reminders:    usecase.NewReminderUsecase(log, notificationRepo, appointmentRepo, activity),
	}, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, usecases *Usecases) *http.Server {
	log := logrus.StandardLogger()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(usecases.Auth, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(usecases.Appointments, customValidator)
	workShiftHandler := handler.NewWorkShiftHandler(usecases.WorkShifts, customValidator)
	reviewHandler := handler.NewReviewHandler(usecases.Reviews, customValidator)
	dashboardHandler := handler.NewDashboardHandler(usecases.Dashboard)
	catalogHandler := handler.NewCatalogHandler(usecases.Catalog, customValidator)
	contactHandler := handler.NewContactHandler(usecases.Contacts, customValidator)
	favoriteHandler := handler.NewFavoriteHandler(usecases.Favorites, customValidator)
	reminderHandler := handler.NewReminderHandler(usecases.Reminders)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwt.NewInspector())
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowOrigin)
	requestLogMiddleware := middleware.NewRequestLogMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		appointmentHandler,
		workShiftHandler,
		reviewHandler,
		dashboardHandler,
		catalogHandler,
		contactHandler,
		favoriteHandler,
		reminderHandler,
		authMiddleware,
		corsMiddleware,
		requestLogMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           otelhttp.NewHandler(httpRouter, "salon-booking"),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		logrus.Infof("Salon backend: %s", app.Config.Backend.BaseURL)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the redis connection, if any
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
