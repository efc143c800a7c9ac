package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vinixport_backend/internal/auth"
	"vinixport_backend/internal/config"
	"vinixport_backend/internal/database"
	"vinixport_backend/internal/email"
	"vinixport_backend/internal/events"
	"vinixport_backend/internal/handlers"
	"vinixport_backend/internal/imageprocessor"
	"vinixport_backend/internal/logger"
	"vinixport_backend/internal/metrics"
	"vinixport_backend/internal/middleware"
	"vinixport_backend/internal/models"
	"vinixport_backend/internal/repositories"
	"vinixport_backend/internal/routes"
	"vinixport_backend/internal/services"
	"vinixport_backend/internal/storage"
	"vinixport_backend/internal/validator"
	"vinixport_backend/internal/workers"
	"vinixport_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.OpenFromConfig(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(gormDB); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
		logger.Info("Database schema migrated")
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// без админа сервер не запускаем
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter, container, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}
	defer func() {
		if err := container.Events.Close(); err != nil {
			logger.Warn("Failed to close event publisher", "error", err)
		}
	}()

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	workers.NewPaymentBacklogWorker(gormDB, repositories.NewReviewRequestRepository(), container.Metrics, workers.DefaultBacklogInterval).Start(workerCtx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info(fmt.Sprintf("Server starting on %s", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
}

// SetupRouter собирает зависимости и маршруты. Используется и в тестах.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.ServiceContainer, error) {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	apperrors.SetDebug(cfg.IsDevelopment())

	storageInstance, err := storage.NewStorage(storage.Config{
		Type:          cfg.Storage.Type,
		BasePath:      cfg.Storage.BasePath,
		BaseURL:       cfg.Storage.BaseURL,
		Bucket:        cfg.Storage.Bucket,
		Region:        cfg.Storage.Region,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		Endpoint:      cfg.Storage.Endpoint,
		CloudinaryURL: cfg.Storage.CloudinaryURL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	appMetrics := metrics.New()
	customValidator := validator.New()
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute, cfg.JWT.Issuer)

	// 1. Сервисы
	serviceContainer := initializeServices(cfg, storageInstance, tokens, customValidator, appMetrics)

	// 2. Хэндлеры
	appHandlers := initializeHandlers(serviceContainer, customValidator, tokens, appMetrics)

	// 3. Gin
	ginRouter := initializeGinRouter(cfg, gormDB, appMetrics)

	// 4. Маршруты
	uploadsDir := ""
	if local, ok := storageInstance.(*storage.LocalStorage); ok {
		uploadsDir = local.BasePath()
	}
	routes.RegisterRoutes(ginRouter, appHandlers, uploadsDir)

	return ginRouter, serviceContainer, nil
}

func initializeServices(
	cfg *config.Config,
	storageInstance storage.Storage,
	tokens *auth.TokenManager,
	v *validator.Validator,
	m *metrics.Metrics,
) *services.ServiceContainer {
	emailService := initializeEmail(cfg)
	publisher := initializePublisher(cfg)

	// --- Репозитории ---
	userRepo := repositories.NewUserRepository()
	reviewRepo := repositories.NewReviewRequestRepository()
	projectRepo := repositories.NewProjectRepository()
	certificateRepo := repositories.NewCertificateRepository()

	// --- Сервисы ---
	processor := imageprocessor.NewProcessor(cfg.Upload.ImageQuality, cfg.Upload.MaxImageWidth, cfg.Upload.MaxImageHeight)
	mediaService := services.NewMediaService(storageInstance, processor, services.MediaConfig{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	})
	notifier := services.NewReviewNotifier(emailService, publisher, m)
	accessGate := services.NewAccessGate(reviewRepo)

	return &services.ServiceContainer{
		AuthService:          services.NewAuthService(userRepo, tokens, cfg.Auth.AllowMentorSignup),
		UserService:          services.NewUserService(userRepo, mediaService),
		ReviewRequestService: services.NewReviewRequestService(reviewRepo, userRepo, mediaService, notifier, v, m),
		AccessGate:           accessGate,
		PortfolioService:     services.NewPortfolioService(userRepo, projectRepo, certificateRepo, reviewRepo, accessGate, m),
		ProjectService:       services.NewProjectService(projectRepo, mediaService),
		CertificateService:   services.NewCertificateService(certificateRepo, mediaService),
		MediaService:         mediaService,
		EmailService:         emailService,
		Events:               publisher,
		Metrics:              m,
	}
}

// initializeEmail: SMTP только если включен в конфиге, иначе письма пишутся в лог
func initializeEmail(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Warn("Email sending is disabled. Using log provider.")
		return email.NewLogProvider()
	}

	smtpConfig := email.DefaultConfig()
	smtpConfig.Host = cfg.Email.SMTPHost
	if cfg.Email.SMTPPort != 0 {
		smtpConfig.Port = cfg.Email.SMTPPort
	}
	smtpConfig.Username = cfg.Email.SMTPUsername
	smtpConfig.Password = cfg.Email.SMTPPassword
	smtpConfig.FromEmail = cfg.Email.FromEmail
	smtpConfig.FromName = cfg.Email.FromName

	provider := email.NewSMTPProvider(smtpConfig, email.NewDefaultTemplateManager())
	if err := provider.Validate(); err != nil {
		logger.Error("Invalid SMTP configuration. Falling back to log provider.", "error", err)
		return email.NewLogProvider()
	}
	return provider
}

func initializePublisher(cfg *config.Config) events.Publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("Kafka brokers are not configured. Events are not published.")
		return events.NoopPublisher{}
	}

	publisher, err := events.NewKafkaPublisher(events.KafkaConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    cfg.Kafka.Topic,
		Username: cfg.Kafka.Username,
		Password: cfg.Kafka.Password,
	})
	if err != nil {
		logger.Error("Failed to create kafka publisher. Events are not published.", "error", err)
		return events.NoopPublisher{}
	}
	logger.Info("Kafka publisher initialized", "topic", cfg.Kafka.Topic)
	return publisher
}

func initializeHandlers(
	svc *services.ServiceContainer,
	v *validator.Validator,
	tokens *auth.TokenManager,
	m *metrics.Metrics,
) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(v, tokens)

	return &handlers.AppHandlers{
		AuthHandler:          handlers.NewAuthHandler(baseHandler, svc.AuthService),
		UserHandler:          handlers.NewUserHandler(baseHandler, svc.UserService),
		ReviewRequestHandler: handlers.NewReviewRequestHandler(baseHandler, svc.ReviewRequestService),
		PortfolioHandler:     handlers.NewPortfolioHandler(baseHandler, svc.PortfolioService),
		ProjectHandler:       handlers.NewProjectHandler(baseHandler, svc.ProjectService),
		CertificateHandler:   handlers.NewCertificateHandler(baseHandler, svc.CertificateService),
		HealthHandler:        handlers.NewHealthHandler(baseHandler, m),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	userRepo := repositories.NewUserRepository()
	_, err := userRepo.FindByEmail(db, adminEmail)
	if err == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
		Title:        "Platform Administrator",
	}
	if err := userRepo.Create(db, admin); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			// параллельный старт уже создал админа
			return nil
		}
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
