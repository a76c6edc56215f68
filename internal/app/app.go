package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kilimopesa_backend/database"
	"kilimopesa_backend/internal/config"
	"kilimopesa_backend/internal/handlers"
	"kilimopesa_backend/internal/logger"
	"kilimopesa_backend/internal/middleware"
	"kilimopesa_backend/internal/pkg/email"
	"kilimopesa_backend/internal/pkg/youtube"
	"kilimopesa_backend/internal/repositories"
	"kilimopesa_backend/internal/routes"
	"kilimopesa_backend/internal/services"
	"kilimopesa_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	// Sessions left behind by crashed or never-logged-out clients expire by
	// timestamp; sweep the stale rows once on boot.
	if err := repositories.NewSessionRepository().DeleteExpired(gormDB); err != nil {
		logger.Warn("Failed to clear expired sessions", "error", err)
	}

	emailSender, err := email.NewSMTPSender(email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		UseTLS:    cfg.Email.UseTLS,
	})
	if err != nil {
		logger.Fatal("Failed to initialize email sender", "error", err)
	}

	youtubeClient := youtube.NewClient(cfg.YouTube.APIKey, cfg.YouTube.MaxResults)

	ginRouter := SetupRouter(cfg, gormDB, emailSender, youtubeClient)

	if err := SeedCategories(gormDB); err != nil {
		logger.Fatal("Failed to seed categories", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, handlers and middleware into a
// ready gin engine. Tests call it with fake email and YouTube dependencies.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, emailSender email.Sender, youtubeClient youtube.Client) *gin.Engine {
	serviceContainer := initializeServices(cfg, emailSender, youtubeClient)
	sessionMW := middleware.SessionMiddleware(repositories.NewSessionRepository(), cfg.Session.Secret)
	appHandlers := initializeHandlers(serviceContainer, sessionMW)
	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, emailSender email.Sender, youtubeClient youtube.Client) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	sessionRepo := repositories.NewSessionRepository()
	categoryRepo := repositories.NewCategoryRepository()
	productRepo := repositories.NewProductRepository()
	landRepo := repositories.NewLandRepository()
	inputRepo := repositories.NewInputRepository()
	serviceRepo := repositories.NewServiceRepository()
	videoRepo := repositories.NewVideoRepository()

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute

	return &services.ServiceContainer{
		AuthService:     services.NewAuthService(userRepo, sessionRepo, emailSender, cfg.Session.Secret, sessionTTL),
		CategoryService: services.NewCategoryService(categoryRepo),
		ProductService:  services.NewProductService(productRepo, categoryRepo),
		LandService:     services.NewLandService(landRepo),
		InputService:    services.NewInputService(inputRepo),
		ServiceService:  services.NewFarmServiceService(serviceRepo),
		VideoService:    services.NewVideoService(videoRepo, youtubeClient),
	}
}

func initializeHandlers(sc *services.ServiceContainer, sessionMW gin.HandlerFunc) *handlers.AppHandlers {
	v := validator.New()
	base := handlers.NewBaseHandler(v)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(base, sc.AuthService, sessionMW),
		CategoryHandler: handlers.NewCategoryHandler(base, sc.CategoryService),
		ProductHandler:  handlers.NewProductHandler(base, sc.ProductService, sessionMW),
		LandHandler:     handlers.NewLandHandler(base, sc.LandService, sessionMW),
		InputHandler:    handlers.NewInputHandler(base, sc.InputService, sessionMW),
		ServiceHandler:  handlers.NewServiceHandler(base, sc.ServiceService, sessionMW),
		VideoHandler:    handlers.NewVideoHandler(base, sc.VideoService, sessionMW),
	}
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	return ginRouter
}

// SeedCategories inserts the fixed category set on startup. Existing rows
// are left alone, so restarts are idempotent.
func SeedCategories(gormDB *gorm.DB) error {
	categoryService := services.NewCategoryService(repositories.NewCategoryRepository())
	return categoryService.Seed(context.Background(), gormDB)
}
