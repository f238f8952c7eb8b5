package app

import (
	"fmt"

	"cobrew_backend/internal/config"
	"cobrew_backend/internal/database"
	"cobrew_backend/internal/handlers"
	"cobrew_backend/internal/logger"
	"cobrew_backend/internal/middleware"
	"cobrew_backend/internal/repositories"
	"cobrew_backend/internal/routes"
	"cobrew_backend/internal/services"
	"cobrew_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func Run() {
	// .env is optional, real deployments pass everything via environment.
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine with services, handlers and
// middleware wired in. Tests call it directly with their own database.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices()
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, db)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices() *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	projectRepo := repositories.NewProjectRepository()
	applicationRepo := repositories.NewApplicationRepository()
	messageRepo := repositories.NewMessageRepository()

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, profileRepo),
		ProfileService:     services.NewProfileService(profileRepo, userRepo),
		ProjectService:     services.NewProjectService(projectRepo, applicationRepo, userRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, projectRepo, userRepo),
		MessageService:     services.NewMessageService(messageRepo, projectRepo, applicationRepo, userRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.AuthService),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, container.ProfileService),
		ProjectHandler:     handlers.NewProjectHandler(baseHandler, container.ProjectService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
		MessageHandler:     handlers.NewMessageHandler(baseHandler, container.MessageService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.DBMiddleware(db))
	return router
}
