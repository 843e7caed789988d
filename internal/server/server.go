package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/config"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/handler"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/middleware"
	"github.com/Metatavu/lipsanen-project-management-ui-sub000/internal/repository"

	_ "github.com/Metatavu/lipsanen-project-management-ui-sub000/docs"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := runMigrations(cfg); err != nil {
		return nil, fmt.Errorf("❌ failed to run migrations: %w", err)
	}
	log.Println("✅ Database schema up to date")

	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	proposalRepo := repository.NewChangeProposalRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	positionRepo := repository.NewJobPositionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo, cfg.JWTSecret, cfg.TokenExpiry)
	projectHandler := handler.NewProjectHandler(projectRepo)
	milestoneHandler := handler.NewMilestoneHandler(milestoneRepo, projectRepo)
	taskHandler := handler.NewTaskHandler(taskRepo, milestoneRepo, userRepo, notificationRepo)
	proposalHandler := handler.NewChangeProposalHandler(proposalRepo, taskRepo, notificationRepo)
	attachmentHandler := handler.NewAttachmentHandler(attachmentRepo, projectRepo)
	positionHandler := handler.NewJobPositionHandler(positionRepo)
	notificationHandler := handler.NewNotificationHandler(notificationRepo)
	plannerHandler := handler.NewLastPlannerHandler(taskRepo, projectRepo)

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		authorized.GET("/users", userHandler.GetAll)
		authorized.GET("/users/:id", userHandler.GetByID)
		authorized.PUT("/users/:id", userHandler.Update)
		authorized.DELETE("/users/:id", userHandler.Delete)

		// Project routes
		authorized.POST("/projects", projectHandler.Create)
		authorized.GET("/projects", projectHandler.GetAll)
		authorized.GET("/projects/:id", projectHandler.GetByID)
		authorized.PUT("/projects/:id", projectHandler.Update)
		authorized.DELETE("/projects/:id", projectHandler.Delete)
		authorized.GET("/projects/:id/milestones", milestoneHandler.GetByProjectID)
		authorized.GET("/projects/:id/tasks", taskHandler.GetByProjectID)
		authorized.GET("/projects/:id/change-proposals", proposalHandler.GetByProjectID)
		authorized.GET("/projects/:id/attachments", attachmentHandler.GetByProjectID)
		authorized.GET("/projects/:id/lastplanner", plannerHandler.GetGrid)

		// Milestone routes
		authorized.POST("/milestones", milestoneHandler.Create)
		authorized.GET("/milestones/:id", milestoneHandler.GetByID)
		authorized.PUT("/milestones/:id", milestoneHandler.Update)
		authorized.DELETE("/milestones/:id", milestoneHandler.Delete)
		authorized.GET("/milestones/:id/tasks", taskHandler.GetByMilestoneID)

		// Task routes
		authorized.POST("/tasks", taskHandler.Create)
		authorized.GET("/tasks/:id", taskHandler.GetByID)
		authorized.PUT("/tasks/:id", taskHandler.Update)
		authorized.DELETE("/tasks/:id", taskHandler.Delete)
		authorized.POST("/tasks/:id/status", taskHandler.SetStatus)
		authorized.POST("/tasks/:id/assign", taskHandler.AssignUser)
		authorized.DELETE("/tasks/:id/assign/:user_id", taskHandler.UnassignUser)
		authorized.GET("/tasks/:id/change-proposals", proposalHandler.GetByTaskID)
		authorized.GET("/tasks/:id/attachments", attachmentHandler.GetByTaskID)

		// Change proposal routes
		authorized.POST("/change-proposals", proposalHandler.Create)
		authorized.POST("/change-proposals/:id/status", proposalHandler.SetStatus)
		authorized.DELETE("/change-proposals/:id", proposalHandler.Delete)

		// Attachment routes
		authorized.POST("/attachments", attachmentHandler.Create)
		authorized.GET("/attachments/:id", attachmentHandler.GetByID)
		authorized.PUT("/attachments/:id", attachmentHandler.Update)
		authorized.DELETE("/attachments/:id", attachmentHandler.Delete)

		// Job position routes
		authorized.POST("/job-positions", positionHandler.Create)
		authorized.GET("/job-positions", positionHandler.GetAll)
		authorized.GET("/job-positions/:id", positionHandler.GetByID)
		authorized.GET("/job-positions/:id/users", positionHandler.GetUsers)
		authorized.PUT("/job-positions/:id", positionHandler.Update)
		authorized.DELETE("/job-positions/:id", positionHandler.Delete)

		// Notification routes
		authorized.GET("/notifications", notificationHandler.GetEvents)
		authorized.POST("/notifications/:id/read", notificationHandler.MarkRead)
		authorized.DELETE("/notifications/:id", notificationHandler.Dismiss)
	}
	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func runMigrations(cfg *config.Config) error {
	m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.MigrateURL())
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
