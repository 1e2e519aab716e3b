package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	logger *zap.Logger
}

func Init(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Connected to database", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))

	r := gin.New()
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	listRepo := repository.NewListRepository(db)
	cardRepo := repository.NewCardRepository(db)

	// Services
	authzService := service.NewAuthorizationService(boardRepo, listRepo, cardRepo)
	positionService := service.NewPositionService(listRepo, cardRepo)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	boardService := service.NewBoardService(boardRepo)
	listService := service.NewListService(listRepo, authzService, positionService)
	cardService := service.NewCardService(cardRepo, authzService, positionService)

	// Handlers
	userHandler := handler.NewUserHandler(userRepo)
	authHandler := handler.NewAuthHandler(authService, cfg.CookieSecure)
	boardHandler := handler.NewBoardHandler(boardService)
	listHandler := handler.NewListHandler(listService)
	cardHandler := handler.NewCardHandler(cardService)

	// Public routes
	r.POST("/user/register", userHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		authorized.GET("/user/profile", userHandler.Profile)
		authorized.POST("/auth/logout", authHandler.Logout)

		// Board routes
		authorized.POST("/board", boardHandler.Create)
		authorized.GET("/board", boardHandler.GetAll)
		authorized.GET("/board/:id", boardHandler.GetByID)
		authorized.PUT("/board/:id", boardHandler.Update)
		authorized.DELETE("/board/:id", boardHandler.Delete)

		// List routes
		authorized.POST("/lists/board/:boardId", listHandler.Create)
		authorized.GET("/lists/board/:boardId", listHandler.GetByBoard)
		authorized.GET("/lists/:id", listHandler.GetByID)
		authorized.PATCH("/lists/:id", listHandler.Update)
		authorized.DELETE("/lists/:id", listHandler.Delete)

		// Card routes
		authorized.POST("/cards/list/:listId", cardHandler.Create)
		authorized.GET("/cards/list/:listId", cardHandler.GetByList)
		authorized.GET("/cards/:id", cardHandler.GetByID)
		authorized.PATCH("/cards/:id", cardHandler.Update)
		authorized.DELETE("/cards/:id", cardHandler.Delete)
		authorized.PUT("/cards/:id/move", cardHandler.Move)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
		logger: logger,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.logger.Info("Server running", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to listen", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	s.logger.Info("Server exited properly")
}
