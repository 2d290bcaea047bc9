package main

import (
	"log"
	"net/http"

	_ "ascend/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"ascend/internal/auth"
	"ascend/internal/config"
	"ascend/internal/db"
	"ascend/internal/handler"
	"ascend/internal/model"
	"ascend/internal/repository"
	"ascend/internal/router"
	"ascend/internal/service"
)

// @title Ascend Auth API
// @version 1.0
// @description Minimal authentication-gated API with signup, login, and a token-protected profile route.
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	healthRepo := repository.NewHealthRepository(gormDB)

	// Initialize auth components
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(healthRepo)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(e, jwtService, healthHandler, authHandler, userHandler)

	addr := ":" + cfg.ServerPort
	log.Printf("Server running on http://localhost:%s", cfg.ServerPort)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
