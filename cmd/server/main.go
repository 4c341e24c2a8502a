package main

import (
	"log"
	"net/http"

	_ "github.com/vladimirfomene/raggnet/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/vladimirfomene/raggnet/internal/auth"
	"github.com/vladimirfomene/raggnet/internal/cache"
	"github.com/vladimirfomene/raggnet/internal/config"
	"github.com/vladimirfomene/raggnet/internal/db"
	"github.com/vladimirfomene/raggnet/internal/handler"
	"github.com/vladimirfomene/raggnet/internal/model"
	"github.com/vladimirfomene/raggnet/internal/repository"
	"github.com/vladimirfomene/raggnet/internal/router"
	"github.com/vladimirfomene/raggnet/internal/service"
)

// @title Raggnet API
// @version 1.0
// @description Resource-sharing platform API: users, shareable resources, and admin approval workflows.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Resource{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	resourceRepo := repository.NewResourceRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	tokenStore := auth.NewTokenStore(jwtService, cacheClient)
	guards := auth.NewGuards(tokenStore, userRepo, cfg.JWTSecret)

	// Services
	authService := service.NewAuthService(userRepo, tokenStore)
	userService := service.NewUserService(userRepo)
	resourceService := service.NewResourceService(resourceRepo, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	resourceHandler := handler.NewResourceHandler(resourceService)
	adminHandler := handler.NewAdminHandler(userService, resourceService)

	router.Register(
		e,
		cfg,
		guards,
		authHandler,
		userHandler,
		resourceHandler,
		adminHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Printf("Listening at http://localhost%s in %s mode", addr, cfg.Env)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
