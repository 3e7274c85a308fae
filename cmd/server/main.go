package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"burritoapi/docs"
	"burritoapi/internal/auth"
	"burritoapi/internal/config"
	"burritoapi/internal/db"
	"burritoapi/internal/handler"
	"burritoapi/internal/logger"
	"burritoapi/internal/repository"
	"burritoapi/internal/router"
	"burritoapi/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Burrito Review API
// @version 1.0
// @description Burrito reviews with per-owner edits, likes and JWT authentication.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.LogLevel)

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if cfg.ResetDB {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	burritoRepo := repository.NewBurritoRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(cfg.PasswordCost)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	userService := service.NewUserService(userRepo, hasher)
	burritoService := service.NewBurritoService(burritoRepo)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(
		e,
		cfg,
		log,
		jwtService,
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewBurritoHandler(burritoService),
	)

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("swagger", "/swagger/index.html").Msg("server starting")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server stopped")
}
