package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"personamart/app/echo-server/router"
	"personamart/business/persona"
	"personamart/business/product"
	"personamart/business/purchase"
	"personamart/business/recommend"
	"personamart/business/seed"
	"personamart/business/simulation"
	userService "personamart/business/user"
	"personamart/internal/middleware"
	psqlRepo "personamart/internal/repository/postgres"
	redisRepo "personamart/internal/repository/redis"
	"personamart/internal/rest"
	"personamart/pkg/config"
	pgdb "personamart/pkg/database/postgres"
	redisdb "personamart/pkg/database/redis"
	"personamart/pkg/logger"
	"personamart/pkg/metrics"
	"personamart/pkg/utils"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Personamart", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := pgdb.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer func() {
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Failed to close Redis client", err)
		}
	}()

	logger.Info("Redis connected successfully")

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	purchaseRepo := psqlRepo.NewPurchaseRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init service
	catalog := persona.NewCatalog()
	usrService := userService.NewUserService(userRepo, tokenRepo, catalog, validate)
	productService := product.NewProductService(productRepo)
	purchaseService := purchase.NewPurchaseService(purchaseRepo, productRepo)
	recommendationService := recommend.NewRecommendationService(
		userRepo, productRepo, purchaseRepo, catalog, nil, recommend.DefaultConfig(),
	)
	simulationService := simulation.NewSimulationService(
		userRepo, productRepo, purchaseRepo, catalog, nil,
	)
	seedService := seed.NewService(userRepo, productRepo, purchaseRepo, nil)

	// Init handler
	userHandler := rest.NewUserHandler(usrService)
	productHandler := rest.NewProductHandler(productService)
	purchaseHandler := rest.NewPurchaseHandler(purchaseService)
	recommendationHandler := rest.NewRecommendationHandler(recommendationService)
	sessionHandler := rest.NewSessionHandler(simulationService)
	seedHandler := rest.NewSeedHandler(seedService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": cfg.App.Version,
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(usrService)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly)
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupPurchaseRoutes(api, purchaseHandler, authRequired)
	router.SetupRecommendationRoutes(api, recommendationHandler)
	router.SetupPersonaRoutes(api, sessionHandler)
	router.SetupSeedRoutes(api, seedHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
