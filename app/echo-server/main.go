package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CatcoinSupport/Game-Mart/app/echo-server/router"
	cartService "github.com/CatcoinSupport/Game-Mart/business/cart"
	"github.com/CatcoinSupport/Game-Mart/business/catalog"
	ordersService "github.com/CatcoinSupport/Game-Mart/business/orders"
	"github.com/CatcoinSupport/Game-Mart/business/payment"
	settingsService "github.com/CatcoinSupport/Game-Mart/business/settings"
	userService "github.com/CatcoinSupport/Game-Mart/business/user"
	"github.com/CatcoinSupport/Game-Mart/internal/middleware"
	"github.com/CatcoinSupport/Game-Mart/internal/repository/maillog"
	psqlRepo "github.com/CatcoinSupport/Game-Mart/internal/repository/postgres"
	redisRepo "github.com/CatcoinSupport/Game-Mart/internal/repository/redis"
	"github.com/CatcoinSupport/Game-Mart/pkg/config"
	"github.com/CatcoinSupport/Game-Mart/pkg/database"
	redisdb "github.com/CatcoinSupport/Game-Mart/pkg/database/redis"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"
	"github.com/CatcoinSupport/Game-Mart/pkg/metrics"
	"github.com/CatcoinSupport/Game-Mart/pkg/uploads"

	"github.com/CatcoinSupport/Game-Mart/internal/rest"

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
	logger.Info("Starting Game Mart", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	metrics.Init()

	// Init validate
	validate := validator.New()

	// Upload stores
	productImages := uploads.NewStore(cfg.Uploads.ProductDir)
	paymentProofs := uploads.NewStore(cfg.Uploads.PaymentDir)

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	sectionRepo := psqlRepo.NewSectionRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	methodRepo := psqlRepo.NewPaymentMethodRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	settingsRepo := psqlRepo.NewSettingsRepository(db)
	cartRepo := redisRepo.NewCartRepository(redisClient)
	mailLog := maillog.NewFileRepository(cfg.Mail.LogPath, settingsRepo)

	// Init service
	users := userService.NewUserService(userRepo, validate)
	sections := catalog.NewSectionService(sectionRepo, productRepo, productImages)
	products := catalog.NewProductService(productRepo, sectionRepo, productImages)
	carts := cartService.NewCartService(cartRepo, productRepo)
	methods := payment.NewPaymentMethodService(methodRepo)
	siteSettings := settingsService.NewSettingsService(settingsRepo, validate)
	orders := ordersService.NewOrdersService(ordersRepo, methodRepo, carts, userRepo, productRepo, sectionRepo, mailLog, paymentProofs)

	// Init handler
	userHandler := rest.NewUserHandler(users)
	sectionHandler := rest.NewSectionHandler(sections)
	productHandler := rest.NewProductHandler(products)
	cartHandler := rest.NewCartHandler(carts)
	ordersHandler := rest.NewOrdersHandler(orders)
	methodHandler := rest.NewPaymentMethodHandler(methods)
	settingsHandler := rest.NewSettingsHandler(siteSettings)
	emailsHandler := rest.NewEmailsHandler(mailLog)
	uploadsHandler := rest.NewUploadsHandler(productImages, paymentProofs)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly)
	router.SetupSectionRoutes(api, sectionHandler, authRequired, adminOnly)
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupCartRoutes(api, cartHandler, authRequired)
	router.SetupOrdersRoutes(api, ordersHandler, authRequired, adminOnly)
	router.SetupPaymentMethodRoutes(api, methodHandler, authRequired, adminOnly)
	router.SetupSettingsRoutes(api, settingsHandler, authRequired, adminOnly)
	router.SetupEmailsRoutes(api, emailsHandler, authRequired, adminOnly)
	router.SetupUploadRoutes(e, uploadsHandler, authRequired, adminOnly)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

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
