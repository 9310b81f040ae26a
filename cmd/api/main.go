package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/analog-mfg/factory-ops-api/api/swagger"
	"github.com/analog-mfg/factory-ops-api/internal/handler"
	"github.com/analog-mfg/factory-ops-api/internal/middleware"
	"github.com/analog-mfg/factory-ops-api/internal/repository"
	"github.com/analog-mfg/factory-ops-api/internal/service"
	"github.com/analog-mfg/factory-ops-api/pkg/cache"
	"github.com/analog-mfg/factory-ops-api/pkg/config"
	"github.com/analog-mfg/factory-ops-api/pkg/database"
	"github.com/analog-mfg/factory-ops-api/pkg/export"
	"github.com/analog-mfg/factory-ops-api/pkg/logger"
	"github.com/analog-mfg/factory-ops-api/pkg/mailer"
	corsmiddleware "github.com/analog-mfg/factory-ops-api/pkg/middleware/cors"
	reqidmiddleware "github.com/analog-mfg/factory-ops-api/pkg/middleware/requestid"
	"github.com/analog-mfg/factory-ops-api/pkg/storage"
)

// @title Factory Ops API
// @version 1.0.0
// @description Factory operations tracking: logistics, work orders, production and reporting
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	uploads, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare uploads dir", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Dashboard.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, chart caching disabled", "error", err)
		} else {
			defer redisClient.Close()
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, true)
		}
	}

	validate := validator.New()

	logisticsRepo := repository.NewLogisticsRepository(db)
	productionRepo := repository.NewProductionRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	notificationSvc := service.NewNotificationService(notificationRepo, logr)
	notifier := service.NewAsyncNotifier(notificationSvc, logr)
	notifier.Start(context.Background())
	defer notifier.Stop()

	logisticsSvc := service.NewLogisticsService(logisticsRepo, notifier, cacheSvc, validate, logr)
	productionSvc := service.NewProductionService(productionRepo, notifier, validate, logr)
	workOrderSvc := service.NewWorkOrderService(workOrderRepo, notifier, validate, logr)
	dashboardSvc := service.NewDashboardService(logisticsRepo, cacheSvc, logr, cfg.Dashboard.CacheTTL)
	reportSvc := service.NewReportService(export.NewPDFExporter(), export.NewCSVExporter(), logr)
	authSvc := service.NewAuthService(userRepo, notifier, mailer.New(cfg.Mail), validate, logr, service.AuthConfig{
		JWTSecret:     cfg.JWT.Secret,
		TokenTTL:      cfg.JWT.Expiration,
		RememberTTL:   cfg.JWT.RememberExpiration,
		ResetTokenTTL: cfg.Reset.TokenTTL,
		ResetLinkBase: cfg.Reset.LinkBase,
	})
	userSvc := service.NewUserService(userRepo, uploads, notifier, logr, cfg.PublicURL)
	settingsSvc := service.NewSettingsService(settingsRepo, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	logisticsHandler := handler.NewLogisticsHandler(logisticsSvc)
	productionHandler := handler.NewProductionHandler(productionSvc)
	workOrderHandler := handler.NewWorkOrderHandler(workOrderSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	reportHandler := handler.NewReportHandler(reportSvc)
	userHandler := handler.NewUserHandler(userSvc, cfg.Uploads.MaxSizeByte)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)
	r.Static("/uploads", uploads.Dir())

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	registerAPIRoutes(r, cfg.APIPrefix, apiHandlers{
		auth:         authHandler,
		logistics:    logisticsHandler,
		production:   productionHandler,
		workOrder:    workOrderHandler,
		dashboard:    dashboardHandler,
		report:       reportHandler,
		user:         userHandler,
		settings:     settingsHandler,
		notification: notificationHandler,
	}, middleware.JWT(authSvc))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
