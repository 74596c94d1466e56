package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/workshop-portal/stats-api/api/swagger"
	"github.com/workshop-portal/stats-api/internal/handler"
	"github.com/workshop-portal/stats-api/internal/middleware"
	"github.com/workshop-portal/stats-api/internal/repository"
	"github.com/workshop-portal/stats-api/internal/service"
	"github.com/workshop-portal/stats-api/pkg/cache"
	"github.com/workshop-portal/stats-api/pkg/config"
	"github.com/workshop-portal/stats-api/pkg/database"
	"github.com/workshop-portal/stats-api/pkg/logger"
	corsmiddleware "github.com/workshop-portal/stats-api/pkg/middleware/cors"
	reqidmiddleware "github.com/workshop-portal/stats-api/pkg/middleware/requestid"
)

// @title Workshop Statistics API
// @version 1.0.0
// @description Workshop statistics filters and workshop proposals
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, caching disabled", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	validate := validator.New()
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Statistics.CacheTTL, logr, redisClient != nil)
	authSvc := service.NewAuthService(logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
	})

	typeSvc := service.NewWorkshopTypeService(repository.NewWorkshopTypeRepository(db), cacheSvc, cfg.Workshops.TypesCacheTTL, logr)
	workshopSvc := service.NewWorkshopService(repository.NewWorkshopRepository(db), typeSvc, cacheSvc, metricsSvc, validate, logr,
		service.WorkshopServiceConfig{
			Location: cfg.Workshops.Location(),
			Rules: service.ProposalRules{
				MinLeadDays: cfg.Workshops.MinLeadDays,
				MaxLeadDays: cfg.Workshops.MaxLeadDays,
			},
			DefaultRangeDays: cfg.Workshops.DefaultRangeDays,
			PageLimit:        cfg.Statistics.PageLimit,
			SummaryCacheTTL:  cfg.Statistics.CacheTTL,
		})

	checks := map[string]handler.ReadinessCheck{"postgres": db.PingContext}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	workshopHandler := handler.NewWorkshopHandler(workshopSvc)
	typeHandler := handler.NewWorkshopTypeHandler(typeSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, checks, logr)

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
	r.GET("/ready", metricsHandler.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.GET("/workshop-types", typeHandler.List)
	api.GET("/workshop-types/:id", typeHandler.Get)
	api.GET("/states", typeHandler.States)

	stats := api.Group("/statistics/workshops", middleware.OptionalJWT(authSvc))
	stats.GET("", workshopHandler.List)
	stats.GET("/summary", workshopHandler.Summary)
	stats.GET("/export", middleware.Feature("exports", cfg.Statistics.ExportEnabled), workshopHandler.Export)

	proposals := api.Group("/workshops/proposals", middleware.Feature("proposals", cfg.Workshops.ProposalsEnabled))
	proposals.GET("/window", workshopHandler.ProposalWindow)
	proposals.POST("", middleware.JWT(authSvc), workshopHandler.Propose)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
