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
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/askiep/askiep-api/internal/ai"
	"github.com/askiep/askiep-api/internal/handler"
	"github.com/askiep/askiep-api/internal/middleware"
	"github.com/askiep/askiep-api/internal/repository"
	"github.com/askiep/askiep-api/internal/service"
	"github.com/askiep/askiep-api/pkg/cache"
	"github.com/askiep/askiep-api/pkg/config"
	"github.com/askiep/askiep-api/pkg/database"
	"github.com/askiep/askiep-api/pkg/logger"
	corsmiddleware "github.com/askiep/askiep-api/pkg/middleware/cors"
	ratelimitmiddleware "github.com/askiep/askiep-api/pkg/middleware/ratelimit"
	reqidmiddleware "github.com/askiep/askiep-api/pkg/middleware/requestid"
	"github.com/askiep/askiep-api/pkg/response"
)

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

	response.SetDebug(cfg.Env != config.EnvProduction)

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logr.Fatal("failed to run migrations", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, stats caching disabled", zap.Error(err))
			rdb = nil
		}
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()
	metrics := service.NewMetricsService()
	gateway := ai.NewGateway(cfg.AI, logr)

	profileRepo := repository.NewProfileRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	complianceRepo := repository.NewComplianceRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	commRepo := repository.NewCommRepository(db)
	behaviorRepo := repository.NewBehaviorRepository(db)
	letterRepo := repository.NewLetterRepository(db)

	profileSvc := service.NewProfileService(profileRepo, validate, logr)
	analysisSvc := service.NewAnalysisService(analysisRepo, documentRepo, gateway, validate, logr)
	complianceSvc := service.NewComplianceService(complianceRepo, validate, logr)
	progressSvc := service.NewProgressService(progressRepo, validate, logr)
	commSvc := service.NewCommService(commRepo, validate, logr)
	behaviorSvc := service.NewBehaviorService(behaviorRepo, validate, logr)
	letterSvc := service.NewLetterService(letterRepo, validate, logr)
	assistantSvc := service.NewAssistantService(gateway, validate, logr)
	statsSvc := service.NewStatsService(complianceRepo, progressRepo, rdb, cfg.Stats.CacheTTL, metrics, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))
	if cfg.RateLimit.Enabled {
		r.Use(ratelimitmiddleware.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Health:     handler.NewHealthHandler(db),
		Profile:    handler.NewProfileHandler(profileSvc),
		Analysis:   handler.NewAnalysisHandler(analysisSvc),
		Compliance: handler.NewComplianceHandler(complianceSvc, statsSvc),
		Progress:   handler.NewProgressHandler(progressSvc, statsSvc),
		Comm:       handler.NewCommHandler(commSvc),
		Behavior:   handler.NewBehaviorHandler(behaviorSvc),
		Letter:     handler.NewLetterHandler(letterSvc),
		Assistant:  handler.NewAssistantHandler(assistantSvc),
		Stats:      handler.NewStatsHandler(statsSvc),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
