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

	_ "github.com/noah-isme/hackathon-portal-api/api/swagger"
	"github.com/noah-isme/hackathon-portal-api/internal/handler"
	"github.com/noah-isme/hackathon-portal-api/internal/middleware"
	"github.com/noah-isme/hackathon-portal-api/internal/models"
	"github.com/noah-isme/hackathon-portal-api/internal/repository"
	"github.com/noah-isme/hackathon-portal-api/internal/service"
	"github.com/noah-isme/hackathon-portal-api/pkg/cache"
	"github.com/noah-isme/hackathon-portal-api/pkg/config"
	"github.com/noah-isme/hackathon-portal-api/pkg/database"
	"github.com/noah-isme/hackathon-portal-api/pkg/logger"
	"github.com/noah-isme/hackathon-portal-api/pkg/mail"
	corsmiddleware "github.com/noah-isme/hackathon-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/hackathon-portal-api/pkg/middleware/requestid"
)

// @title Hackathon Portal API
// @version 1.0.0
// @description Accounts, profiles and hackathon applications
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
		logr.Fatal("failed to connect to redis", zap.Error(err))
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	lockRepo := repository.NewLockRepository(redisClient)
	defer lockRepo.Close() //nolint:errcheck

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	profileSvc := service.NewProfileService(profileRepo, userRepo, validate, logr, service.ProfileConfig{
		DefaultGraduationYear: cfg.Profile.DefaultGraduationYear,
	})
	eligibilitySvc := service.NewEligibilityService(profileRepo, applicationRepo, metricsSvc, logr)
	submissionSvc := service.NewSubmissionService(applicationRepo, eligibilitySvc, lockRepo, userRepo, mail.New(cfg.Mail), metricsSvc, validate, logr, service.SubmissionConfig{
		LockTTL:       cfg.Submission.LockTTL,
		MailTimeout:   cfg.Submission.MailTimeout,
		HackathonName: cfg.Hackathon.Name,
		PortalURL:     cfg.Hackathon.PortalURL,
	})
	applicationSvc := service.NewApplicationService(applicationRepo, cfg.Hackathon.Name, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	profileHandler := handler.NewProfileHandler(profileSvc)
	applicationHandler := handler.NewApplicationHandler(applicationSvc, submissionSvc, eligibilitySvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, map[string]handler.Pinger{
		"postgres": handler.PingFunc(db.PingContext),
		"redis":    lockRepo,
	})

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)
	if cfg.Hackathon.DocsEnabled && cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	secured := api.Group("")
	secured.Use(middleware.JWT(authSvc))
	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/auth/me", authHandler.Me)

	secured.GET("/profile", profileHandler.Get)
	secured.PUT("/profile", middleware.Audit(userRepo, logr, models.AuditActionProfileUpdate, "profile"), profileHandler.Save)
	secured.GET("/profile/completeness", profileHandler.Completeness)

	applicationHandler.RegisterRoutes(api, authSvc)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "hackathon", cfg.Hackathon.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
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
